package ai

import (
	"context"
	"fmt"

	"github.com/mpetrun5/formscout/internal/analyzer"
)

// Fill is one suggested field assignment. Selector matches the field
// selectors used in generated scripts (id, else name).
type Fill struct {
	Selector string `json:"selector"`
	Value    string `json:"value"`
}

// Provider defines the interface for AI fill-value generation.
type Provider interface {
	// SuggestFills proposes realistic values for every fillable field
	// in the analysis result. The screenshot is optional context for
	// vision-capable providers and may be nil.
	SuggestFills(ctx context.Context, res *analyzer.PageResult, screenshot []byte) ([]Fill, error)
}

// NewProvider creates a provider by name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}

// FillValues flattens fills into the selector→value map consumed by the
// script generator.
func FillValues(fills []Fill) map[string]string {
	values := make(map[string]string, len(fills))
	for _, f := range fills {
		if f.Selector != "" {
			values[f.Selector] = f.Value
		}
	}
	return values
}

package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider("cohere", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestFillValues_SkipsEmptySelectors(t *testing.T) {
	values := FillValues([]Fill{
		{Selector: "", Value: "orphan"},
		{Selector: "email", Value: "jane@corp.example"},
	})
	assert.Equal(t, map[string]string{"email": "jane@corp.example"}, values)
}

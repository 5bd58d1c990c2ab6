package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseFillsJSON extracts and parses a JSON array from a response that
// may contain surrounding text or markdown fences.
func parseFillsJSON(response string) ([]Fill, error) {
	var fills []Fill
	if err := json.Unmarshal([]byte(response), &fills); err == nil {
		return fills, nil
	}

	start := strings.Index(response, "[")
	if start == -1 {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	depth := 0
	end := -1
	for i := start; i < len(response) && end == -1; i++ {
		switch response[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
	}

	if end == -1 {
		return nil, fmt.Errorf("no matching closing bracket found")
	}

	if err := json.Unmarshal([]byte(response[start:end]), &fills); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
	}

	return fills, nil
}

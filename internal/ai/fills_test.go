package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFillsJSON_DirectArray(t *testing.T) {
	fills, err := parseFillsJSON(`[{"selector":"email","value":"jane@corp.example"},{"selector":"password","value":"hunter2"}]`)
	require.NoError(t, err)
	require.Len(t, fills, 2)
	assert.Equal(t, "email", fills[0].Selector)
	assert.Equal(t, "jane@corp.example", fills[0].Value)
	assert.Equal(t, "hunter2", fills[1].Value)
}

func TestParseFillsJSON_SurroundedByText(t *testing.T) {
	response := `Here are the suggested values:

[{"selector":"email","value":"jane@corp.example"}]

Let me know if you need anything else.`

	fills, err := parseFillsJSON(response)
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, "email", fills[0].Selector)
}

func TestParseFillsJSON_MarkdownFence(t *testing.T) {
	response := "```json\n[{\"selector\":\"terms\",\"value\":\"checked\"}]\n```"

	fills, err := parseFillsJSON(response)
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, "checked", fills[0].Value)
}

func TestParseFillsJSON_NestedBrackets(t *testing.T) {
	response := `The plan options were ["free", "pro"], so:
[{"selector":"plan","value":"free"}]`

	// The first array in the response wins, and that one is not a fill
	// list, so extraction fails rather than guessing.
	_, err := parseFillsJSON(response)
	assert.Error(t, err)
}

func TestParseFillsJSON_EmptyArray(t *testing.T) {
	fills, err := parseFillsJSON("[]")
	require.NoError(t, err)
	assert.Empty(t, fills)
}

func TestParseFillsJSON_NoArray(t *testing.T) {
	_, err := parseFillsJSON("I could not determine any values for this form.")
	assert.Error(t, err)
}

func TestParseFillsJSON_UnclosedBracket(t *testing.T) {
	_, err := parseFillsJSON(`[{"selector":"email","value":"x"}`)
	assert.Error(t, err)
}

func TestFillValues(t *testing.T) {
	fills := []Fill{
		{Selector: "email", Value: "jane@corp.example"},
		{Selector: "password", Value: "hunter2"},
	}

	values := FillValues(fills)
	assert.Equal(t, map[string]string{
		"email":    "jane@corp.example",
		"password": "hunter2",
	}, values)
}

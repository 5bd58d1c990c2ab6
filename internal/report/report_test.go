package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrun5/formscout/internal/analyzer"
	"github.com/mpetrun5/formscout/internal/dom"
)

func sampleResult() *analyzer.PageResult {
	return &analyzer.PageResult{
		Success:     true,
		URL:         "https://example.com/signup",
		Screenshots: []string{"form_screenshots/full_page.png"},
		Forms: []analyzer.Form{
			{
				Name:         "signup",
				ID:           "signup_form",
				SubmitButton: "Create account",
				Fields: []dom.Field{
					{
						Name:     "email",
						ID:       "email",
						Type:     dom.FieldEmail,
						Label:    "Email",
						Required: true,
						Options:  []string{},
					},
				},
			},
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")

	require.NoError(t, Save(sampleResult(), path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleResult(), got)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "analysis.json")

	require.NoError(t, Save(sampleResult(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_JSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, Save(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, true, raw["success"])
	assert.Nil(t, raw["error"], "error must serialize as null on success")

	forms, ok := raw["forms"].([]any)
	require.True(t, ok)
	require.Len(t, forms, 1)
	form := forms[0].(map[string]any)
	assert.Equal(t, "Create account", form["submit_button"])

	fields := form["fields"].([]any)
	field := fields[0].(map[string]any)
	options, ok := field["options"].([]any)
	require.True(t, ok, "options must serialize as an array, not null")
	assert.Empty(t, options)
}

func TestSave_FailedResultShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.json")
	require.NoError(t, Save(analyzer.Failed("https://example.com", "navigation timed out"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, false, raw["success"])
	assert.Equal(t, "navigation timed out", raw["error"])
}

func TestSave_WriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// Parent "directory" is a regular file, so MkdirAll must fail.
	err := Save(sampleResult(), filepath.Join(blocker, "analysis.json"))
	require.Error(t, err)

	var writeErr *WriteError
	assert.True(t, errors.As(err, &writeErr))
	assert.Contains(t, writeErr.Path, "analysis.json")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

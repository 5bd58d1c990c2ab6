package mcptool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrun5/formscout/internal/analyzer"
	"github.com/mpetrun5/formscout/internal/dom"
)

func stubAnalyze(ctx context.Context, url string) *analyzer.PageResult {
	return &analyzer.PageResult{
		Success:     true,
		URL:         url,
		Screenshots: []string{},
		Forms: []analyzer.Form{
			{
				ID:           "login_form",
				SubmitButton: "Log In",
				Fields: []dom.Field{
					{ID: "email", Name: "email", Type: dom.FieldEmail, Options: []string{}},
				},
			},
		},
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleAnalyzePage(t *testing.T) {
	s := New("test", stubAnalyze)

	res, err := s.handleAnalyzePage(context.Background(), callRequest("analyze_page", map[string]any{
		"url": "https://example.com/login",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var parsed analyzer.PageResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, "https://example.com/login", parsed.URL)
	require.Len(t, parsed.Forms, 1)
	assert.Equal(t, "Log In", parsed.Forms[0].SubmitButton)
}

func TestHandleAnalyzePage_MissingURL(t *testing.T) {
	s := New("test", stubAnalyze)

	res, err := s.handleAnalyzePage(context.Background(), callRequest("analyze_page", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleGenerateScript(t *testing.T) {
	s := New("test", stubAnalyze)

	analysis, err := json.Marshal(stubAnalyze(context.Background(), "https://example.com/login"))
	require.NoError(t, err)

	res, err := s.handleGenerateScript(context.Background(), callRequest("generate_script", map[string]any{
		"analysis": string(analysis),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	assert.Equal(t, "set email to test@example.com\nclick Log In\n", resultText(t, res))
}

func TestHandleGenerateScript_InvalidJSON(t *testing.T) {
	s := New("test", stubAnalyze)

	res, err := s.handleGenerateScript(context.Background(), callRequest("generate_script", map[string]any{
		"analysis": "{not json",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

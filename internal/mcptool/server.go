// Package mcptool registers the form analysis operations as MCP tools
// so agent runtimes can call them over stdio.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mpetrun5/formscout/internal/analyzer"
	"github.com/mpetrun5/formscout/internal/script"
)

// AnalyzeFunc runs a page analysis. Injected so the server can be
// exercised without a browser.
type AnalyzeFunc func(ctx context.Context, url string) *analyzer.PageResult

// Server exposes analyze_page and generate_script as MCP tools.
type Server struct {
	analyze AnalyzeFunc
	mcp     *server.MCPServer
}

// New builds the MCP server around an analysis function.
func New(version string, analyze AnalyzeFunc) *Server {
	s := &Server{analyze: analyze}

	s.mcp = server.NewMCPServer("formscout", version)

	s.mcp.AddTool(mcp.NewTool("analyze_page",
		mcp.WithDescription("Analyze the forms on a web page. Returns a JSON document with every detected form, its fields (name, id, type, label, required, options, placeholder), submit button label, and screenshot paths."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL of the page to analyze"),
		),
	), s.handleAnalyzePage)

	s.mcp.AddTool(mcp.NewTool("generate_script",
		mcp.WithDescription("Generate a form-filling automation script from an analyze_page result. Returns plain text, one statement per line: 'set <selector> to <value>' and 'click <submit>'."),
		mcp.WithString("analysis",
			mcp.Required(),
			mcp.Description("JSON document produced by analyze_page"),
		),
	), s.handleGenerateScript)

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleAnalyzePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.analyze(ctx, url)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGenerateScript(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analysisJSON, err := req.RequireString("analysis")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var res analyzer.PageResult
	if err := json.Unmarshal([]byte(analysisJSON), &res); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis document: %v", err)), nil
	}

	return mcp.NewToolResultText(script.Generate(&res)), nil
}

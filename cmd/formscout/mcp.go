package main

import (
	"github.com/spf13/cobra"

	"github.com/mpetrun5/formscout/internal/mcptool"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve analyze_page and generate_script as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcptool.New(version, liveAnalyze)
			return srv.ServeStdio()
		},
	}
}

package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mpetrun5/formscout/internal/config"
)

const version = "0.2.0"

var (
	debugLogging bool
	jsonLogs     bool
	logFile      string
)

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "formscout",
		Short: "Detect and analyze HTML forms with a real browser",
		Long: `formscout drives a headless browser to a page, detects every form on
it, extracts field metadata (type, label, required, options), captures
screenshots, and emits the result as JSON, as a fill script, or as MCP
tools for AI agents.

Example:
  formscout analyze https://example.com/signup -o signup.json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
			config.Load()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Use debug level logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs instead of pretty console output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append logs to this file")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(scriptCmd())
	rootCmd.AddCommand(fillCmd())
	rootCmd.AddCommand(mcpCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.000"}
	if jsonLogs {
		w = os.Stderr
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			w = io.MultiWriter(w, f)
		}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpetrun5/formscout/internal/analyzer"
	"github.com/mpetrun5/formscout/internal/browser"
	"github.com/mpetrun5/formscout/internal/report"
	"github.com/mpetrun5/formscout/internal/screenshot"
	"github.com/mpetrun5/formscout/internal/script"
)

func analyzeCmd() *cobra.Command {
	var (
		output     string
		scriptPath string
		htmlFile   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze the forms on a page and save the JSON result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]

			var res *analyzer.PageResult
			if htmlFile != "" {
				f, err := os.Open(htmlFile)
				if err != nil {
					return fmt.Errorf("could not open %s: %w", htmlFile, err)
				}
				defer f.Close()
				res = analyzer.AnalyzeHTML(f, url)
			} else {
				res = liveAnalyze(cmd.Context(), url)
			}

			if output == "" {
				output = viper.GetString("analyzer.output")
			}
			if err := report.Save(res, output); err != nil {
				return err
			}

			if scriptPath != "" {
				body := script.Generate(res)
				if err := os.WriteFile(scriptPath, []byte(body), 0o644); err != nil {
					return fmt.Errorf("could not write script to %s: %w", scriptPath, err)
				}
				fmt.Printf("Fill script saved to: %s\n", scriptPath)
			}

			printSummary(res, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON path (default from config)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "Also write the generated fill script to this path")
	cmd.Flags().StringVar(&htmlFile, "html", "", "Analyze a static HTML file instead of driving a browser")

	return cmd
}

// liveAnalyze opens a browser session for the duration of one page
// analysis. Launch failures fold into a failed PageResult so callers
// always get a well-formed document.
func liveAnalyze(ctx context.Context, url string) *analyzer.PageResult {
	sess, err := browser.Open(browserOptions())
	if err != nil {
		log.Error().Err(err).Msg("browser launch failed")
		return analyzer.Failed(url, fmt.Sprintf("browser launch failed: %v", err))
	}
	defer sess.Close()

	var shots *screenshot.Manager
	shots, err = screenshot.NewManager(viper.GetString("analyzer.screenshot_dir"))
	if err != nil {
		log.Warn().Err(err).Msg("screenshots disabled")
		shots = nil
	}

	a := analyzer.New(sess, shots, analyzer.Config{
		FormSelector: viper.GetString("analyzer.form_selector"),
	})
	return a.AnalyzePage(ctx, url)
}

func browserOptions() browser.Options {
	return browser.Options{
		Headless:   viper.GetBool("browser.headless"),
		Width:      viper.GetInt("browser.width"),
		Height:     viper.GetInt("browser.height"),
		NavTimeout: time.Duration(viper.GetInt("browser.nav_timeout")) * time.Second,
		ProfileDir: viper.GetString("browser.profile_dir"),
	}
}

func printSummary(res *analyzer.PageResult, output string) {
	if !res.Success {
		msg := ""
		if res.Error != nil {
			msg = *res.Error
		}
		fmt.Printf("Analysis failed: %s\n", msg)
		return
	}

	fmt.Printf("Analysis complete. Found %d forms.\n", len(res.Forms))
	for _, form := range res.Forms {
		name := form.Name
		if name == "" {
			name = form.ID
		}
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("- %s: %d fields\n", name, len(form.Fields))
	}
	fmt.Printf("Full analysis saved to: %s\n", output)
	if len(res.Screenshots) > 0 {
		fmt.Printf("Screenshots: %d captured\n", len(res.Screenshots))
	}
}

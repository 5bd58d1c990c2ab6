package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpetrun5/formscout/internal/ai"
	"github.com/mpetrun5/formscout/internal/screenshot"
	"github.com/mpetrun5/formscout/internal/script"
)

func fillCmd() *cobra.Command {
	var (
		provider string
		model    string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "fill <url>",
		Short: "Analyze a page and generate a fill script with AI-suggested values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]

			if provider == "" {
				provider = viper.GetString("ai.provider")
			}
			if model == "" {
				model = viper.GetString("ai.model")
			}

			aiProvider, err := ai.NewProvider(provider, model)
			if err != nil {
				return fmt.Errorf("AI provider init failed: %w", err)
			}

			res := liveAnalyze(cmd.Context(), url)
			if !res.Success {
				msg := ""
				if res.Error != nil {
					msg = *res.Error
				}
				return fmt.Errorf("analysis failed: %s", msg)
			}

			// A compressed capture of the rendered page helps
			// vision-capable providers pick sensible values.
			var thumb []byte
			if len(res.Screenshots) > 0 {
				if data, err := os.ReadFile(res.Screenshots[0]); err == nil {
					thumb, err = screenshot.Thumbnail(data, 800, 60)
					if err != nil {
						log.Warn().Err(err).Msg("thumbnail failed, sending text only")
						thumb = nil
					}
				}
			}

			fills, err := aiProvider.SuggestFills(cmd.Context(), res, thumb)
			if err != nil {
				return fmt.Errorf("fill suggestion failed: %w", err)
			}
			log.Info().Int("fills", len(fills)).Str("provider", provider).Msg("fill values suggested")

			body := script.GenerateWith(res, ai.FillValues(fills))
			if output == "" {
				fmt.Print(body)
				return nil
			}
			if err := os.WriteFile(output, []byte(body), 0o644); err != nil {
				return fmt.Errorf("could not write script to %s: %w", output, err)
			}
			fmt.Printf("Fill script saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "AI provider: claude, openai (default: from config)")
	cmd.Flags().StringVar(&model, "model", "", "Specific model override")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the script to a file instead of stdout")

	return cmd
}

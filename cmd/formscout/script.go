package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpetrun5/formscout/internal/report"
	"github.com/mpetrun5/formscout/internal/script"
)

func scriptCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "script <analysis.json>",
		Short: "Generate a fill script from a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := report.Load(args[0])
			if err != nil {
				return err
			}

			body := script.Generate(res)
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

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the script to a file instead of stdout")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/luuuc/fixture-cli/internal/corpus"
	"github.com/luuuc/fixture-cli/internal/export"
	"github.com/spf13/cobra"
)

var exportFormat string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "Output format: markdown, json")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the corpus as portable markdown or JSON",
	Long: `Exports the whole corpus in a form other tools can consume.

Examples:
  fixture export                   # Markdown to stdout
  fixture export > FIXTURES.md     # Save corpus documentation
  fixture export --format json     # Metadata as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := corpus.All()
		if err != nil {
			return err
		}

		switch exportFormat {
		case "markdown":
			fmt.Print(export.FormatMarkdown(fixtures))
		case "json":
			data, err := export.FormatJSON(fixtures)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unknown format '%s' (use markdown or json)", exportFormat)
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/luuuc/fixture-cli/internal/corpus"
	"github.com/luuuc/fixture-cli/internal/export"
	"github.com/spf13/cobra"
)

var (
	listJSON     bool
	listLanguage string
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVar(&listLanguage, "language", "", "Only list fixtures for this language (e.g. Python, C++)")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fixtures in the corpus",
	Long:  `Lists every fixture in the corpus with its language and filename.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := selectFixtures(listLanguage)
		if err != nil {
			return err
		}

		if listJSON {
			data, err := export.FormatJSON(fixtures)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Print(listOutput(fixtures))
		return nil
	},
}

// selectFixtures returns the whole corpus, or only one language's slice of it.
func selectFixtures(language string) ([]*corpus.Fixture, error) {
	if language == "" {
		return corpus.All()
	}

	fixtures, err := corpus.ByLanguage(language)
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		langs, err := corpus.Languages()
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no fixtures for language '%s' (available: %s)", language, strings.Join(langs, ", "))
	}
	return fixtures, nil
}

// listOutput renders the human-readable fixture listing.
func listOutput(fixtures []*corpus.Fixture) string {
	var b strings.Builder

	b.WriteString("Fixtures:\n\n")
	for _, f := range fixtures {
		fmt.Fprintf(&b, "  %-8s %-8s %s\n", f.ID, f.Language, f.Filename)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d fixture(s)\n", len(fixtures))

	return b.String()
}

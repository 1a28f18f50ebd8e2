package cmd

import (
	"fmt"
	"strings"

	"github.com/luuuc/fixture-cli/internal/corpus"
	"github.com/spf13/cobra"
)

var showMeta bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMeta, "meta", false, "Print fixture metadata instead of its source")
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a fixture's source",
	Long: `Prints the source of a single fixture to stdout.

Examples:
  fixture show python             # Print the Python fixture
  fixture show rust --meta        # Print the Rust fixture's metadata
  fixture show java > Test.java   # Save a fixture to a file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := corpus.Get(args[0])
		if err != nil {
			return err
		}

		if showMeta {
			fmt.Print(metaOutput(f))
			return nil
		}

		fmt.Print(f.Content)
		return nil
	},
}

// metaOutput renders a fixture's metadata without its source.
func metaOutput(f *corpus.Fixture) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID:          %s\n", f.ID)
	fmt.Fprintf(&b, "Language:    %s\n", f.Language)
	fmt.Fprintf(&b, "Filename:    %s\n", f.Filename)
	if f.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", f.Description)
	}

	if len(f.Symbols) > 0 {
		b.WriteString("Symbols:\n")
		for _, s := range f.Symbols {
			fmt.Fprintf(&b, "  %-10s %s\n", s.Kind, s.Name)
		}
	}

	return b.String()
}

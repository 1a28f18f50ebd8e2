package cmd

import (
	"fmt"

	"github.com/luuuc/fixture-cli/internal/corpus"
	"github.com/luuuc/fixture-cli/internal/fs"
	"github.com/spf13/cobra"
)

var (
	writeLanguage string
	writeForce    bool
)

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeLanguage, "language", "", "Only write fixtures for this language")
	writeCmd.Flags().BoolVar(&writeForce, "force", false, "Overwrite existing files")
}

var writeCmd = &cobra.Command{
	Use:   "write <dir>",
	Short: "Materialize fixture files into a directory",
	Long: `Writes the corpus fixture files into a directory, typically a test
suite's fixtures or testdata directory.

Existing files are never overwritten unless --force is given.

Examples:
  fixture write testdata/fixtures
  fixture write /tmp/fixtures --language Rust
  fixture write testdata/fixtures --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		fixtures, err := selectFixtures(writeLanguage)
		if err != nil {
			return err
		}

		if !writeForce {
			for _, f := range fixtures {
				if fs.FileExistsIn(dir, f.Filename) {
					return fmt.Errorf("%s already exists in %s (use --force to overwrite)", f.Filename, dir)
				}
			}
		}

		paths, err := corpus.WriteAll(dir, fixtures)
		if err != nil {
			return err
		}

		for _, path := range paths {
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	},
}

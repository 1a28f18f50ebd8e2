package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Curated source fixtures for detection and extraction test suites",
	Long: `fixture-cli ships a small corpus of static source snippets in several
languages, the kind language-detection and symbol-extraction test suites
feed to their tools as sample input.

Quick start:
  fixture list           List the fixtures in the corpus
  fixture show python    Print a fixture's source
  fixture write ./tmp    Materialize fixture files into a directory
  fixture mcp            Serve the corpus over MCP`,
}

func Execute() error {
	return rootCmd.Execute()
}

var versionJSON bool

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.SetVersionTemplate("fixture {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if versionJSON {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
				"version": version,
				"commit":  commit,
			})
			return
		}
		fmt.Printf("fixture %s (%s)\n", version, commit)
	},
}

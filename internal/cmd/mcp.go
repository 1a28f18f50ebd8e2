package cmd

import (
	"github.com/luuuc/fixture-cli/internal/mcp"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server exposing the corpus",
	Long: `Starts a local MCP server over stdio.

Configure in your MCP client, e.g.:

{
  "mcpServers": {
    "fixture": {
      "command": "fixture",
      "args": ["mcp"]
    }
  }
}

The server exposes the corpus via the MCP protocol:
- Resources: Each fixture as fixture://corpus/{id}
- Tools: list_fixtures, get_fixture`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer()
		return server.ServeStdio()
	},
}

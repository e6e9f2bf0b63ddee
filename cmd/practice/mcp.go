// ABOUTME: CLI command that runs the MCP stdio server.
// ABOUTME: Exposes practice data as tools and resources for AI assistants.
package main

import (
	"fmt"

	"github.com/harperreed/practice/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server over stdio.

Add to an MCP client configuration:

  {
    "mcpServers": {
      "practice": {
        "command": "practice",
        "args": ["mcp"]
      }
    }
  }

The server exposes practice data as tools (list_exercises,
practice_stats, bpm_progress, log_practice) and resources
(practice://recent, practice://summary).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcp.NewServer(stores)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// ABOUTME: Root Cobra command for practice CLI.
// ABOUTME: Builds config, API client, and stores in PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/harperreed/practice/internal/config"
	"github.com/harperreed/practice/internal/store"
	"github.com/spf13/cobra"
)

var stores *store.Stores

var rootCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice session tracker",
	Long: `Practice is a CLI for tracking music practice against a practice server.

WHAT IT TRACKS:

  Exercises      pieces, etudes, licks, and drills, tagged and categorized
  Sessions       timed sittings with per-exercise duration, tempo, rating
  History        individual practice events with BPM and self-rating

QUICK START:

  $ practice list                       # Browse exercises
  $ practice show 12                    # Exercise detail with categories
  $ practice sessions start             # Open a practice session
  $ practice log 12 --bpm 96            # Record a practice event
  $ practice stats                      # Totals, top exercises, progress

CONFIGURATION:

  Server and token live in ~/.config/practice/config.json and can be
  overridden with PRACTICE_SERVER / PRACTICE_TOKEN / PRACTICE_TIMEOUT.

MCP INTEGRATION:

  Run 'practice mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "practice": { "command": "practice", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		stores = store.New(cfg.OpenClient())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ABOUTME: CLI commands for deleting exercises, tags, categories, sessions.
// ABOUTME: Deletion is permanent; the cache drops the entity on confirm.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise, tag, category, or session",
	Long: `Delete an entity by id.

CAUTION:

  This permanently deletes the record on the server. There is no undo.

Examples:
  practice delete exercise 12
  practice rm tag 3`,
}

func deleteEntityCmd(kind string, del func(*cobra.Command, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <id>",
		Short: "Delete a " + kind,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid %s id %q", kind, args[0])
			}
			if err := del(cmd, id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", kind, err)
			}
			color.Yellow("Deleted %s %d", kind, id)
			return nil
		},
	}
}

func init() {
	deleteCmd.AddCommand(deleteEntityCmd("exercise", func(cmd *cobra.Command, id int64) error {
		return stores.Exercises.Delete(cmd.Context(), id)
	}))
	deleteCmd.AddCommand(deleteEntityCmd("tag", func(cmd *cobra.Command, id int64) error {
		return stores.Tags.Delete(cmd.Context(), id)
	}))
	deleteCmd.AddCommand(deleteEntityCmd("category", func(cmd *cobra.Command, id int64) error {
		return stores.Categories.Delete(cmd.Context(), id)
	}))
	deleteCmd.AddCommand(deleteEntityCmd("session", func(cmd *cobra.Command, id int64) error {
		return stores.Sessions.Delete(cmd.Context(), id)
	}))
	deleteCmd.AddCommand(deleteEntityCmd("history", func(cmd *cobra.Command, id int64) error {
		return stores.History.Delete(cmd.Context(), id)
	}))
	rootCmd.AddCommand(deleteCmd)
}

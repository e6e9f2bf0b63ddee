// ABOUTME: CLI commands for creating exercises, tags, and categories.
// ABOUTME: The server assigns ids; caches update only after it confirms.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/spf13/cobra"
)

var (
	addExDesc string
	addExTags []int64
	addTagCat []int64
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Create an exercise, tag, or category",
	Long: `Create an exercise, tag, or category.

Examples:
  practice add exercise "Spider chromatics" --desc "All four fingers" --tags 2,5
  practice add tag scales --categories 1
  practice add category Technique`,
}

var addExerciseCmd = &cobra.Command{
	Use:   "exercise <name>",
	Short: "Create an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := stores.Exercises.Create(cmd.Context(), models.Exercise{
			Name:        args[0],
			Description: addExDesc,
			TagIDs:      addExTags,
		})
		if err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}
		color.Green("Created exercise %d: %s", ex.ID, ex.Name)
		return nil
	},
}

var addTagCmd = &cobra.Command{
	Use:   "tag <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := stores.Tags.Create(cmd.Context(), models.Tag{
			Name:        args[0],
			CategoryIDs: addTagCat,
		})
		if err != nil {
			return fmt.Errorf("failed to create tag: %w", err)
		}
		color.Green("Created tag %d: %s", tag.ID, tag.Name)
		return nil
	},
}

var addCategoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := stores.Categories.Create(cmd.Context(), models.Category{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		color.Green("Created category %d: %s", cat.ID, cat.Name)
		return nil
	},
}

func init() {
	addExerciseCmd.Flags().StringVar(&addExDesc, "desc", "", "exercise description")
	addExerciseCmd.Flags().Int64SliceVar(&addExTags, "tags", nil, "tag ids to attach")
	addTagCmd.Flags().Int64SliceVar(&addTagCat, "categories", nil, "category ids to attach")

	addCmd.AddCommand(addExerciseCmd)
	addCmd.AddCommand(addTagCmd)
	addCmd.AddCommand(addCategoryCmd)
	rootCmd.AddCommand(addCmd)
}

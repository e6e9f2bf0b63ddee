// ABOUTME: CLI command for listing exercises, tags, and categories.
// ABOUTME: Supports search, tag, and category filters with pagination.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/derive"
	"github.com/spf13/cobra"
)

var (
	listSearch   string
	listTag      int64
	listCategory int64
	listPage     int
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises",
	Long: `List exercises known to the practice server.

OUTPUT FORMAT:

  Each line shows: ID  NAME  CATEGORIES  (DESCRIPTION)

  Categories are derived through the exercise's tags; they are not
  stored on the exercise itself.

FILTERING:

  practice list                        # First page of exercises
  practice list --search arpeggio      # Match name/description
  practice list --tag 3                # Only exercises with tag 3
  practice list --category 1 -n 50     # Category filter, bigger page`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		filter := api.ExerciseFilter{
			ListFilter: api.ListFilter{Page: listPage, PageSize: listLimit},
			SearchTerm: listSearch,
		}
		if listTag > 0 {
			filter.TagIDs = []int64{listTag}
		}
		if listCategory > 0 {
			filter.CategoryIDs = []int64{listCategory}
		}

		if err := stores.Exercises.FetchAll(ctx, filter); err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		// Tag and category caches feed the derived-category column; a
		// fetch failure here just leaves the column empty.
		_ = stores.Tags.FetchAll(ctx, api.ListFilter{PageSize: 1000})
		_ = stores.Categories.FetchAll(ctx, api.ListFilter{PageSize: 1000})

		exercises := stores.Exercises.SortedByName()
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		tags := stores.Tags.Items()
		for _, ex := range exercises {
			var catNames []string
			for _, id := range derive.CategoriesForExercise(ex.ID, exercises, tags) {
				if cat, ok := stores.Categories.Get(id); ok {
					catNames = append(catNames, cat.Name)
				}
			}
			desc := ""
			if ex.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(ex.Description, 40))
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("%4d", ex.ID),
				padRight(ex.Name, 28),
				padRight(strings.Join(catNames, ","), 20),
				desc)
		}
		fmt.Printf("\n%d of %d exercises\n", len(exercises), stores.Exercises.TotalCount())
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with their categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := stores.Tags.FetchAll(ctx, api.ListFilter{PageSize: 1000}); err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}
		if err := stores.Categories.FetchAll(ctx, api.ListFilter{PageSize: 1000}); err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		tags := stores.Tags.SortedByName()
		if len(tags) == 0 {
			fmt.Println("No tags found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, tag := range tags {
			var catNames []string
			for _, id := range tag.CategoryIDs {
				if cat, ok := stores.Categories.Get(id); ok {
					catNames = append(catNames, cat.Name)
				}
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("%4d", tag.ID),
				padRight(tag.Name, 24),
				faint.Sprint(strings.Join(catNames, ",")))
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := stores.Categories.FetchAll(ctx, api.ListFilter{PageSize: 1000}); err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		cats := stores.Categories.SortedByName()
		if len(cats) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, cat := range cats {
			fmt.Printf("%s %s\n", faint.Sprintf("%4d", cat.ID), cat.Name)
		}
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by search term")
	listCmd.Flags().Int64VarP(&listTag, "tag", "t", 0, "filter by tag id")
	listCmd.Flags().Int64VarP(&listCategory, "category", "c", 0, "filter by category id")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "result page")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(categoriesCmd)
}

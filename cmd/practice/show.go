// ABOUTME: CLI command showing the detail view for a single exercise.
// ABOUTME: Displays tags, derived categories, links, images, and stats.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/derive"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <exercise-id>",
	Short: "Show an exercise in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id %q", args[0])
		}

		ex, err := stores.Exercises.FetchOne(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch exercise: %w", err)
		}
		_ = stores.Tags.FetchAll(ctx, api.ListFilter{PageSize: 1000})
		_ = stores.Categories.FetchAll(ctx, api.ListFilter{PageSize: 1000})

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("%s", ex.Name)
		faint.Printf("  #%d\n", ex.ID)
		if ex.Description != "" {
			fmt.Printf("\n%s\n", ex.Description)
		}

		var tagNames []string
		for _, tid := range ex.TagIDs {
			if tag, ok := stores.Tags.Get(tid); ok {
				tagNames = append(tagNames, tag.Name)
			}
		}
		if len(tagNames) > 0 {
			fmt.Printf("\nTags:       %s\n", strings.Join(tagNames, ", "))
		}

		var catNames []string
		for _, cid := range derive.CategoriesForExercise(ex.ID, stores.Exercises.Items(), stores.Tags.Items()) {
			if cat, ok := stores.Categories.Get(cid); ok {
				catNames = append(catNames, cat.Name)
			}
		}
		if len(catNames) > 0 {
			fmt.Printf("Categories: %s\n", strings.Join(catNames, ", "))
		}

		if len(ex.Links) > 0 {
			fmt.Println("\nLinks:")
			for _, l := range ex.Links {
				fmt.Printf("  %s %s\n", faint.Sprintf("%4d", l.ID), l.URL)
			}
		}
		if len(ex.Images) > 0 {
			fmt.Println("\nImages:")
			for _, img := range ex.Images {
				fmt.Printf("  %s %s\n", faint.Sprintf("%4d", img.ID), img.Filename)
			}
		}

		if _, err := stores.Exercises.FetchStats(ctx, id, api.DateRange{}); err == nil {
			if st, ok := stores.Exercises.Stats(id); ok {
				fmt.Println("\nStats:")
				fmt.Printf("  Practice entries: %d\n", st.TotalEntries)
				if st.AvgBPM > 0 {
					fmt.Printf("  Average BPM:      %d\n", st.AvgBPM)
					fmt.Printf("  Max BPM:          %d\n", st.MaxBPM)
				}
				if st.LastPracticed != nil {
					fmt.Printf("  Last practiced:   %s\n", st.LastPracticed.Local().Format("2006-01-02 15:04"))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

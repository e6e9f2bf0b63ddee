// ABOUTME: CLI command listing practice history entries.
// ABOUTME: Filters by exercise, session, and date range.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/api"
	"github.com/spf13/cobra"
)

var (
	historyExercise int64
	historySession  int64
	historySince    string
	historyLimit    int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List practice history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		filter := api.HistoryFilter{
			ListFilter: api.ListFilter{PageSize: historyLimit},
			ExerciseID: historyExercise,
			SessionID:  historySession,
		}
		if historySince != "" {
			since, err := parseTime(historySince)
			if err != nil {
				return fmt.Errorf("invalid --since value %q: %w", historySince, err)
			}
			filter.StartDate = &since
		}

		if err := stores.History.FetchAll(ctx, filter); err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}
		_ = stores.Exercises.FetchAll(ctx, api.ExerciseFilter{ListFilter: api.ListFilter{PageSize: 1000}})

		entries := stores.History.SortedByDate()
		if len(entries) == 0 {
			fmt.Println("No history entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			name := fmt.Sprintf("exercise %d", e.ExerciseID)
			if ex, ok := stores.Exercises.Get(e.ExerciseID); ok {
				name = ex.Name
			}
			extras := ""
			if e.BPM != nil {
				extras += fmt.Sprintf(" %d bpm", *e.BPM)
			}
			if e.Rating != nil {
				extras += fmt.Sprintf(" %d/5", *e.Rating)
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("%4d", e.ID),
				e.StartTime.Local().Format("2006-01-02 15:04"),
				padRight(name, 28),
				faint.Sprint(extras))
		}
		fmt.Printf("\n%d of %d entries\n", len(entries), stores.History.TotalCount())
		return nil
	},
}

func init() {
	historyCmd.Flags().Int64VarP(&historyExercise, "exercise", "e", 0, "filter by exercise id")
	historyCmd.Flags().Int64Var(&historySession, "session", 0, "filter by session id")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only entries after this date")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(historyCmd)
}

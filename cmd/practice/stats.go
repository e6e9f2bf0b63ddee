// ABOUTME: CLI command for practice statistics and BPM progress charts.
// ABOUTME: Combines the server stats payload with local pure aggregation.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/stats"
	"github.com/spf13/cobra"
)

var (
	statsSince string
	statsUntil string
	statsTop   int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate practice statistics",
	Long: `Show aggregate practice statistics.

  practice stats                          # All time
  practice stats --since 2026-01-01       # Bounded range
  practice stats bpm 12                   # BPM progress for exercise 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rng, err := parseRange(statsSince, statsUntil)
		if err != nil {
			return err
		}

		payload, err := stores.Sessions.FetchPracticeStats(ctx, rng)
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}
		if payload.TotalSessions == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Practice stats")
		fmt.Printf("  Sessions:    %d\n", payload.TotalSessions)
		fmt.Printf("  Total time:  %.0f min\n", stats.TotalMinutes(payload))
		fmt.Printf("  Avg session: %.0f min\n", stats.AvgSessionMinutes(payload))

		if top := stats.TopN(stats.ExerciseDistribution(payload), statsTop); len(top) > 0 {
			bold.Println("\nTop exercises")
			for _, b := range top {
				fmt.Printf("  %s %s %s\n",
					padRight(b.Name, 28),
					padRight(fmt.Sprintf("%.0f min", b.Minutes), 10),
					faint.Sprintf("%.1f%%", b.Percentage))
			}
		}

		if cats := stats.CategoryDistribution(payload); len(cats) > 0 {
			bold.Println("\nBy category")
			for _, b := range stats.TopN(cats, -1) {
				fmt.Printf("  %s %s %s\n",
					padRight(b.Name, 28),
					padRight(fmt.Sprintf("%.0f min", b.Minutes), 10),
					faint.Sprintf("%.1f%%", b.Percentage))
			}
		}
		return nil
	},
}

var statsBPMCmd = &cobra.Command{
	Use:   "bpm <exercise-id>",
	Short: "Show daily best BPM for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		exerciseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id %q", args[0])
		}

		rng, err := parseRange(statsSince, statsUntil)
		if err != nil {
			return err
		}
		if err := stores.History.FetchAll(ctx, api.HistoryFilter{
			ListFilter: api.ListFilter{PageSize: 1000},
			DateRange:  rng,
			ExerciseID: exerciseID,
		}); err != nil {
			return fmt.Errorf("failed to fetch history: %w", err)
		}

		points := stats.BPMProgress(stores.History.Items(), exerciseID)
		if len(points) == 0 {
			fmt.Println("No BPM history for this exercise.")
			return nil
		}

		peak := 0
		for _, p := range points {
			if p.BPM > peak {
				peak = p.BPM
			}
		}
		faint := color.New(color.Faint)
		for _, p := range points {
			width := 0
			if peak > 0 {
				width = p.BPM * 40 / peak
			}
			fmt.Printf("%s %4d %s\n", p.Date, p.BPM, faint.Sprint(strings.Repeat("█", width)))
		}
		return nil
	},
}

// parseRange builds a DateRange from optional since/until strings.
func parseRange(since, until string) (api.DateRange, error) {
	var rng api.DateRange
	if since != "" {
		t, err := parseTime(since)
		if err != nil {
			return rng, fmt.Errorf("invalid --since value %q: %w", since, err)
		}
		rng.StartDate = &t
	}
	if until != "" {
		t, err := parseTime(until)
		if err != nil {
			return rng, fmt.Errorf("invalid --until value %q: %w", until, err)
		}
		rng.EndDate = &t
	}
	return rng, nil
}

func init() {
	statsCmd.PersistentFlags().StringVar(&statsSince, "since", "", "start of the date range")
	statsCmd.PersistentFlags().StringVar(&statsUntil, "until", "", "end of the date range")
	statsCmd.Flags().IntVarP(&statsTop, "top", "t", 5, "number of top exercises to show")
	statsCmd.AddCommand(statsBPMCmd)
	rootCmd.AddCommand(statsCmd)
}

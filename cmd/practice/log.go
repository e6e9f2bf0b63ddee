// ABOUTME: CLI command for recording standalone practice history entries.
// ABOUTME: History entries exist outside sessions and carry optional BPM/rating.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/spf13/cobra"
)

var (
	logWhen   string
	logBPM    int
	logRating int
)

var logCmd = &cobra.Command{
	Use:   "log <exercise-id>",
	Short: "Record a practice event outside a session",
	Long: `Record that an exercise was practiced, without a session.

  practice log 12                       # Practiced just now
  practice log 12 --bpm 104 --rating 4
  practice log 12 --at "2026-08-30 09:15"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id %q", args[0])
		}

		when := time.Now().UTC()
		if logWhen != "" {
			when, err = parseTime(logWhen)
			if err != nil {
				return fmt.Errorf("invalid --at value %q: %w", logWhen, err)
			}
		}

		entry := models.HistoryEntry{
			ExerciseID: exerciseID,
			StartTime:  when,
		}
		if logBPM > 0 {
			entry.BPM = &logBPM
		}
		if logRating > 0 {
			entry.Rating = &logRating
		}

		created, err := stores.History.Create(cmd.Context(), entry)
		if err != nil {
			return fmt.Errorf("failed to log practice: %w", err)
		}
		color.Green("Logged practice entry %d for exercise %d", created.ID, exerciseID)
		return nil
	},
}

// parseTime accepts the date formats users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringVar(&logWhen, "at", "", "when the practice happened (default: now)")
	logCmd.Flags().IntVarP(&logBPM, "bpm", "b", 0, "tempo reached")
	logCmd.Flags().IntVarP(&logRating, "rating", "r", 0, "self-rating 1-5")
	rootCmd.AddCommand(logCmd)
}

// ABOUTME: CLI commands for practice sessions: list, start, end, add.
// ABOUTME: A session is open until ended; entries record per-exercise work.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
	"github.com/spf13/cobra"
)

var (
	sessionsSince string
	sessionsLimit int

	addDuration int
	addBPM      int
	addRating   int
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"session", "s"},
	Short:   "Manage practice sessions",
	Long: `Manage practice sessions.

A session is one sitting of practice. Start one, add the exercises you
worked on, then end it:

  practice sessions start
  practice sessions add 12 --minutes 20 --bpm 96 --rating 4
  practice sessions end

Without a subcommand, lists recent sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		filter := api.SessionFilter{
			ListFilter: api.ListFilter{PageSize: sessionsLimit},
		}
		if sessionsSince != "" {
			since, err := parseTime(sessionsSince)
			if err != nil {
				return fmt.Errorf("invalid --since value %q: %w", sessionsSince, err)
			}
			filter.StartDate = &since
		}

		if err := stores.Sessions.FetchAll(ctx, filter); err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		sessions := stores.Sessions.SortedByDate()
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)
		for _, s := range sessions {
			when := s.StartTime.Local().Format("2006-01-02 15:04")
			length := green.Sprint("open")
			if d, ok := s.Duration(); ok {
				length = fmt.Sprintf("%d min", int(d.Minutes()))
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("%4d", s.ID),
				when,
				padRight(length, 8),
				faint.Sprintf("%d exercises", len(s.Exercises)))
		}
		fmt.Printf("\n%d of %d sessions\n", len(sessions), stores.Sessions.TotalCount())
		return nil
	},
}

var sessionsStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := stores.Sessions.Create(cmd.Context(), models.Session{StartTime: time.Now().UTC()})
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		color.Green("Started session %d at %s", s.ID, s.StartTime.Local().Format("15:04"))
		return nil
	},
}

var sessionsEndCmd = &cobra.Command{
	Use:   "end [session-id]",
	Short: "End an open session (defaults to the most recent open one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := resolveSessionID(cmd, args)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		s, err := stores.Sessions.Update(ctx, id, models.Session{EndTime: &now}, []string{"end_time"})
		if err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}
		if d, ok := s.Duration(); ok {
			color.Green("Ended session %d after %d min", s.ID, int(d.Minutes()))
		} else {
			color.Green("Ended session %d", s.ID)
		}
		return nil
	},
}

var sessionsAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add an exercise entry to the current open session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		exerciseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id %q", args[0])
		}
		sessionID, err := resolveSessionID(cmd, nil)
		if err != nil {
			return err
		}

		entry := models.SessionExercise{ExerciseID: exerciseID}
		if addDuration > 0 {
			entry.DurationMinutes = &addDuration
		}
		if addBPM > 0 {
			entry.BPM = &addBPM
		}
		if addRating > 0 {
			entry.Rating = &addRating
		}

		if _, err := stores.Sessions.AddExercise(ctx, sessionID, entry); err != nil {
			return fmt.Errorf("failed to add exercise to session: %w", err)
		}
		color.Green("Added exercise %d to session %d", exerciseID, sessionID)
		return nil
	},
}

// resolveSessionID picks the session an entry-level command targets:
// an explicit id argument, or the most recent open session.
func resolveSessionID(cmd *cobra.Command, args []string) (int64, error) {
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid session id %q", args[0])
		}
		return id, nil
	}
	if err := stores.Sessions.FetchAll(cmd.Context(), api.SessionFilter{
		ListFilter: api.ListFilter{PageSize: 20},
	}); err != nil {
		return 0, fmt.Errorf("failed to look up open session: %w", err)
	}
	for _, s := range stores.Sessions.SortedByDate() {
		if s.EndTime == nil {
			return s.ID, nil
		}
	}
	return 0, fmt.Errorf("no open session; run 'practice sessions start' first")
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsSince, "since", "", "only sessions starting after this date")
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "max number of results")

	sessionsAddCmd.Flags().IntVarP(&addDuration, "minutes", "m", 0, "minutes spent on the exercise")
	sessionsAddCmd.Flags().IntVarP(&addBPM, "bpm", "b", 0, "tempo reached")
	sessionsAddCmd.Flags().IntVarP(&addRating, "rating", "r", 0, "self-rating 1-5")

	sessionsCmd.AddCommand(sessionsStartCmd)
	sessionsCmd.AddCommand(sessionsEndCmd)
	sessionsCmd.AddCommand(sessionsAddCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// ABOUTME: HistoryEntry model, an immutable practice-event record.
// ABOUTME: Each entry ties an exercise (and optionally a session) to a moment.
package models

import "time"

// HistoryEntry records a single practice event for an exercise.
// Entries are append-style records; BPM and Rating are optional.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	ExerciseID int64     `json:"exercise_id"`
	SessionID  *int64    `json:"session_id,omitempty"`
	StartTime  time.Time `json:"start_time"`
	BPM        *int      `json:"bpm,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
}

// Day returns the entry's UTC calendar day in YYYY-MM-DD form.
// All day-grouping aggregation uses this so grouping is consistent.
func (h *HistoryEntry) Day() string {
	return h.StartTime.UTC().Format("2006-01-02")
}

// ABOUTME: Server-computed statistics payloads for sessions and exercises.
// ABOUTME: Mirrors the stats endpoints' wire shapes (snake_case, seconds).
package models

import "time"

// PracticeStats is the sessions stats endpoint payload. Durations are
// reported in seconds; the aggregation package converts to minutes.
type PracticeStats struct {
	TotalSessions             int                        `json:"total_sessions"`
	TotalDurationSeconds      int64                      `json:"total_duration_seconds"`
	AvgSessionDurationSeconds float64                    `json:"avg_session_duration_seconds"`
	ExerciseDistribution      []ExerciseTimeDistribution `json:"exercise_distribution,omitempty"`
	CategoryDistribution      []CategoryTimeDistribution `json:"category_distribution,omitempty"`
	PracticeFrequency         []PracticeTimePoint        `json:"practice_frequency,omitempty"`
}

// ExerciseTimeDistribution is one exercise's share of total practice time.
type ExerciseTimeDistribution struct {
	ExerciseID      int64   `json:"exercise_id"`
	ExerciseName    string  `json:"exercise_name"`
	DurationSeconds int64   `json:"duration_seconds"`
	Percentage      float64 `json:"percentage"`
}

// CategoryTimeDistribution is one category's share of total practice
// time, with an optional per-category daily series.
type CategoryTimeDistribution struct {
	CategoryID        int64               `json:"category_id"`
	CategoryName      string              `json:"category_name"`
	DurationSeconds   int64               `json:"duration_seconds"`
	Percentage        float64             `json:"percentage"`
	PracticeFrequency []PracticeTimePoint `json:"practice_frequency,omitempty"`
}

// PracticeTimePoint is one day's practiced time.
type PracticeTimePoint struct {
	Date            time.Time `json:"date"`
	DurationSeconds int64     `json:"duration_seconds"`
}

// ExerciseStats is the per-exercise stats endpoint payload.
type ExerciseStats struct {
	ExerciseID    int64      `json:"exercise_id"`
	TotalEntries  int        `json:"total_entries"`
	AvgBPM        int        `json:"avg_bpm"`
	MaxBPM        int        `json:"max_bpm"`
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
}

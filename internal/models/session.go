// ABOUTME: Practice session model with nested per-exercise entries.
// ABOUTME: A session spans a start/end time and lists what was practiced.
package models

import "time"

// Session is one sitting of practice. EndTime is nil while the
// session is still open.
type Session struct {
	ID        int64             `json:"id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   *time.Time        `json:"end_time,omitempty"`
	Exercises []SessionExercise `json:"exercises,omitempty"`
}

// SessionExercise records one exercise practiced within a session.
// DurationMinutes, BPM, and Rating are optional.
type SessionExercise struct {
	ID              int64  `json:"id"`
	ExerciseID      int64  `json:"exercise_id"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	BPM             *int   `json:"bpm,omitempty"`
	Rating          *int   `json:"rating,omitempty"`
}

// Duration returns the session length. ok is false when either
// timestamp is missing or the range is negative.
func (s *Session) Duration() (d time.Duration, ok bool) {
	if s.StartTime.IsZero() || s.EndTime == nil {
		return 0, false
	}
	d = s.EndTime.Sub(s.StartTime)
	if d < 0 {
		return 0, false
	}
	return d, true
}

// ContainsExercise reports whether the session includes the exercise.
func (s *Session) ContainsExercise(exerciseID int64) bool {
	for _, ex := range s.Exercises {
		if ex.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

// ABOUTME: Tests for entity model helpers.
// ABOUTME: Covers session durations, UTC day grouping, and membership checks.
package models

import (
	"testing"
	"time"
)

func TestSessionDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	before := start.Add(-time.Minute)

	tests := []struct {
		name    string
		session Session
		want    time.Duration
		wantOK  bool
	}{
		{
			name:    "complete session",
			session: Session{StartTime: start, EndTime: &end},
			want:    30 * time.Minute,
			wantOK:  true,
		},
		{
			name:    "open session",
			session: Session{StartTime: start},
			wantOK:  false,
		},
		{
			name:    "missing start",
			session: Session{EndTime: &end},
			wantOK:  false,
		},
		{
			name:    "end before start",
			session: Session{StartTime: start, EndTime: &before},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.session.Duration()
			if ok != tt.wantOK {
				t.Fatalf("Duration() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionContainsExercise(t *testing.T) {
	s := Session{Exercises: []SessionExercise{{ID: 1, ExerciseID: 7}}}

	if !s.ContainsExercise(7) {
		t.Error("expected session to contain exercise 7")
	}
	if s.ContainsExercise(8) {
		t.Error("did not expect session to contain exercise 8")
	}
}

func TestHistoryEntryDayUsesUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{
			name:  "plain UTC time",
			start: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
			want:  "2026-02-10",
		},
		{
			name:  "late local evening crosses into the next UTC day",
			start: time.Date(2026, 2, 10, 23, 30, 0, 0, loc),
			want:  "2026-02-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := HistoryEntry{StartTime: tt.start}
			if got := e.Day(); got != tt.want {
				t.Errorf("Day() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagInCategory(t *testing.T) {
	tag := Tag{ID: 1, CategoryIDs: []int64{3, 5}}

	if !tag.InCategory(3) || !tag.InCategory(5) {
		t.Error("expected membership in categories 3 and 5")
	}
	if tag.InCategory(4) {
		t.Error("did not expect membership in category 4")
	}

	empty := Tag{ID: 2}
	if empty.InCategory(3) {
		t.Error("tag with no categories belongs nowhere")
	}
}

func TestExerciseHasTag(t *testing.T) {
	ex := Exercise{ID: 1, TagIDs: []int64{10}}

	if !ex.HasTag(10) {
		t.Error("expected exercise to carry tag 10")
	}
	if ex.HasTag(11) {
		t.Error("did not expect tag 11")
	}
}

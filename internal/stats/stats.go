// ABOUTME: Aggregation engine: pure recompute-on-read statistics.
// ABOUTME: Averages, daily BPM progress, totals, distributions, frequency.

// Package stats computes numeric aggregates over history entries,
// sessions, and the server's practice-stats payload. Every function is
// a pure function of its inputs so results always match direct
// aggregation over the live collections; there are no running counters
// that can drift. Missing optional fields count as zero rather than
// failing. A nil *models.PracticeStats means "no data yet" and yields
// zero values and empty slices.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/practice/internal/models"
)

// AverageBPM is the arithmetic mean of bpm over all entries, rounded to
// the nearest integer. Entries without a bpm contribute zero to the sum
// but still count toward the denominator. Returns 0 for no entries.
func AverageBPM(entries []models.HistoryEntry) int {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		if e.BPM != nil {
			sum += *e.BPM
		}
	}
	return int(math.Round(float64(sum) / float64(len(entries))))
}

// AverageRating is the mean rating rounded to one decimal place.
// Entries without a rating count as zero. Returns 0 for no entries.
func AverageRating(entries []models.HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		if e.Rating != nil {
			sum += *e.Rating
		}
	}
	return math.Round(float64(sum)/float64(len(entries))*10) / 10
}

// BPMPoint is one day's best tempo for an exercise.
type BPMPoint struct {
	Date string `json:"date"` // YYYY-MM-DD, UTC
	BPM  int    `json:"bpm"`
}

// BPMProgress filters entries by exercise, groups them by UTC calendar
// day, and keeps the maximum bpm seen each day. The series is
// chronologically ascending. Entries without a bpm count as zero.
func BPMProgress(entries []models.HistoryEntry, exerciseID int64) []BPMPoint {
	byDay := make(map[string]int)
	for _, e := range entries {
		if e.ExerciseID != exerciseID {
			continue
		}
		bpm := 0
		if e.BPM != nil {
			bpm = *e.BPM
		}
		day := e.Day()
		if best, ok := byDay[day]; !ok || bpm > best {
			byDay[day] = bpm
		}
	}
	if len(byDay) == 0 {
		return nil
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]BPMPoint, len(days))
	for i, day := range days {
		out[i] = BPMPoint{Date: day, BPM: byDay[day]}
	}
	return out
}

// TotalPracticeTime sums session durations in minutes. Sessions missing
// either timestamp contribute zero; they are not errors.
func TotalPracticeTime(sessions []models.Session) float64 {
	var total float64
	for i := range sessions {
		if d, ok := sessions[i].Duration(); ok {
			total += d.Minutes()
		}
	}
	return total
}

// FrequencyPoint is one day's practiced minutes, optionally scoped to a
// category. CategoryID nil marks the overall aggregate series.
type FrequencyPoint struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Minutes    float64 `json:"minutes"`
	CategoryID *int64  `json:"category_id"`
}

// Frequency converts the practice-stats payload into chartable points:
// the overall daily series first (CategoryID nil), then one series per
// category that carries its own frequency breakdown.
func Frequency(stats *models.PracticeStats) []FrequencyPoint {
	if stats == nil {
		return nil
	}

	var out []FrequencyPoint
	for _, p := range stats.PracticeFrequency {
		out = append(out, FrequencyPoint{
			Date:    dayString(p.Date),
			Minutes: float64(p.DurationSeconds) / 60,
		})
	}
	for _, cat := range stats.CategoryDistribution {
		id := cat.CategoryID
		for _, p := range cat.PracticeFrequency {
			catID := id
			out = append(out, FrequencyPoint{
				Date:       dayString(p.Date),
				Minutes:    float64(p.DurationSeconds) / 60,
				CategoryID: &catID,
			})
		}
	}
	return out
}

// Bucket is one slice of a time distribution.
type Bucket struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Minutes    float64 `json:"minutes"`
	Percentage float64 `json:"percentage"`
}

// CategoryDistribution returns per-category buckets from the stats
// payload, durations converted to minutes.
func CategoryDistribution(stats *models.PracticeStats) []Bucket {
	if stats == nil {
		return nil
	}
	out := make([]Bucket, 0, len(stats.CategoryDistribution))
	for _, d := range stats.CategoryDistribution {
		out = append(out, Bucket{
			ID:         d.CategoryID,
			Name:       d.CategoryName,
			Minutes:    float64(d.DurationSeconds) / 60,
			Percentage: d.Percentage,
		})
	}
	return out
}

// ExerciseDistribution returns per-exercise buckets from the stats
// payload, durations converted to minutes.
func ExerciseDistribution(stats *models.PracticeStats) []Bucket {
	if stats == nil {
		return nil
	}
	out := make([]Bucket, 0, len(stats.ExerciseDistribution))
	for _, d := range stats.ExerciseDistribution {
		out = append(out, Bucket{
			ID:         d.ExerciseID,
			Name:       d.ExerciseName,
			Minutes:    float64(d.DurationSeconds) / 60,
			Percentage: d.Percentage,
		})
	}
	return out
}

// TopN sorts buckets descending by practiced minutes and truncates.
func TopN(buckets []Bucket, n int) []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	sort.Slice(out, func(i, j int) bool { return out[i].Minutes > out[j].Minutes })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TotalMinutes is the stats payload's grand total in minutes.
func TotalMinutes(stats *models.PracticeStats) float64 {
	if stats == nil {
		return 0
	}
	return float64(stats.TotalDurationSeconds) / 60
}

// AvgSessionMinutes is the stats payload's mean session length in minutes.
func AvgSessionMinutes(stats *models.PracticeStats) float64 {
	if stats == nil {
		return 0
	}
	return stats.AvgSessionDurationSeconds / 60
}

func dayString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

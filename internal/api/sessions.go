// ABOUTME: Session endpoints: CRUD, nested session-exercise ops, stats.
// ABOUTME: Date-range filters serialize as RFC3339 timestamps.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/harperreed/practice/internal/models"
)

// DateRange bounds a query by start/end time. Nil means unbounded.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

func (r DateRange) values() url.Values {
	v := url.Values{}
	if r.StartDate != nil {
		v.Set("start_date", r.StartDate.UTC().Format(time.RFC3339))
	}
	if r.EndDate != nil {
		v.Set("end_date", r.EndDate.UTC().Format(time.RFC3339))
	}
	return v
}

// SessionFilter combines pagination with a date range.
type SessionFilter struct {
	ListFilter
	DateRange
}

func (f SessionFilter) values() url.Values {
	v := f.ListFilter.values()
	for key, vals := range f.DateRange.values() {
		v[key] = vals
	}
	return v
}

type sessionListResponse struct {
	Sessions   []models.Session `json:"sessions"`
	TotalCount int              `json:"total_count"`
}

// ListSessions returns all sessions matching the filter.
func (c *Client) ListSessions(ctx context.Context, filter SessionFilter) ([]models.Session, int, error) {
	var resp sessionListResponse
	if err := c.do(ctx, "GET", "/sessions", filter.values(), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Sessions, resp.TotalCount, nil
}

// GetSession fetches a single session with its exercises.
func (c *Client) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, "GET", fmt.Sprintf("/sessions/%d", id), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSession creates a session; the server assigns the id.
func (c *Client) CreateSession(ctx context.Context, data models.Session) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, "POST", "/sessions", nil, data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSession applies the fields named in fieldMask and returns the
// server's full updated representation.
func (c *Client) UpdateSession(ctx context.Context, id int64, data models.Session, fieldMask []string) (*models.Session, error) {
	body := map[string]any{
		"session":     data,
		"update_mask": strings.Join(fieldMask, ","),
	}
	var s models.Session
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/sessions/%d", id), nil, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session by id.
func (c *Client) DeleteSession(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/sessions/%d", id), nil, nil, nil)
}

// AddSessionExercise appends an exercise entry to a session.
func (c *Client) AddSessionExercise(ctx context.Context, sessionID int64, data models.SessionExercise) (*models.SessionExercise, error) {
	var se models.SessionExercise
	path := fmt.Sprintf("/sessions/%d/exercises", sessionID)
	if err := c.do(ctx, "POST", path, nil, data, &se); err != nil {
		return nil, err
	}
	return &se, nil
}

// UpdateSessionExercise updates one exercise entry within a session.
func (c *Client) UpdateSessionExercise(ctx context.Context, sessionID, entryID int64, data models.SessionExercise, fieldMask []string) (*models.SessionExercise, error) {
	body := map[string]any{
		"exercise":    data,
		"update_mask": strings.Join(fieldMask, ","),
	}
	var se models.SessionExercise
	path := fmt.Sprintf("/sessions/%d/exercises/%d", sessionID, entryID)
	if err := c.do(ctx, "PATCH", path, nil, body, &se); err != nil {
		return nil, err
	}
	return &se, nil
}

// DeleteSessionExercise removes a session-exercise entry by its own id.
func (c *Client) DeleteSessionExercise(ctx context.Context, entryID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/session-exercises/%d", entryID), nil, nil, nil)
}

// GetPracticeStats fetches aggregate practice statistics over an
// optional date range.
func (c *Client) GetPracticeStats(ctx context.Context, rng DateRange) (*models.PracticeStats, error) {
	var stats models.PracticeStats
	if err := c.do(ctx, "GET", "/sessions/stats", rng.values(), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

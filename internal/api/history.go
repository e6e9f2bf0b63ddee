// ABOUTME: History endpoints for immutable practice-event records.
// ABOUTME: Supports date-range filtering alongside pagination.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/harperreed/practice/internal/models"
)

// HistoryFilter selects history entries by exercise, session, or date range.
type HistoryFilter struct {
	ListFilter
	DateRange
	ExerciseID int64
	SessionID  int64
}

func (f HistoryFilter) values() url.Values {
	v := f.ListFilter.values()
	for key, vals := range f.DateRange.values() {
		v[key] = vals
	}
	if f.ExerciseID > 0 {
		v.Set("exercise_id", fmt.Sprintf("%d", f.ExerciseID))
	}
	if f.SessionID > 0 {
		v.Set("session_id", fmt.Sprintf("%d", f.SessionID))
	}
	return v
}

type historyListResponse struct {
	HistoryEntries []models.HistoryEntry `json:"history_entries"`
	TotalCount     int                   `json:"total_count"`
}

// ListHistory returns all history entries matching the filter.
func (c *Client) ListHistory(ctx context.Context, filter HistoryFilter) ([]models.HistoryEntry, int, error) {
	var resp historyListResponse
	if err := c.do(ctx, "GET", "/history", filter.values(), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.HistoryEntries, resp.TotalCount, nil
}

// GetHistoryEntry fetches a single history entry by id.
func (c *Client) GetHistoryEntry(ctx context.Context, id int64) (*models.HistoryEntry, error) {
	var entry models.HistoryEntry
	if err := c.do(ctx, "GET", fmt.Sprintf("/history/%d", id), nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateHistoryEntry records a practice event; the server assigns the id.
func (c *Client) CreateHistoryEntry(ctx context.Context, data models.HistoryEntry) (*models.HistoryEntry, error) {
	var entry models.HistoryEntry
	if err := c.do(ctx, "POST", "/history", nil, data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateHistoryEntry applies the fields named in fieldMask and returns
// the server's full updated representation.
func (c *Client) UpdateHistoryEntry(ctx context.Context, id int64, data models.HistoryEntry, fieldMask []string) (*models.HistoryEntry, error) {
	body := map[string]any{
		"history":     data,
		"update_mask": strings.Join(fieldMask, ","),
	}
	var entry models.HistoryEntry
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/history/%d", id), nil, body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteHistoryEntry removes a history entry by id.
func (c *Client) DeleteHistoryEntry(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/history/%d", id), nil, nil, nil)
}

// ABOUTME: Exercise endpoints: CRUD, links, image upload, per-exercise stats.
// ABOUTME: Images are sent as multipart form data, everything else JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/practice/internal/models"
)

// ExerciseFilter selects exercises by category, tag, or search term.
type ExerciseFilter struct {
	ListFilter
	CategoryIDs []int64
	TagIDs      []int64
	SearchTerm  string
}

type exerciseListResponse struct {
	Exercises  []models.Exercise `json:"exercises"`
	TotalCount int               `json:"total_count"`
}

// ListExercises returns all exercises matching the filter.
func (c *Client) ListExercises(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, int, error) {
	v := filter.values()
	if len(filter.CategoryIDs) > 0 {
		v.Set("category_ids", joinIDs(filter.CategoryIDs))
	}
	if len(filter.TagIDs) > 0 {
		v.Set("tag_ids", joinIDs(filter.TagIDs))
	}
	if filter.SearchTerm != "" {
		v.Set("search_term", filter.SearchTerm)
	}
	var resp exerciseListResponse
	if err := c.do(ctx, "GET", "/exercises", v, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Exercises, resp.TotalCount, nil
}

// GetExercise fetches a single exercise with its links and images.
func (c *Client) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	var ex models.Exercise
	if err := c.do(ctx, "GET", fmt.Sprintf("/exercises/%d", id), nil, nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// CreateExercise creates an exercise; the server assigns the id.
func (c *Client) CreateExercise(ctx context.Context, data models.Exercise) (*models.Exercise, error) {
	var ex models.Exercise
	if err := c.do(ctx, "POST", "/exercises", nil, data, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// UpdateExercise applies the fields named in fieldMask and returns the
// server's full updated representation.
func (c *Client) UpdateExercise(ctx context.Context, id int64, data models.Exercise, fieldMask []string) (*models.Exercise, error) {
	body := map[string]any{
		"exercise":    data,
		"update_mask": strings.Join(fieldMask, ","),
	}
	var ex models.Exercise
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/exercises/%d", id), nil, body, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// DeleteExercise removes an exercise by id.
func (c *Client) DeleteExercise(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/exercises/%d", id), nil, nil, nil)
}

// AddExerciseLink attaches a reference link to an exercise.
func (c *Client) AddExerciseLink(ctx context.Context, exerciseID int64, link models.Link) (*models.Link, error) {
	var created models.Link
	path := fmt.Sprintf("/exercises/%d/links", exerciseID)
	if err := c.do(ctx, "POST", path, nil, link, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteExerciseLink removes a link by its own id.
func (c *Client) DeleteExerciseLink(ctx context.Context, linkID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/exercise-links/%d", linkID), nil, nil, nil)
}

// AddExerciseImage uploads image bytes for an exercise as multipart form
// data and returns the stored image record.
func (c *Client) AddExerciseImage(ctx context.Context, exerciseID int64, filename, contentType string, data []byte) (*models.Image, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write image data: %w", err)
	}
	if contentType != "" {
		if err := w.WriteField("content_type", contentType); err != nil {
			return nil, fmt.Errorf("write content type: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}

	u := fmt.Sprintf("%s/exercises/%d/images", c.baseURL, exerciseID)
	req, err := http.NewRequestWithContext(ctx, "POST", u, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("image upload failed", "exercise_id", exerciseID, "err", err)
		return nil, &Error{Status: 0, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		c.logger.Warn("image upload rejected", "exercise_id", exerciseID,
			"status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	var img models.Image
	if err := json.NewDecoder(resp.Body).Decode(&img); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &img, nil
}

// DeleteExerciseImage removes an image by its own id.
func (c *Client) DeleteExerciseImage(ctx context.Context, imageID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/exercise-images/%d", imageID), nil, nil, nil)
}

// GetExerciseStats fetches server-computed stats for one exercise over
// an optional date range.
func (c *Client) GetExerciseStats(ctx context.Context, exerciseID int64, rng DateRange) (*models.ExerciseStats, error) {
	var stats models.ExerciseStats
	path := fmt.Sprintf("/exercises/%d/stats", exerciseID)
	if err := c.do(ctx, "GET", path, rng.values(), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

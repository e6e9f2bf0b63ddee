// ABOUTME: Tag endpoints of the practice API.
// ABOUTME: CRUD plus category membership carried on the tag itself.
package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/practice/internal/models"
)

type tagListResponse struct {
	Tags       []models.Tag `json:"tags"`
	TotalCount int          `json:"total_count"`
}

// ListTags returns all tags matching the filter.
func (c *Client) ListTags(ctx context.Context, filter ListFilter) ([]models.Tag, int, error) {
	var resp tagListResponse
	if err := c.do(ctx, "GET", "/tags", filter.values(), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Tags, resp.TotalCount, nil
}

// GetTag fetches a single tag by id.
func (c *Client) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, "GET", fmt.Sprintf("/tags/%d", id), nil, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a tag; the server assigns the id.
func (c *Client) CreateTag(ctx context.Context, data models.Tag) (*models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, "POST", "/tags", nil, data, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag applies the fields named in fieldMask and returns the
// server's full updated representation.
func (c *Client) UpdateTag(ctx context.Context, id int64, data models.Tag, fieldMask []string) (*models.Tag, error) {
	body := map[string]any{
		"tag":         data,
		"update_mask": strings.Join(fieldMask, ","),
	}
	var tag models.Tag
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/tags/%d", id), nil, body, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag by id.
func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/tags/%d", id), nil, nil, nil)
}

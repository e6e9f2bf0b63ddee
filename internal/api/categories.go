// ABOUTME: Category endpoints of the practice API.
// ABOUTME: Plain CRUD; update uses field-mask semantics.
package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/practice/internal/models"
)

type categoryListResponse struct {
	Categories []models.Category `json:"categories"`
	TotalCount int               `json:"total_count"`
}

// ListCategories returns all categories matching the filter.
func (c *Client) ListCategories(ctx context.Context, filter ListFilter) ([]models.Category, int, error) {
	var resp categoryListResponse
	if err := c.do(ctx, "GET", "/categories", filter.values(), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Categories, resp.TotalCount, nil
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, "GET", fmt.Sprintf("/categories/%d", id), nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateCategory creates a category; the server assigns the id.
func (c *Client) CreateCategory(ctx context.Context, data models.Category) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, "POST", "/categories", nil, data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory applies the fields named in fieldMask and returns the
// server's full updated representation.
func (c *Client) UpdateCategory(ctx context.Context, id int64, data models.Category, fieldMask []string) (*models.Category, error) {
	body := map[string]any{
		"category":    data,
		"update_mask": strings.Join(fieldMask, ","),
	}
	var cat models.Category
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/categories/%d", id), nil, body, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}

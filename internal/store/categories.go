// ABOUTME: Category store: cached collection of server-owned categories.
// ABOUTME: Thinnest of the entity stores; categories are just {id, name}.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

// CategoryService is the transport contract the store consumes.
// *api.Client satisfies it.
type CategoryService interface {
	ListCategories(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, data models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, data models.Category, fieldMask []string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryStore caches the category collection.
type CategoryStore struct {
	*cache[models.Category]
	svc CategoryService
}

// NewCategoryStore creates a store backed by the given transport.
func NewCategoryStore(svc CategoryService) *CategoryStore {
	return &CategoryStore{
		cache: newCache(func(c *models.Category) int64 { return c.ID }),
		svc:   svc,
	}
}

// FetchAll replaces the collection with the server's result set.
// On failure the previously cached collection stays visible.
func (s *CategoryStore) FetchAll(ctx context.Context, filter api.ListFilter) error {
	s.begin(&s.collectionOp)
	items, total, err := s.svc.ListCategories(ctx, filter)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to fetch categories"))
		return fmt.Errorf("fetch categories: %w", err)
	}
	s.replaceAll(items, total)
	return nil
}

// FetchOne focuses a category and upserts it into the collection.
func (s *CategoryStore) FetchOne(ctx context.Context, id int64) (*models.Category, error) {
	s.begin(&s.currentOp)
	cat, err := s.svc.GetCategory(ctx, id)
	if err != nil {
		s.fail(&s.currentOp, api.Message(err, fmt.Sprintf("Failed to fetch category with ID %d", id)))
		return nil, fmt.Errorf("fetch category %d: %w", id, err)
	}
	s.setCurrent(cat)
	return cat, nil
}

// Create sends a new category and appends the server's copy on success.
// The payload must not carry a client-side id.
func (s *CategoryStore) Create(ctx context.Context, data models.Category) (*models.Category, error) {
	if data.ID != 0 {
		err := fmt.Errorf("create category: client-supplied id %d", data.ID)
		s.fail(&s.collectionOp, err.Error())
		return nil, err
	}
	s.begin(&s.collectionOp)
	cat, err := s.svc.CreateCategory(ctx, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to create category"))
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.append(*cat)
	return cat, nil
}

// Update sends only the fields named in fieldMask and caches the
// server's full returned representation.
func (s *CategoryStore) Update(ctx context.Context, id int64, data models.Category, fieldMask []string) (*models.Category, error) {
	s.begin(&s.collectionOp)
	cat, err := s.svc.UpdateCategory(ctx, id, data, fieldMask)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to update category with ID %d", id)))
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	s.replace(*cat)
	return cat, nil
}

// Delete removes the category and clears the focus if it matched.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteCategory(ctx, id); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete category with ID %d", id)))
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	s.remove(id)
	return nil
}

// SortedByName returns the cached categories sorted alphabetically.
func (s *CategoryStore) SortedByName() []models.Category {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// ABOUTME: Tag store: cached collection of tags with category membership.
// ABOUTME: Tags are the join edge the relationship deriver walks.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

// TagService is the transport contract the store consumes.
type TagService interface {
	ListTags(ctx context.Context, filter api.ListFilter) ([]models.Tag, int, error)
	GetTag(ctx context.Context, id int64) (*models.Tag, error)
	CreateTag(ctx context.Context, data models.Tag) (*models.Tag, error)
	UpdateTag(ctx context.Context, id int64, data models.Tag, fieldMask []string) (*models.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

// TagStore caches the tag collection.
type TagStore struct {
	*cache[models.Tag]
	svc TagService
}

// NewTagStore creates a store backed by the given transport.
func NewTagStore(svc TagService) *TagStore {
	return &TagStore{
		cache: newCache(func(t *models.Tag) int64 { return t.ID }),
		svc:   svc,
	}
}

// FetchAll replaces the collection with the server's result set.
func (s *TagStore) FetchAll(ctx context.Context, filter api.ListFilter) error {
	s.begin(&s.collectionOp)
	items, total, err := s.svc.ListTags(ctx, filter)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to fetch tags"))
		return fmt.Errorf("fetch tags: %w", err)
	}
	s.replaceAll(items, total)
	return nil
}

// FetchOne focuses a tag and upserts it into the collection.
func (s *TagStore) FetchOne(ctx context.Context, id int64) (*models.Tag, error) {
	s.begin(&s.currentOp)
	tag, err := s.svc.GetTag(ctx, id)
	if err != nil {
		s.fail(&s.currentOp, api.Message(err, fmt.Sprintf("Failed to fetch tag with ID %d", id)))
		return nil, fmt.Errorf("fetch tag %d: %w", id, err)
	}
	s.setCurrent(tag)
	return tag, nil
}

// Create sends a new tag and appends the server's copy on success.
func (s *TagStore) Create(ctx context.Context, data models.Tag) (*models.Tag, error) {
	if data.ID != 0 {
		err := fmt.Errorf("create tag: client-supplied id %d", data.ID)
		s.fail(&s.collectionOp, err.Error())
		return nil, err
	}
	s.begin(&s.collectionOp)
	tag, err := s.svc.CreateTag(ctx, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to create tag"))
		return nil, fmt.Errorf("create tag: %w", err)
	}
	s.append(*tag)
	return tag, nil
}

// Update sends only the fields named in fieldMask and caches the
// server's full returned representation.
func (s *TagStore) Update(ctx context.Context, id int64, data models.Tag, fieldMask []string) (*models.Tag, error) {
	s.begin(&s.collectionOp)
	tag, err := s.svc.UpdateTag(ctx, id, data, fieldMask)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to update tag with ID %d", id)))
		return nil, fmt.Errorf("update tag %d: %w", id, err)
	}
	s.replace(*tag)
	return tag, nil
}

// Delete removes the tag and clears the focus if it matched.
func (s *TagStore) Delete(ctx context.Context, id int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteTag(ctx, id); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete tag with ID %d", id)))
		return fmt.Errorf("delete tag %d: %w", id, err)
	}
	s.remove(id)
	return nil
}

// SortedByName returns the cached tags sorted alphabetically.
func (s *TagStore) SortedByName() []models.Tag {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// ABOUTME: Tests for the category store against a fake transport.
// ABOUTME: Covers CRUD flows, status pairs, and failure isolation.
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

type fakeCategoryService struct {
	list   func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error)
	get    func(ctx context.Context, id int64) (*models.Category, error)
	create func(ctx context.Context, data models.Category) (*models.Category, error)
	update func(ctx context.Context, id int64, data models.Category, fieldMask []string) (*models.Category, error)
	delete func(ctx context.Context, id int64) error
}

func (f *fakeCategoryService) ListCategories(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
	return f.list(ctx, filter)
}

func (f *fakeCategoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return f.get(ctx, id)
}

func (f *fakeCategoryService) CreateCategory(ctx context.Context, data models.Category) (*models.Category, error) {
	return f.create(ctx, data)
}

func (f *fakeCategoryService) UpdateCategory(ctx context.Context, id int64, data models.Category, fieldMask []string) (*models.Category, error) {
	return f.update(ctx, id, data, fieldMask)
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func TestCategoryFetchAll(t *testing.T) {
	svc := &fakeCategoryService{
		list: func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
			return []models.Category{{ID: 1, Name: "Technique"}, {ID: 2, Name: "Repertoire"}}, 7, nil
		},
	}
	s := NewCategoryStore(svc)

	require.NoError(t, s.FetchAll(context.Background(), api.ListFilter{}))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 7, s.TotalCount(), "total count comes from the server, not len(items)")
	assert.Equal(t, StatusSucceeded, s.CollectionOp().Status)
	assert.Empty(t, s.CollectionOp().Err)
}

func TestCategoryFetchAllFailureKeepsPreviousState(t *testing.T) {
	fail := false
	svc := &fakeCategoryService{
		list: func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
			if fail {
				return nil, 0, &api.Error{Status: 500, Message: "database exploded"}
			}
			return []models.Category{{ID: 1, Name: "Technique"}}, 1, nil
		},
	}
	s := NewCategoryStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ListFilter{}))

	fail = true
	err := s.FetchAll(context.Background(), api.ListFilter{})

	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "a failed fetch must leave the cached collection intact")
	assert.Equal(t, StatusFailed, s.CollectionOp().Status)
	assert.Equal(t, "database exploded", s.CollectionOp().Err)
}

func TestCategoryFetchOneFocusesAndUpserts(t *testing.T) {
	svc := &fakeCategoryService{
		get: func(ctx context.Context, id int64) (*models.Category, error) {
			return &models.Category{ID: id, Name: "Theory"}, nil
		},
	}
	s := NewCategoryStore(svc)

	cat, err := s.FetchOne(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), cat.ID)
	assert.Equal(t, 1, s.Len(), "fetchOne must upsert into the collection")
	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Theory", cur.Name)
	assert.Equal(t, StatusSucceeded, s.CurrentOp().Status)
}

func TestCategoryFetchOneFailureSetsCurrentOpOnly(t *testing.T) {
	svc := &fakeCategoryService{
		get: func(ctx context.Context, id int64) (*models.Category, error) {
			return nil, &api.Error{Status: 404, Message: "no such category"}
		},
	}
	s := NewCategoryStore(svc)

	_, err := s.FetchOne(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, StatusFailed, s.CurrentOp().Status)
	assert.Equal(t, StatusIdle, s.CollectionOp().Status, "families track status independently")
}

func TestCategoryCreateAppendsServerCopy(t *testing.T) {
	svc := &fakeCategoryService{
		create: func(ctx context.Context, data models.Category) (*models.Category, error) {
			data.ID = 42
			return &data, nil
		},
	}
	s := NewCategoryStore(svc)

	cat, err := s.Create(context.Background(), models.Category{Name: "Ear training"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), cat.ID, "the server assigns the id")
	assert.Equal(t, 1, s.Len())
}

func TestCategoryCreateRejectsClientSuppliedID(t *testing.T) {
	s := NewCategoryStore(&fakeCategoryService{})

	_, err := s.Create(context.Background(), models.Category{ID: 7, Name: "nope"})

	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, StatusFailed, s.CollectionOp().Status)
}

func TestCategoryUpdateCachesServerRepresentation(t *testing.T) {
	svc := &fakeCategoryService{
		list: func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
			return []models.Category{{ID: 1, Name: "Technique"}}, 1, nil
		},
		update: func(ctx context.Context, id int64, data models.Category, fieldMask []string) (*models.Category, error) {
			assert.Equal(t, []string{"name"}, fieldMask)
			// The server may normalize beyond what the client sent.
			return &models.Category{ID: id, Name: "technique"}, nil
		},
	}
	s := NewCategoryStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ListFilter{}))

	_, err := s.Update(context.Background(), 1, models.Category{Name: "TECHNIQUE"}, []string{"name"})

	require.NoError(t, err)
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "technique", got.Name, "the cache holds the server's copy, not the request payload")
}

func TestCategoryDeleteFailureKeepsEntity(t *testing.T) {
	svc := &fakeCategoryService{
		list: func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
			return []models.Category{{ID: 1, Name: "Technique"}}, 1, nil
		},
		delete: func(ctx context.Context, id int64) error {
			return errors.New("connection refused")
		},
	}
	s := NewCategoryStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ListFilter{}))

	err := s.Delete(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "nothing is removed until the server confirms")
	assert.Equal(t, StatusFailed, s.CollectionOp().Status)
	assert.Equal(t, "Failed to delete category with ID 1", s.CollectionOp().Err,
		"non-API errors fall back to the operation's own message")
}

func TestCategorySortedByName(t *testing.T) {
	svc := &fakeCategoryService{
		list: func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
			return []models.Category{{ID: 1, Name: "Zen"}, {ID: 2, Name: "Arpeggios"}}, 2, nil
		},
	}
	s := NewCategoryStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ListFilter{}))

	sorted := s.SortedByName()

	require.Len(t, sorted, 2)
	assert.Equal(t, "Arpeggios", sorted[0].Name)

	// Sorting must not reorder the underlying cache.
	assert.Equal(t, "Zen", s.Items()[0].Name)
}

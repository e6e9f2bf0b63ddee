// ABOUTME: Tests for the shared cache core semantics.
// ABOUTME: Covers upserts, focus handling, and resolution-order hazards.
package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

func TestCacheUpsertIsIdempotent(t *testing.T) {
	c := newCache(func(cat *models.Category) int64 { return cat.ID })

	c.setCurrent(&models.Category{ID: 1, Name: "Technique"})
	c.setCurrent(&models.Category{ID: 1, Name: "Technique (renamed)"})

	require.Equal(t, 1, c.Len(), "re-fetching the same id must not duplicate it")
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Technique (renamed)", got.Name)
}

func TestCacheRemoveClearsMatchingFocus(t *testing.T) {
	c := newCache(func(cat *models.Category) int64 { return cat.ID })
	c.replaceAll([]models.Category{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, 2)
	c.setCurrent(&models.Category{ID: 2, Name: "B"})

	c.remove(2)

	assert.Nil(t, c.Current())
	assert.Equal(t, 1, c.Len())

	// Removing an id that was never cached is a no-op.
	c.remove(99)
	assert.Equal(t, 1, c.Len())
}

func TestCacheRemoveKeepsUnrelatedFocus(t *testing.T) {
	c := newCache(func(cat *models.Category) int64 { return cat.ID })
	c.replaceAll([]models.Category{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, 2)
	c.setCurrent(&models.Category{ID: 1, Name: "A"})

	c.remove(2)

	cur := c.Current()
	require.NotNil(t, cur)
	assert.Equal(t, int64(1), cur.ID)
}

func TestCacheReplaceFollowsFocus(t *testing.T) {
	c := newCache(func(cat *models.Category) int64 { return cat.ID })
	c.setCurrent(&models.Category{ID: 3, Name: "Old"})

	c.replace(models.Category{ID: 3, Name: "New"})

	cur := c.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "New", cur.Name)
}

func TestCacheReplaceAllEmptyClearsCollection(t *testing.T) {
	c := newCache(func(cat *models.Category) int64 { return cat.ID })
	c.replaceAll([]models.Category{{ID: 1, Name: "A"}}, 1)

	c.replaceAll(nil, 0)

	assert.Equal(t, 0, c.Len(), "an empty server result must clear stale entries")
	assert.Equal(t, 0, c.TotalCount())
}

func TestCacheItemsReturnsCopy(t *testing.T) {
	c := newCache(func(cat *models.Category) int64 { return cat.ID })
	c.replaceAll([]models.Category{{ID: 1, Name: "A"}}, 1)

	items := c.Items()
	items[0].Name = "mutated"

	got, _ := c.Get(1)
	assert.Equal(t, "A", got.Name, "mutating a snapshot must not touch the cache")
}

// A slow list response that resolves after a fresher one overwrites it.
// The cache enforces no ordering across calls in the same family, so
// the collection ends up reflecting the stale result set.
func TestFetchAllLastResolvedWins(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	svc := &fakeCategoryService{
		list: func(ctx context.Context, filter api.ListFilter) ([]models.Category, int, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				close(firstStarted)
				<-release
				return []models.Category{{ID: 1, Name: "stale"}}, 1, nil
			}
			return []models.Category{{ID: 1, Name: "fresh"}, {ID: 2, Name: "extra"}}, 2, nil
		},
	}
	s := NewCategoryStore(svc)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.FetchAll(context.Background(), api.ListFilter{})
	}()
	go func() {
		defer wg.Done()
		<-firstStarted
		_ = s.FetchAll(context.Background(), api.ListFilter{})
		close(release)
	}()
	wg.Wait()

	require.Equal(t, 1, s.Len(), "the later-resolving stale response overwrites the fresh one")
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "stale", got.Name)
}

// ABOUTME: Tests for the exercise store against a fake transport.
// ABOUTME: Covers link/image patching, stats caching, and tag filtering.
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

type fakeExerciseService struct {
	list        func(ctx context.Context, filter api.ExerciseFilter) ([]models.Exercise, int, error)
	get         func(ctx context.Context, id int64) (*models.Exercise, error)
	create      func(ctx context.Context, data models.Exercise) (*models.Exercise, error)
	update      func(ctx context.Context, id int64, data models.Exercise, fieldMask []string) (*models.Exercise, error)
	delete      func(ctx context.Context, id int64) error
	addLink     func(ctx context.Context, exerciseID int64, link models.Link) (*models.Link, error)
	deleteLink  func(ctx context.Context, linkID int64) error
	addImage    func(ctx context.Context, exerciseID int64, filename, contentType string, data []byte) (*models.Image, error)
	deleteImage func(ctx context.Context, imageID int64) error
	getStats    func(ctx context.Context, exerciseID int64, rng api.DateRange) (*models.ExerciseStats, error)
}

func (f *fakeExerciseService) ListExercises(ctx context.Context, filter api.ExerciseFilter) ([]models.Exercise, int, error) {
	return f.list(ctx, filter)
}

func (f *fakeExerciseService) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	return f.get(ctx, id)
}

func (f *fakeExerciseService) CreateExercise(ctx context.Context, data models.Exercise) (*models.Exercise, error) {
	return f.create(ctx, data)
}

func (f *fakeExerciseService) UpdateExercise(ctx context.Context, id int64, data models.Exercise, fieldMask []string) (*models.Exercise, error) {
	return f.update(ctx, id, data, fieldMask)
}

func (f *fakeExerciseService) DeleteExercise(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func (f *fakeExerciseService) AddExerciseLink(ctx context.Context, exerciseID int64, link models.Link) (*models.Link, error) {
	return f.addLink(ctx, exerciseID, link)
}

func (f *fakeExerciseService) DeleteExerciseLink(ctx context.Context, linkID int64) error {
	return f.deleteLink(ctx, linkID)
}

func (f *fakeExerciseService) AddExerciseImage(ctx context.Context, exerciseID int64, filename, contentType string, data []byte) (*models.Image, error) {
	return f.addImage(ctx, exerciseID, filename, contentType, data)
}

func (f *fakeExerciseService) DeleteExerciseImage(ctx context.Context, imageID int64) error {
	return f.deleteImage(ctx, imageID)
}

func (f *fakeExerciseService) GetExerciseStats(ctx context.Context, exerciseID int64, rng api.DateRange) (*models.ExerciseStats, error) {
	return f.getStats(ctx, exerciseID, rng)
}

func exerciseFixture() *fakeExerciseService {
	return &fakeExerciseService{
		list: func(ctx context.Context, filter api.ExerciseFilter) ([]models.Exercise, int, error) {
			return []models.Exercise{
				{ID: 1, Name: "Spider chromatics", TagIDs: []int64{10}},
				{ID: 2, Name: "Bach prelude", TagIDs: []int64{20}},
			}, 2, nil
		},
	}
}

func TestExerciseAddLinkPatchesParent(t *testing.T) {
	svc := exerciseFixture()
	svc.addLink = func(ctx context.Context, exerciseID int64, link models.Link) (*models.Link, error) {
		link.ID = 100
		return &link, nil
	}
	s := NewExerciseStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ExerciseFilter{}))

	created, err := s.AddLink(context.Background(), 1, models.Link{URL: "https://example.com/lesson"})

	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	got, ok := s.Get(1)
	require.True(t, ok)
	require.Len(t, got.Links, 1)
	assert.Equal(t, "https://example.com/lesson", got.Links[0].URL)

	other, _ := s.Get(2)
	assert.Empty(t, other.Links, "only the parent exercise is patched")
}

func TestExerciseDeleteLinkSweepsAllCached(t *testing.T) {
	svc := exerciseFixture()
	svc.list = func(ctx context.Context, filter api.ExerciseFilter) ([]models.Exercise, int, error) {
		return []models.Exercise{
			{ID: 1, Name: "A", Links: []models.Link{{ID: 100, URL: "https://a"}, {ID: 101, URL: "https://b"}}},
		}, 1, nil
	}
	svc.deleteLink = func(ctx context.Context, linkID int64) error { return nil }
	s := NewExerciseStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ExerciseFilter{}))

	require.NoError(t, s.DeleteLink(context.Background(), 100))

	got, _ := s.Get(1)
	require.Len(t, got.Links, 1)
	assert.Equal(t, int64(101), got.Links[0].ID)
}

func TestExerciseAddImagePatchesParent(t *testing.T) {
	svc := exerciseFixture()
	svc.addImage = func(ctx context.Context, exerciseID int64, filename, contentType string, data []byte) (*models.Image, error) {
		return &models.Image{ID: 200, Filename: filename}, nil
	}
	s := NewExerciseStore(svc)
	require.NoError(t, s.FetchAll(context.Background(), api.ExerciseFilter{}))

	img, err := s.AddImage(context.Background(), 2, "fingering.png", "image/png", []byte{0x89})

	require.NoError(t, err)
	assert.Equal(t, "fingering.png", img.Filename)
	got, _ := s.Get(2)
	require.Len(t, got.Images, 1)
}

func TestExerciseFetchStatsCachesByID(t *testing.T) {
	svc := exerciseFixture()
	svc.getStats = func(ctx context.Context, exerciseID int64, rng api.DateRange) (*models.ExerciseStats, error) {
		return &models.ExerciseStats{ExerciseID: exerciseID, TotalEntries: 12, AvgBPM: 96, MaxBPM: 120}, nil
	}
	s := NewExerciseStore(svc)

	_, ok := s.Stats(1)
	assert.False(t, ok, "stats start absent, distinct from zero values")

	got, err := s.FetchStats(context.Background(), 1, api.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 96, got.AvgBPM)

	cached, ok := s.Stats(1)
	require.True(t, ok)
	assert.Equal(t, 120, cached.MaxBPM)
	assert.Equal(t, StatusSucceeded, s.StatsOp().Status)
}

func TestExerciseFetchStatsFailure(t *testing.T) {
	svc := exerciseFixture()
	svc.getStats = func(ctx context.Context, exerciseID int64, rng api.DateRange) (*models.ExerciseStats, error) {
		return nil, &api.Error{Status: 503, Message: "try later"}
	}
	s := NewExerciseStore(svc)

	_, err := s.FetchStats(context.Background(), 1, api.DateRange{})

	require.Error(t, err)
	assert.Equal(t, StatusFailed, s.StatsOp().Status)
	assert.Equal(t, "try later", s.StatsOp().Err)
	_, ok := s.Stats(1)
	assert.False(t, ok)
}

func TestExerciseByTag(t *testing.T) {
	s := NewExerciseStore(exerciseFixture())
	require.NoError(t, s.FetchAll(context.Background(), api.ExerciseFilter{}))

	matches := s.ByTag(10)

	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].ID)
	assert.Empty(t, s.ByTag(999))
}

func TestExerciseUpdateFollowsFocus(t *testing.T) {
	svc := exerciseFixture()
	svc.get = func(ctx context.Context, id int64) (*models.Exercise, error) {
		return &models.Exercise{ID: id, Name: "Spider chromatics"}, nil
	}
	svc.update = func(ctx context.Context, id int64, data models.Exercise, fieldMask []string) (*models.Exercise, error) {
		return &models.Exercise{ID: id, Name: data.Name}, nil
	}
	s := NewExerciseStore(svc)
	_, err := s.FetchOne(context.Background(), 1)
	require.NoError(t, err)

	_, err = s.Update(context.Background(), 1, models.Exercise{Name: "Spider chromatics II"}, []string{"name"})
	require.NoError(t, err)

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Spider chromatics II", cur.Name, "the focused copy tracks updates to the same id")
}

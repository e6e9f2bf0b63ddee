// ABOUTME: Exercise store: cached exercises plus link/image patching.
// ABOUTME: Also caches per-exercise stats keyed by exercise id.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

// ExerciseService is the transport contract the store consumes.
type ExerciseService interface {
	ListExercises(ctx context.Context, filter api.ExerciseFilter) ([]models.Exercise, int, error)
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	CreateExercise(ctx context.Context, data models.Exercise) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id int64, data models.Exercise, fieldMask []string) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error
	AddExerciseLink(ctx context.Context, exerciseID int64, link models.Link) (*models.Link, error)
	DeleteExerciseLink(ctx context.Context, linkID int64) error
	AddExerciseImage(ctx context.Context, exerciseID int64, filename, contentType string, data []byte) (*models.Image, error)
	DeleteExerciseImage(ctx context.Context, imageID int64) error
	GetExerciseStats(ctx context.Context, exerciseID int64, rng api.DateRange) (*models.ExerciseStats, error)
}

// ExerciseStore caches the exercise collection and per-exercise stats.
type ExerciseStore struct {
	*cache[models.Exercise]
	svc ExerciseService

	// stats holds per-exercise stats endpoint results, keyed by
	// exercise id. Guarded by the embedded cache's mutex.
	stats map[int64]models.ExerciseStats
}

// NewExerciseStore creates a store backed by the given transport.
func NewExerciseStore(svc ExerciseService) *ExerciseStore {
	return &ExerciseStore{
		cache: newCache(func(e *models.Exercise) int64 { return e.ID }),
		svc:   svc,
		stats: make(map[int64]models.ExerciseStats),
	}
}

// FetchAll replaces the collection with the server's result set.
func (s *ExerciseStore) FetchAll(ctx context.Context, filter api.ExerciseFilter) error {
	s.begin(&s.collectionOp)
	items, total, err := s.svc.ListExercises(ctx, filter)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to fetch exercises"))
		return fmt.Errorf("fetch exercises: %w", err)
	}
	s.replaceAll(items, total)
	return nil
}

// FetchOne focuses an exercise and upserts it into the collection.
func (s *ExerciseStore) FetchOne(ctx context.Context, id int64) (*models.Exercise, error) {
	s.begin(&s.currentOp)
	ex, err := s.svc.GetExercise(ctx, id)
	if err != nil {
		s.fail(&s.currentOp, api.Message(err, fmt.Sprintf("Failed to fetch exercise with ID %d", id)))
		return nil, fmt.Errorf("fetch exercise %d: %w", id, err)
	}
	s.setCurrent(ex)
	return ex, nil
}

// Create sends a new exercise and appends the server's copy on success.
func (s *ExerciseStore) Create(ctx context.Context, data models.Exercise) (*models.Exercise, error) {
	if data.ID != 0 {
		err := fmt.Errorf("create exercise: client-supplied id %d", data.ID)
		s.fail(&s.collectionOp, err.Error())
		return nil, err
	}
	s.begin(&s.collectionOp)
	ex, err := s.svc.CreateExercise(ctx, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to create exercise"))
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	s.append(*ex)
	return ex, nil
}

// Update sends only the fields named in fieldMask and caches the
// server's full returned representation.
func (s *ExerciseStore) Update(ctx context.Context, id int64, data models.Exercise, fieldMask []string) (*models.Exercise, error) {
	s.begin(&s.collectionOp)
	ex, err := s.svc.UpdateExercise(ctx, id, data, fieldMask)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to update exercise with ID %d", id)))
		return nil, fmt.Errorf("update exercise %d: %w", id, err)
	}
	s.replace(*ex)
	return ex, nil
}

// Delete removes the exercise and clears the focus if it matched.
func (s *ExerciseStore) Delete(ctx context.Context, id int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteExercise(ctx, id); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete exercise with ID %d", id)))
		return fmt.Errorf("delete exercise %d: %w", id, err)
	}
	s.remove(id)
	return nil
}

// AddLink attaches a link on the server, then patches the cached parent.
func (s *ExerciseStore) AddLink(ctx context.Context, exerciseID int64, link models.Link) (*models.Link, error) {
	s.begin(&s.collectionOp)
	created, err := s.svc.AddExerciseLink(ctx, exerciseID, link)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to add link to exercise with ID %d", exerciseID)))
		return nil, fmt.Errorf("add link to exercise %d: %w", exerciseID, err)
	}
	s.patch(exerciseID, func(e *models.Exercise) {
		e.Links = append(e.Links, *created)
	})
	return created, nil
}

// DeleteLink removes a link on the server, then sweeps it out of every
// cached exercise (the server identifies links by their own id only).
func (s *ExerciseStore) DeleteLink(ctx context.Context, linkID int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteExerciseLink(ctx, linkID); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete link with ID %d", linkID)))
		return fmt.Errorf("delete link %d: %w", linkID, err)
	}
	s.patchAll(func(e *models.Exercise) {
		kept := e.Links[:0]
		for _, l := range e.Links {
			if l.ID != linkID {
				kept = append(kept, l)
			}
		}
		e.Links = kept
	})
	return nil
}

// AddImage uploads an image on the server, then patches the cached parent.
func (s *ExerciseStore) AddImage(ctx context.Context, exerciseID int64, filename, contentType string, data []byte) (*models.Image, error) {
	s.begin(&s.collectionOp)
	img, err := s.svc.AddExerciseImage(ctx, exerciseID, filename, contentType, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to add image to exercise with ID %d", exerciseID)))
		return nil, fmt.Errorf("add image to exercise %d: %w", exerciseID, err)
	}
	s.patch(exerciseID, func(e *models.Exercise) {
		e.Images = append(e.Images, *img)
	})
	return img, nil
}

// DeleteImage removes an image on the server, then sweeps it out of
// every cached exercise.
func (s *ExerciseStore) DeleteImage(ctx context.Context, imageID int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteExerciseImage(ctx, imageID); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete image with ID %d", imageID)))
		return fmt.Errorf("delete image %d: %w", imageID, err)
	}
	s.patchAll(func(e *models.Exercise) {
		kept := e.Images[:0]
		for _, img := range e.Images {
			if img.ID != imageID {
				kept = append(kept, img)
			}
		}
		e.Images = kept
	})
	return nil
}

// FetchStats loads server-computed stats for one exercise.
func (s *ExerciseStore) FetchStats(ctx context.Context, exerciseID int64, rng api.DateRange) (*models.ExerciseStats, error) {
	s.begin(&s.statsOp)
	stats, err := s.svc.GetExerciseStats(ctx, exerciseID, rng)
	if err != nil {
		s.fail(&s.statsOp, api.Message(err, fmt.Sprintf("Failed to fetch stats for exercise with ID %d", exerciseID)))
		return nil, fmt.Errorf("fetch stats for exercise %d: %w", exerciseID, err)
	}
	s.mu.Lock()
	s.stats[exerciseID] = *stats
	s.succeed(&s.statsOp)
	s.mu.Unlock()
	return stats, nil
}

// Stats returns the cached stats for an exercise, if fetched.
func (s *ExerciseStore) Stats(exerciseID int64) (models.ExerciseStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[exerciseID]
	return stats, ok
}

// SortedByName returns the cached exercises sorted alphabetically.
func (s *ExerciseStore) SortedByName() []models.Exercise {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// ByTag returns the cached exercises carrying the given tag.
func (s *ExerciseStore) ByTag(tagID int64) []models.Exercise {
	var out []models.Exercise
	for _, ex := range s.Items() {
		if ex.HasTag(tagID) {
			out = append(out, ex)
		}
	}
	return out
}

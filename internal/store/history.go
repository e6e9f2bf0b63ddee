// ABOUTME: History store: cached immutable practice-event records.
// ABOUTME: Feeds the aggregation engine; supports date-range queries.
package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

// HistoryService is the transport contract the store consumes.
type HistoryService interface {
	ListHistory(ctx context.Context, filter api.HistoryFilter) ([]models.HistoryEntry, int, error)
	GetHistoryEntry(ctx context.Context, id int64) (*models.HistoryEntry, error)
	CreateHistoryEntry(ctx context.Context, data models.HistoryEntry) (*models.HistoryEntry, error)
	UpdateHistoryEntry(ctx context.Context, id int64, data models.HistoryEntry, fieldMask []string) (*models.HistoryEntry, error)
	DeleteHistoryEntry(ctx context.Context, id int64) error
}

// HistoryStore caches the history entry collection.
type HistoryStore struct {
	*cache[models.HistoryEntry]
	svc HistoryService
}

// NewHistoryStore creates a store backed by the given transport.
func NewHistoryStore(svc HistoryService) *HistoryStore {
	return &HistoryStore{
		cache: newCache(func(h *models.HistoryEntry) int64 { return h.ID }),
		svc:   svc,
	}
}

// FetchAll replaces the collection with the server's result set.
func (s *HistoryStore) FetchAll(ctx context.Context, filter api.HistoryFilter) error {
	s.begin(&s.collectionOp)
	items, total, err := s.svc.ListHistory(ctx, filter)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to fetch history entries"))
		return fmt.Errorf("fetch history: %w", err)
	}
	s.replaceAll(items, total)
	return nil
}

// FetchOne focuses an entry and upserts it into the collection.
func (s *HistoryStore) FetchOne(ctx context.Context, id int64) (*models.HistoryEntry, error) {
	s.begin(&s.currentOp)
	entry, err := s.svc.GetHistoryEntry(ctx, id)
	if err != nil {
		s.fail(&s.currentOp, api.Message(err, fmt.Sprintf("Failed to fetch history entry with ID %d", id)))
		return nil, fmt.Errorf("fetch history entry %d: %w", id, err)
	}
	s.setCurrent(entry)
	return entry, nil
}

// Create records a practice event and appends the server's copy.
func (s *HistoryStore) Create(ctx context.Context, data models.HistoryEntry) (*models.HistoryEntry, error) {
	if data.ID != 0 {
		err := fmt.Errorf("create history entry: client-supplied id %d", data.ID)
		s.fail(&s.collectionOp, err.Error())
		return nil, err
	}
	s.begin(&s.collectionOp)
	entry, err := s.svc.CreateHistoryEntry(ctx, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to create history entry"))
		return nil, fmt.Errorf("create history entry: %w", err)
	}
	s.append(*entry)
	return entry, nil
}

// Update sends only the fields named in fieldMask and caches the
// server's full returned representation.
func (s *HistoryStore) Update(ctx context.Context, id int64, data models.HistoryEntry, fieldMask []string) (*models.HistoryEntry, error) {
	s.begin(&s.collectionOp)
	entry, err := s.svc.UpdateHistoryEntry(ctx, id, data, fieldMask)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to update history entry with ID %d", id)))
		return nil, fmt.Errorf("update history entry %d: %w", id, err)
	}
	s.replace(*entry)
	return entry, nil
}

// Delete removes the entry and clears the focus if it matched.
func (s *HistoryStore) Delete(ctx context.Context, id int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteHistoryEntry(ctx, id); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete history entry with ID %d", id)))
		return fmt.Errorf("delete history entry %d: %w", id, err)
	}
	s.remove(id)
	return nil
}

// SortedByDate returns cached entries newest first.
func (s *HistoryStore) SortedByDate() []models.HistoryEntry {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartTime.After(items[j].StartTime)
	})
	return items
}

// ByExercise returns cached entries for the given exercise.
func (s *HistoryStore) ByExercise(exerciseID int64) []models.HistoryEntry {
	var out []models.HistoryEntry
	for _, entry := range s.Items() {
		if entry.ExerciseID == exerciseID {
			out = append(out, entry)
		}
	}
	return out
}

// BySession returns cached entries recorded within the given session.
func (s *HistoryStore) BySession(sessionID int64) []models.HistoryEntry {
	var out []models.HistoryEntry
	for _, entry := range s.Items() {
		if entry.SessionID != nil && *entry.SessionID == sessionID {
			out = append(out, entry)
		}
	}
	return out
}

// ByDateRange returns cached entries within [start, end]. A nil bound
// leaves that side open.
func (s *HistoryStore) ByDateRange(start, end *time.Time) []models.HistoryEntry {
	var out []models.HistoryEntry
	for _, entry := range s.Items() {
		if start != nil && entry.StartTime.Before(*start) {
			continue
		}
		if end != nil && entry.StartTime.After(*end) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

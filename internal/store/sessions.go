// ABOUTME: Session store: cached sessions with nested exercise entries.
// ABOUTME: Also caches the aggregate practice stats payload.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/models"
)

// SessionService is the transport contract the store consumes.
type SessionService interface {
	ListSessions(ctx context.Context, filter api.SessionFilter) ([]models.Session, int, error)
	GetSession(ctx context.Context, id int64) (*models.Session, error)
	CreateSession(ctx context.Context, data models.Session) (*models.Session, error)
	UpdateSession(ctx context.Context, id int64, data models.Session, fieldMask []string) (*models.Session, error)
	DeleteSession(ctx context.Context, id int64) error
	AddSessionExercise(ctx context.Context, sessionID int64, data models.SessionExercise) (*models.SessionExercise, error)
	UpdateSessionExercise(ctx context.Context, sessionID, entryID int64, data models.SessionExercise, fieldMask []string) (*models.SessionExercise, error)
	DeleteSessionExercise(ctx context.Context, entryID int64) error
	GetPracticeStats(ctx context.Context, rng api.DateRange) (*models.PracticeStats, error)
}

// SessionStore caches the session collection and practice stats.
type SessionStore struct {
	*cache[models.Session]
	svc SessionService

	// practiceStats is nil until fetched: "no data yet", as opposed to
	// a fetched payload that happens to contain zeros.
	practiceStats *models.PracticeStats
}

// NewSessionStore creates a store backed by the given transport.
func NewSessionStore(svc SessionService) *SessionStore {
	return &SessionStore{
		cache: newCache(func(s *models.Session) int64 { return s.ID }),
		svc:   svc,
	}
}

// FetchAll replaces the collection with the server's result set.
func (s *SessionStore) FetchAll(ctx context.Context, filter api.SessionFilter) error {
	s.begin(&s.collectionOp)
	items, total, err := s.svc.ListSessions(ctx, filter)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to fetch practice sessions"))
		return fmt.Errorf("fetch sessions: %w", err)
	}
	s.replaceAll(items, total)
	return nil
}

// FetchOne focuses a session and upserts it into the collection.
func (s *SessionStore) FetchOne(ctx context.Context, id int64) (*models.Session, error) {
	s.begin(&s.currentOp)
	sess, err := s.svc.GetSession(ctx, id)
	if err != nil {
		s.fail(&s.currentOp, api.Message(err, fmt.Sprintf("Failed to fetch practice session with ID %d", id)))
		return nil, fmt.Errorf("fetch session %d: %w", id, err)
	}
	s.setCurrent(sess)
	return sess, nil
}

// Create sends a new session and appends the server's copy on success.
func (s *SessionStore) Create(ctx context.Context, data models.Session) (*models.Session, error) {
	if data.ID != 0 {
		err := fmt.Errorf("create session: client-supplied id %d", data.ID)
		s.fail(&s.collectionOp, err.Error())
		return nil, err
	}
	s.begin(&s.collectionOp)
	sess, err := s.svc.CreateSession(ctx, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, "Failed to create practice session"))
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.append(*sess)
	return sess, nil
}

// Update sends only the fields named in fieldMask and caches the
// server's full returned representation.
func (s *SessionStore) Update(ctx context.Context, id int64, data models.Session, fieldMask []string) (*models.Session, error) {
	s.begin(&s.collectionOp)
	sess, err := s.svc.UpdateSession(ctx, id, data, fieldMask)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to update session with ID %d", id)))
		return nil, fmt.Errorf("update session %d: %w", id, err)
	}
	s.replace(*sess)
	return sess, nil
}

// Delete removes the session and clears the focus if it matched.
func (s *SessionStore) Delete(ctx context.Context, id int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteSession(ctx, id); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete session with ID %d", id)))
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	s.remove(id)
	return nil
}

// AddExercise attaches an exercise entry to a session on the server,
// then patches the nested list on the locally cached parent if present.
// Callers needing stricter consistency refresh the session by id.
func (s *SessionStore) AddExercise(ctx context.Context, sessionID int64, data models.SessionExercise) (*models.SessionExercise, error) {
	s.begin(&s.collectionOp)
	entry, err := s.svc.AddSessionExercise(ctx, sessionID, data)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to add exercise to session %d", sessionID)))
		return nil, fmt.Errorf("add exercise to session %d: %w", sessionID, err)
	}
	s.patch(sessionID, func(sess *models.Session) {
		sess.Exercises = append(sess.Exercises, *entry)
	})
	return entry, nil
}

// UpdateExercise updates one nested exercise entry and patches the
// cached parent session in place.
func (s *SessionStore) UpdateExercise(ctx context.Context, sessionID, entryID int64, data models.SessionExercise, fieldMask []string) (*models.SessionExercise, error) {
	s.begin(&s.collectionOp)
	entry, err := s.svc.UpdateSessionExercise(ctx, sessionID, entryID, data, fieldMask)
	if err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to update exercise in session %d", sessionID)))
		return nil, fmt.Errorf("update exercise in session %d: %w", sessionID, err)
	}
	s.patch(sessionID, func(sess *models.Session) {
		for i := range sess.Exercises {
			if sess.Exercises[i].ID == entryID {
				sess.Exercises[i] = *entry
				return
			}
		}
	})
	return entry, nil
}

// DeleteExercise removes a nested entry on the server, then sweeps it
// out of every cached session (the entry id alone identifies it).
func (s *SessionStore) DeleteExercise(ctx context.Context, entryID int64) error {
	s.begin(&s.collectionOp)
	if err := s.svc.DeleteSessionExercise(ctx, entryID); err != nil {
		s.fail(&s.collectionOp, api.Message(err, fmt.Sprintf("Failed to delete exercise %d from session", entryID)))
		return fmt.Errorf("delete session exercise %d: %w", entryID, err)
	}
	s.patchAll(func(sess *models.Session) {
		kept := sess.Exercises[:0]
		for _, ex := range sess.Exercises {
			if ex.ID != entryID {
				kept = append(kept, ex)
			}
		}
		sess.Exercises = kept
	})
	return nil
}

// FetchPracticeStats loads the aggregate practice stats payload.
func (s *SessionStore) FetchPracticeStats(ctx context.Context, rng api.DateRange) (*models.PracticeStats, error) {
	s.begin(&s.statsOp)
	stats, err := s.svc.GetPracticeStats(ctx, rng)
	if err != nil {
		s.fail(&s.statsOp, api.Message(err, "Failed to fetch practice statistics"))
		return nil, fmt.Errorf("fetch practice stats: %w", err)
	}
	s.mu.Lock()
	s.practiceStats = stats
	s.succeed(&s.statsOp)
	s.mu.Unlock()
	return stats, nil
}

// PracticeStats returns the cached stats payload, nil when never fetched.
func (s *SessionStore) PracticeStats() *models.PracticeStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.practiceStats == nil {
		return nil
	}
	copied := *s.practiceStats
	return &copied
}

// SortedByDate returns cached sessions newest first.
func (s *SessionStore) SortedByDate() []models.Session {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartTime.After(items[j].StartTime)
	})
	return items
}

// ByExercise returns cached sessions that include the given exercise.
func (s *SessionStore) ByExercise(exerciseID int64) []models.Session {
	var out []models.Session
	for _, sess := range s.Items() {
		if sess.ContainsExercise(exerciseID) {
			out = append(out, sess)
		}
	}
	return out
}

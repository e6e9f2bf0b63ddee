// ABOUTME: Cross-store composition root giving access to all caches.
// ABOUTME: Pure wiring; holds no state beyond the five stores it builds.
package store

import "github.com/harperreed/practice/internal/api"

// Stores bundles the per-entity caches for consumers that span entity
// types (attaching an exercise to a session, deriving categories).
// One Stores instance lives for the application session; pass it by
// reference rather than reaching for globals.
type Stores struct {
	Categories *CategoryStore
	Tags       *TagStore
	Exercises  *ExerciseStore
	Sessions   *SessionStore
	History    *HistoryStore
}

// New wires every store to the same API client.
func New(client *api.Client) *Stores {
	return &Stores{
		Categories: NewCategoryStore(client),
		Tags:       NewTagStore(client),
		Exercises:  NewExerciseStore(client),
		Sessions:   NewSessionStore(client),
		History:    NewHistoryStore(client),
	}
}

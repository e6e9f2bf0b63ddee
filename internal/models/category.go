// ABOUTME: Category model for grouping tags and exercises.
// ABOUTME: Categories are server-owned; the client holds read-through copies.
package models

// Category is a top-level grouping (e.g. "Technique", "Repertoire").
// Exercises belong to categories only indirectly, through their tags.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

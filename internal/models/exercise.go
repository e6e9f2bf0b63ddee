// ABOUTME: Exercise model with tags, reference links, and images.
// ABOUTME: Category membership is derived through tags, never stored here.
package models

import "time"

// Exercise is a practicable unit (a piece, etude, lick, drill).
// Its categories are always computed from TagIDs via the tag cache;
// the server does not return them on the exercise itself.
type Exercise struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TagIDs      []int64   `json:"tag_ids"`
	Links       []Link    `json:"links,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasTag reports whether the exercise carries the given tag.
func (e *Exercise) HasTag(tagID int64) bool {
	for _, id := range e.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Link is a reference URL attached to an exercise (sheet music, video).
type Link struct {
	ID          int64  `json:"id"`
	ExerciseID  int64  `json:"exercise_id"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Image is an uploaded image attached to an exercise.
type Image struct {
	ID          int64  `json:"id"`
	ExerciseID  int64  `json:"exercise_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
}

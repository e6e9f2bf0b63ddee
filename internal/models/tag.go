// ABOUTME: Tag model linking exercises to categories.
// ABOUTME: Tags carry the many-to-many edge to categories.
package models

// Tag labels exercises and places them in zero or more categories.
type Tag struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CategoryIDs []int64 `json:"category_ids"`
}

// InCategory reports whether the tag belongs to the given category.
func (t *Tag) InCategory(categoryID int64) bool {
	for _, id := range t.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

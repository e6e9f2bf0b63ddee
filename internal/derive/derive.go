// ABOUTME: Derived relationship queries the API does not materialize.
// ABOUTME: Pure functions over explicit collection snapshots, no state.

// Package derive computes transitive relationships between exercises,
// tags, and categories. The API stores only Exercise→Tag and
// Tag→Category edges; an exercise's categories are the union of its
// tags' categories, recomputed from the snapshots passed in. Taking
// snapshots as arguments (rather than capturing live collections)
// guarantees a query can never read a stale captured reference.
package derive

import (
	"sort"

	"github.com/harperreed/practice/internal/models"
)

// CategoriesForExercise returns the deduplicated union, over the
// exercise's tags, of each tag's category ids, sorted ascending.
// An unknown exercise id or a tag id absent from the snapshot
// contributes nothing rather than failing.
func CategoriesForExercise(exerciseID int64, exercises []models.Exercise, tags []models.Tag) []int64 {
	var exercise *models.Exercise
	for i := range exercises {
		if exercises[i].ID == exerciseID {
			exercise = &exercises[i]
			break
		}
	}
	if exercise == nil || len(exercise.TagIDs) == 0 {
		return nil
	}

	tagsByID := make(map[int64]*models.Tag, len(tags))
	for i := range tags {
		tagsByID[tags[i].ID] = &tags[i]
	}

	seen := make(map[int64]bool)
	var out []int64
	for _, tagID := range exercise.TagIDs {
		tag, ok := tagsByID[tagID]
		if !ok {
			continue
		}
		for _, catID := range tag.CategoryIDs {
			if !seen[catID] {
				seen[catID] = true
				out = append(out, catID)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TagsInCategory filters the tag snapshot by category membership.
func TagsInCategory(categoryID int64, tags []models.Tag) []models.Tag {
	var out []models.Tag
	for _, tag := range tags {
		if tag.InCategory(categoryID) {
			out = append(out, tag)
		}
	}
	return out
}

// ExercisesInCategory returns every exercise whose tag set intersects
// the tags belonging to the category.
func ExercisesInCategory(categoryID int64, exercises []models.Exercise, tags []models.Tag) []models.Exercise {
	inCategory := make(map[int64]bool)
	for _, tag := range tags {
		if tag.InCategory(categoryID) {
			inCategory[tag.ID] = true
		}
	}
	if len(inCategory) == 0 {
		return nil
	}

	var out []models.Exercise
	for _, ex := range exercises {
		for _, tagID := range ex.TagIDs {
			if inCategory[tagID] {
				out = append(out, ex)
				break
			}
		}
	}
	return out
}

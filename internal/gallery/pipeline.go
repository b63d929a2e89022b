// Package gallery derives the list of artworks a view renders from the raw
// record set and the viewer's query.
package gallery

import (
	"slices"
	"strings"

	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

// AllModels is the model filter sentinel that disables model filtering.
const AllModels = "All"

// Visibility selects which records a view may display.
type Visibility int

const (
	// VisibilityPublic shows approved and legacy records only.
	VisibilityPublic Visibility = iota
	// VisibilityAdmin shows every record regardless of status.
	VisibilityAdmin
)

// Allows reports whether a record passes the visibility rule.
func (v Visibility) Allows(a models.Artwork) bool {
	if v == VisibilityAdmin {
		return true
	}
	return a.Status.IsPublic()
}

// SortOrder orders the derived list by creation time.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder maps user input to a SortOrder. Anything but "oldest" sorts newest first.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(s))) == SortOldest {
		return SortOldest
	}
	return SortNewest
}

// Query holds the viewer inputs of the pipeline.
type Query struct {
	Search     string
	Model      string
	Sort       SortOrder
	Visibility Visibility
}

// Derive filters and sorts records for display. The input slice is never modified.
//
// Steps run in a fixed order: visibility, search, model, sort. Records
// without a creation time sort as if created at the unix epoch; records with
// equal times keep their input order.
func Derive(records []models.Artwork, q Query) []models.Artwork {
	needle := strings.ToLower(q.Search)
	result := make([]models.Artwork, 0, len(records))

	for _, a := range records {
		if !q.Visibility.Allows(a) {
			continue
		}
		if needle != "" && !matches(a, needle) {
			continue
		}
		if q.Model != "" && q.Model != AllModels && a.Model != q.Model {
			continue
		}
		result = append(result, a)
	}

	if q.Sort == SortOldest {
		slices.SortStableFunc(result, func(a, b models.Artwork) int {
			return compareSeconds(a.CreatedSeconds(), b.CreatedSeconds())
		})
	} else {
		slices.SortStableFunc(result, func(a, b models.Artwork) int {
			return compareSeconds(b.CreatedSeconds(), a.CreatedSeconds())
		})
	}

	return result
}

// Models lists the model filter choices: AllModels first, then each distinct
// model of the unfiltered set in order of first appearance.
func Models(records []models.Artwork) []string {
	out := []string{AllModels}
	seen := map[string]struct{}{AllModels: {}}
	for _, a := range records {
		if _, ok := seen[a.Model]; ok {
			continue
		}
		seen[a.Model] = struct{}{}
		out = append(out, a.Model)
	}
	return out
}

func matches(a models.Artwork, needle string) bool {
	return strings.Contains(strings.ToLower(a.Prompt), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) ||
		strings.Contains(strings.ToLower(a.Model), needle)
}

func compareSeconds(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

package docservice

import (
	"sort"
	"strings"

	"github.com/starford/doctrail/internal/models"
)

// Filter returns the documents matching a case-insensitive substring search
// over title, description, category and tracking code, narrowed by an exact
// status match when status is non-empty. The input slice is not modified;
// the result is sorted newest first. Pure: safe to recompute on every change
// of the input set or criteria.
func Filter(docs []models.Document, term string, status models.Status) []models.Document {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if status != "" && d.Status != status {
			continue
		}
		if term != "" && !matchesTerm(d, term) {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matchesTerm(d models.Document, term string) bool {
	return strings.Contains(strings.ToLower(d.Title), term) ||
		strings.Contains(strings.ToLower(d.Description), term) ||
		strings.Contains(strings.ToLower(d.Category), term) ||
		strings.Contains(strings.ToLower(d.TrackingID), term)
}

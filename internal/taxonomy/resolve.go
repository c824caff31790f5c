package taxonomy

import (
	"strings"

	"github.com/dzadsearch/ads-ingest/internal/entity"
)

// Resolve maps a freeform extracted label onto a canonical entry.
//
// Matching is case-insensitive and runs in order, first hit wins:
//  1. exact: the lowercased label equals a canonical name;
//  2. partial: the lowercased label is a substring of a canonical name, or a
//     canonical name is a substring of the label. Ties break on insertion
//     order, which is ascending id for a seeded store.
//
// When nothing matches, Resolve returns an unresolved placeholder
// {ID: nil, Name: raw label unchanged}. It never falls back to a default
// canonical entry: assigning an unrelated entry would silently misclassify
// the announcement, which is strictly worse than marking it unresolved.
//
// Resolve is a pure function over the taxonomy snapshot; it has no side
// effects and never mutates the taxonomy.
func (t *Taxonomy) Resolve(raw string) entity.TaxonomyEntry {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return entity.TaxonomyEntry{ID: nil, Name: raw}
	}

	if i, ok := t.byName[needle]; ok {
		return t.rows[i].entry()
	}

	for _, r := range t.rows {
		if strings.Contains(r.lower, needle) || strings.Contains(needle, r.lower) {
			return r.entry()
		}
	}

	return entity.TaxonomyEntry{ID: nil, Name: raw}
}

package taxonomy

import (
	"strings"

	"github.com/dzadsearch/ads-ingest/internal/entity"
)

// Kind names one of the three reference taxonomies.
type Kind string

const (
	KindWilaya           Kind = "wilaya"
	KindBusinessLine     Kind = "business_line"
	KindAnnouncementType Kind = "announcement_type"
)

type row struct {
	id    int
	name  string // canonical name as stored
	lower string
}

// Taxonomy is a fixed reference enumeration, read-only after loading.
// Entries keep insertion order (ascending id for a seeded store) so that
// partial-match resolution is deterministic.
type Taxonomy struct {
	kind   Kind
	rows   []row
	byName map[string]int // lowercase canonical name -> rows index
}

// New returns an empty taxonomy of the given kind.
func New(kind Kind) *Taxonomy {
	return &Taxonomy{
		kind:   kind,
		byName: make(map[string]int),
	}
}

// FromPairs builds a taxonomy from parallel id/name pairs, preserving order.
func FromPairs(kind Kind, ids []int, names []string) *Taxonomy {
	t := New(kind)
	for i := range ids {
		t.Add(ids[i], names[i])
	}
	return t
}

// Add appends one canonical entry. Later duplicates of the same
// (case-insensitive) name are ignored; the first insertion wins.
func (t *Taxonomy) Add(id int, name string) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return
	}
	if _, ok := t.byName[lower]; ok {
		return
	}
	t.byName[lower] = len(t.rows)
	t.rows = append(t.rows, row{id: id, name: name, lower: lower})
}

// Kind returns the taxonomy kind.
func (t *Taxonomy) Kind() Kind { return t.kind }

// Len returns the number of canonical entries.
func (t *Taxonomy) Len() int { return len(t.rows) }

// Entries returns all canonical entries in insertion order.
func (t *Taxonomy) Entries() []entity.TaxonomyEntry {
	out := make([]entity.TaxonomyEntry, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.entry()
	}
	return out
}

func (r row) entry() entity.TaxonomyEntry {
	id := r.id
	return entity.TaxonomyEntry{ID: &id, Name: r.name}
}

package entity

// TaxonomyEntry is one row of a reference taxonomy (business line, wilaya or
// announcement type), or an unresolved placeholder when ID is nil.
//
// Invariant: a resolved entry's ID refers to an existing taxonomy row and Name
// holds that row's canonical name. An unresolved entry has ID == nil and Name
// holds the raw extracted label unchanged. Placeholders are never written back
// to the canonical taxonomy automatically.
type TaxonomyEntry struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// Resolved reports whether the entry points at a canonical taxonomy row.
func (e TaxonomyEntry) Resolved() bool {
	return e.ID != nil
}

package taxonomy

import (
	"strings"
	"testing"
)

func testWilayas(t *testing.T) *Taxonomy {
	t.Helper()
	tax := New(KindWilaya)
	for i, name := range []string{"Adrar", "Chlef", "Algiers", "Oran", "Sidi Bel Abbès"} {
		tax.Add(i+1, name)
	}
	return tax
}

func TestResolveExactMatch(t *testing.T) {
	t.Parallel()

	tax := testWilayas(t)

	got := tax.Resolve("Algiers")
	if got.ID == nil || *got.ID != 3 {
		t.Fatalf("expected id 3, got %+v", got)
	}
	if got.Name != "Algiers" {
		t.Errorf("expected canonical name Algiers, got %q", got.Name)
	}
}

func TestResolveCaseInsensitiveAndIdempotent(t *testing.T) {
	t.Parallel()

	tax := testWilayas(t)

	lower := tax.Resolve("oran")
	upper := tax.Resolve(strings.ToUpper("oran"))

	if lower.ID == nil || upper.ID == nil {
		t.Fatalf("expected both lookups to resolve, got %+v and %+v", lower, upper)
	}
	if *lower.ID != *upper.ID || lower.Name != upper.Name {
		t.Errorf("case variants resolved differently: %+v vs %+v", lower, upper)
	}

	again := tax.Resolve("oran")
	if *again.ID != *lower.ID {
		t.Errorf("resolve not idempotent: %+v vs %+v", again, lower)
	}
}

func TestResolvePartialMatch(t *testing.T) {
	t.Parallel()

	tax := testWilayas(t)

	t.Run("label is substring of canonical name", func(t *testing.T) {
		t.Parallel()

		got := tax.Resolve("sidi bel")
		if got.ID == nil || *got.ID != 5 {
			t.Fatalf("expected Sidi Bel Abbès (id 5), got %+v", got)
		}
	})

	t.Run("canonical name is substring of label", func(t *testing.T) {
		t.Parallel()

		got := tax.Resolve("Wilaya of Oran Province")
		if got.ID == nil || *got.ID != 4 {
			t.Fatalf("expected Oran (id 4), got %+v", got)
		}
	})

	t.Run("tie breaks on insertion order", func(t *testing.T) {
		t.Parallel()

		tax := New(KindBusinessLine)
		tax.Add(1, "Security Services")
		tax.Add(2, "Consulting Services")

		// "services" is a substring of both; the first inserted entry wins.
		got := tax.Resolve("services")
		if got.ID == nil || *got.ID != 1 {
			t.Fatalf("expected first entry (id 1), got %+v", got)
		}
	})
}

func TestResolveNoMatchReturnsPlaceholder(t *testing.T) {
	t.Parallel()

	tax := testWilayas(t)

	raw := "Quelque Part Ailleurs"
	got := tax.Resolve(raw)
	if got.ID != nil {
		t.Fatalf("expected nil id for unmatched label, got %+v", got)
	}
	if got.Name != raw {
		t.Errorf("expected raw label preserved unchanged, got %q", got.Name)
	}
	if got.Resolved() {
		t.Error("placeholder must not report as resolved")
	}
}

func TestResolveEmptyLabel(t *testing.T) {
	t.Parallel()

	tax := testWilayas(t)

	got := tax.Resolve("   ")
	if got.ID != nil {
		t.Fatalf("expected nil id for blank label, got %+v", got)
	}
}

func TestAddIgnoresDuplicates(t *testing.T) {
	t.Parallel()

	tax := New(KindAnnouncementType)
	tax.Add(1, "Tender")
	tax.Add(9, "tender")

	if tax.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tax.Len())
	}
	got := tax.Resolve("TENDER")
	if got.ID == nil || *got.ID != 1 {
		t.Errorf("expected first insertion to win, got %+v", got)
	}
}

package parser

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dzadsearch/ads-ingest/constants"
	"github.com/dzadsearch/ads-ingest/internal/taxonomy"
)

func testTaxonomies() (w, bl, at *taxonomy.Taxonomy) {
	w = taxonomy.FromPairs(taxonomy.KindWilaya, []int{16, 31}, []string{"Algiers", "Oran"})
	bl = taxonomy.FromPairs(taxonomy.KindBusinessLine, []int{1, 3}, []string{"Construction and Public Works", "Office Equipment and Stationery"})
	at = taxonomy.FromPairs(taxonomy.KindAnnouncementType, []int{1, 7}, []string{"Tender", "Sale or Auction Notice"})
	return
}

func TestParseAnnouncementsHappyPath(t *testing.T) {
	t.Parallel()

	raw := `Here is what I found:
` + "```json" + `
[
  {
    "announcement": {
      "id": "announcement_1",
      "title": "Tender for Office Supplies",
      "description": "Supply of standard office stationery",
      "number": "TDR-2025-01",
      "owner": "Regional Directorate of Education",
      "terms": null,
      "contact": "Procurement Office",
      "dueAmount": "1,250.50 DZD",
      "publishDate": "2025-04-23",
      "dueDate": "2025-05-10",
      "status": 1
    },
    "wilaya": {"id": 16, "name": "algiers"},
    "businessLine": {"id": null, "name": "Office Stationery Supply"},
    "announcementType": {"id": 1, "name": "Tender"},
    "boundingBox": {"x_min": 60, "y_min": 200, "x_max": 480, "y_max": 550}
  }
]
` + "```"

	w, bl, at := testTaxonomies()
	records, err := ParseAnnouncements(raw, w, bl, at, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Title != "Tender for Office Supplies" {
		t.Errorf("title: got %q", r.Title)
	}
	if r.DueAmount == nil || *r.DueAmount != 1250 {
		t.Errorf("dueAmount: got %v, want 1250", r.DueAmount)
	}
	if r.Wilaya.ID == nil || *r.Wilaya.ID != 16 || r.Wilaya.Name != "Algiers" {
		t.Errorf("wilaya: got %+v, want canonical Algiers", r.Wilaya)
	}
	if r.BusinessLine.ID != nil {
		t.Errorf("businessLine: %q must stay a placeholder, got id %d", r.BusinessLine.Name, *r.BusinessLine.ID)
	}
	if r.BusinessLine.Name != "Office Stationery Supply" {
		t.Errorf("businessLine name: got %q", r.BusinessLine.Name)
	}
	if r.BoundingBox.XMax != 480 {
		t.Errorf("boundingBox: got %+v", r.BoundingBox)
	}
}

func TestParseAnnouncementsNoArray(t *testing.T) {
	t.Parallel()

	w, bl, at := testTaxonomies()
	_, err := ParseAnnouncements("I could not find any announcements on this page.", w, bl, at, nil)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseAnnouncementsSkipsMalformedItems(t *testing.T) {
	t.Parallel()

	raw := `[
  {"announcement": {"title": "Good One"}, "boundingBox": {"x_min": 0, "y_min": 0, "x_max": 10, "y_max": 10}},
  {"bogus": true},
  {"announcement": {"title": "Another Good One"}}
]`

	w, bl, at := testTaxonomies()
	records, err := ParseAnnouncements(raw, w, bl, at, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected the 2 valid items, got %d", len(records))
	}
}

func TestParseAnnouncementsDefaults(t *testing.T) {
	t.Parallel()

	raw := `[{"announcement": {"title": "", "status": 9}}]`

	w, bl, at := testTaxonomies()
	records, err := ParseAnnouncements(raw, w, bl, at, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != DefaultTitle {
		t.Errorf("title: got %q, want %q", records[0].Title, DefaultTitle)
	}
	if records[0].Status != constants.StatusDefault {
		t.Errorf("status: got %d, want default %d", records[0].Status, constants.StatusDefault)
	}
	if records[0].Wilaya.ID != nil || records[0].Wilaya.Name != "" {
		t.Errorf("empty wilaya must resolve to empty placeholder, got %+v", records[0].Wilaya)
	}
}

func TestParseAnnouncementsMissingTitleKey(t *testing.T) {
	t.Parallel()

	// No title key at all, not just an empty one: the item must still come
	// through with the default title instead of being rejected.
	raw := `[{"announcement": {"description": "tender with no title field"}}]`

	w, bl, at := testTaxonomies()
	records, err := ParseAnnouncements(raw, w, bl, at, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != DefaultTitle {
		t.Errorf("title: got %q, want %q", records[0].Title, DefaultTitle)
	}
	if records[0].Description != "tender with no title field" {
		t.Errorf("description: got %q", records[0].Description)
	}
}

func TestCoerceAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want *int64
	}{
		{"null", `null`, nil},
		{"number", `5000000`, int64p(5000000)},
		{"number with fraction", `1250.75`, int64p(1250)},
		{"formatted dinars", `"1,250.50 DZD"`, int64p(1250)},
		{"european grouping", `"2.500.000,00 دج"`, int64p(2500000)},
		{"plain string", `"42000"`, int64p(42000)},
		{"garbage", `"to be announced"`, nil},
		{"boolean", `true`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := coerceAmount(json.RawMessage(tt.raw))
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

type fakeDetector struct {
	raw        string
	err        error
	gotLists   string
	gotImage   string
	enabledVal bool
}

func (f *fakeDetector) Enabled() bool { return f.enabledVal }

func (f *fakeDetector) DetectAnnouncements(_ context.Context, imagePath, listsBlock string) (string, error) {
	f.gotImage = imagePath
	f.gotLists = listsBlock
	return f.raw, f.err
}

func TestParsePageSendsRenderedLists(t *testing.T) {
	t.Parallel()

	fd := &fakeDetector{raw: `[]`, enabledVal: true}
	w, bl, at := testTaxonomies()
	p := New(fd, w, bl, at, nil)

	records, err := p.ParsePage(context.Background(), "/out/issue_7012/page_18.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}

	for _, want := range []string{"BusinessLines = ", "Wilayas = ", "AnnouncementTypes = ", `"Algiers"`, `"Tender"`} {
		if !strings.Contains(fd.gotLists, want) {
			t.Errorf("lists block missing %q:\n%s", want, fd.gotLists)
		}
	}
}

func int64p(n int64) *int64 { return &n }

package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dzadsearch/ads-ingest/internal/common"
)

func TestParseArabicDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "الأحد 16 مارس 2025", want: "2025-03-16"},
		{in: "الخميس 1 جانفي 2024", want: "2024-01-01"},
		{in: "السبت 31 ديسمبر 2022", want: "2022-12-31"},
		{in: "الإثنين 5 December 2024", wantErr: true}, // month not in the Algerian lexicon
		{in: "no date here", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseArabicDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("got %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

const listingPage = `<html><body>
<div class="ech-palp__title _nodb"><a href="/echorouk-yawmi/latest">الأحد 16 مارس 2025</a></div>
<div class="ech-pdbl__pdat"><a href="/echorouk-yawmi/a">الأحد 16 مارس 2025</a></div>
<div class="ech-pdbl__pdat"><a href="/echorouk-yawmi/b">السبت 15 مارس 2025</a></div>
<div class="ech-pdbl__pdat"><a href="/echorouk-yawmi/c">bad date text</a></div>
<ul class="d-f fxw-w">
  <li><a href="/echorouk-yawmi/page/1">1</a></li>
  <li><a href="/echorouk-yawmi/page/42">42</a></li>
</ul>
</body></html>`

func TestScraperPaginationRange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, nil)
	first, last, latest, err := s.PaginationRange(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 1 || last != 42 {
		t.Errorf("range: got %d..%d, want 1..42", first, last)
	}
	if latest != "الأحد 16 مارس 2025" {
		t.Errorf("latest date: got %q", latest)
	}
}

func TestScraperFetchPublicationDates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/page/1") {
			_, _ = w.Write([]byte(listingPage))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, nil)
	dates, err := s.FetchPublicationDates(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two parseable dates; the malformed one is skipped; page 2 404s and
	// ends the walk.
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d: %+v", len(dates), dates)
	}
	if dates[0].ScrapeOrder != 1 || dates[1].ScrapeOrder != 2 {
		t.Errorf("scrape order: got %d, %d", dates[0].ScrapeOrder, dates[1].ScrapeOrder)
	}
	if dates[0].Date.Format("2006-01-02") != "2025-03-16" {
		t.Errorf("first date: got %s", dates[0].Date.Format("2006-01-02"))
	}
}

func TestAssignIssueNumbers(t *testing.T) {
	t.Parallel()

	dates := []PublicationDate{
		{ScrapeOrder: 1},
		{ScrapeOrder: 2},
		{ScrapeOrder: 3},
	}
	AssignIssueNumbers(dates, 7012)

	want := []int{7012, 7011, 7010}
	for i, d := range dates {
		if d.IssueNumber != want[i] {
			t.Errorf("entry %d: got %d, want %d", i, d.IssueNumber, want[i])
		}
	}
}

func TestMappingRoundTrip(t *testing.T) {
	t.Parallel()

	dates := []PublicationDate{
		{Date: mustDate("2025-03-16"), DateText: "الأحد 16 مارس 2025", ScrapeOrder: 1, IssueNumber: 7012},
		{Date: mustDate("2025-03-15"), DateText: "السبت 15 مارس 2025", ScrapeOrder: 2, IssueNumber: 7011},
	}

	path := filepath.Join(t.TempDir(), "publication_dates.csv")
	if err := SaveMapping(path, dates); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := LoadMapping(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Oldest issue first after the round trip.
	if entries[0].IssueNumber != 7011 || entries[1].IssueNumber != 7012 {
		t.Errorf("order: got %d, %d", entries[0].IssueNumber, entries[1].IssueNumber)
	}
	if entries[0].Date != "2025-03-15" {
		t.Errorf("date: got %s", entries[0].Date)
	}
}

func TestLoadMappingMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadMapping(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDownloadAll(t *testing.T) {
	t.Parallel()

	pdfBody := append([]byte("%PDF-1.4 "), make([]byte, minPDFBytes)...)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/7012.pdf"):
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write(pdfBody)
		case strings.HasSuffix(r.URL.Path, "/7011.pdf"):
			// HTML error page pretending to be a hit.
			_, _ = w.Write([]byte("<html>not found</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := NewDownloader(DownloaderConfig{
		OutDir:      dir,
		URLTemplate: srv.URL + "/%s/%s/%d.pdf",
		Concurrency: 2,
	}, nil)

	entries := []MappingEntry{
		{Date: "2025-03-15", IssueNumber: 7011},
		{Date: "2025-03-16", IssueNumber: 7012},
	}
	results := d.DownloadAll(context.Background(), entries)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	byIssue := map[int]DownloadResult{}
	for _, r := range results {
		byIssue[r.IssueNumber] = r
	}

	if byIssue[7011].Err == nil {
		t.Error("issue 7011 served HTML and must fail the PDF check")
	}
	good := byIssue[7012]
	if good.Err != nil {
		t.Fatalf("issue 7012: %v", good.Err)
	}
	if filepath.Base(good.Path) != "echorouk_2025-03-16_7012.pdf" {
		t.Errorf("filename: got %s", filepath.Base(good.Path))
	}
	if _, err := os.Stat(good.Path); err != nil {
		t.Errorf("downloaded file missing: %v", err)
	}

	// The failure must land in the retry list.
	failed, err := os.ReadFile(filepath.Join(dir, "failed_downloads.txt"))
	if err != nil {
		t.Fatalf("failed list: %v", err)
	}
	if !strings.Contains(string(failed), "7011") {
		t.Errorf("failed list content: %s", failed)
	}
}

func TestDownloadAllSkipsExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "echorouk_2025-03-16_7012.pdf")
	if err := os.WriteFile(existing, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("existing file must not be re-downloaded")
		http.NotFound(w, r)
	}))
	defer srv.Close()

	d := NewDownloader(DownloaderConfig{OutDir: dir, URLTemplate: srv.URL + "/%s/%s/%d.pdf"}, nil)

	results := d.DownloadAll(context.Background(), []MappingEntry{{Date: "2025-03-16", IssueNumber: 7012}})
	if len(results) != 1 || !results[0].Skipped {
		t.Fatalf("expected skip, got %+v", results)
	}
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("bad test date %s: %v", s, err))
	}
	return d
}

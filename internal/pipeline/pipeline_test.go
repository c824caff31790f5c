package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dzadsearch/ads-ingest/internal/classifier"
	"github.com/dzadsearch/ads-ingest/internal/entity"
	"github.com/dzadsearch/ads-ingest/internal/metadata"
	"github.com/dzadsearch/ads-ingest/internal/parser"
	"github.com/dzadsearch/ads-ingest/internal/raster"
	"github.com/dzadsearch/ads-ingest/internal/repository"
	"github.com/dzadsearch/ads-ingest/internal/taxonomy"
)

// fakeRenderer materializes empty page images without poppler.
type fakeRenderer struct {
	calls    []string
	fail     bool
	failPage int // single-page renders of this page fail
}

func (f *fakeRenderer) Render(_ context.Context, pdfPath, outDir string, first, last, dpi int) ([]raster.Page, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s:%d-%d@%d", filepath.Base(pdfPath), first, last, dpi))
	if f.fail {
		return nil, errors.New("render failed")
	}
	if f.failPage != 0 && first == f.failPage && last == f.failPage {
		return nil, errors.New("render failed")
	}
	var pages []raster.Page
	for n := first; n <= last; n++ {
		path := filepath.Join(outDir, fmt.Sprintf("page-%02d.png", n))
		if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
			return nil, err
		}
		pages = append(pages, raster.Page{Number: n, Path: path})
	}
	return pages, nil
}

// keywordText reports an ad keyword for the configured pages only.
type keywordText struct {
	adPages map[int]bool
}

func (k keywordText) ExtractText(_ context.Context, imagePath string) (string, error) {
	for page := range k.adPages {
		if strings.Contains(imagePath, fmt.Sprintf("page-%02d", page)) {
			return "إشهار", nil
		}
	}
	return "محتوى تحريري", nil
}

func newTestPipeline(t *testing.T, r raster.Renderer, totalPages int, adPages map[int]bool) *Pipeline {
	t.Helper()
	cls := classifier.New(keywordText{adPages: adPages}, nil, nil)
	p := New(Config{OutDir: t.TempDir()}, r, cls, nil, nil, nil)
	p.pageCount = func(string) (int, error) { return totalPages, nil }
	return p
}

func TestProcessDocumentDetectsAndExtracts(t *testing.T) {
	t.Parallel()

	fr := &fakeRenderer{}
	p := newTestPipeline(t, fr, 6, map[int]bool{3: true})

	res := p.ProcessDocument(context.Background(), "/data/echorouk_2025-03-16_issue_7012.pdf")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}

	if res.Document.IssueNumber == nil || *res.Document.IssueNumber != 7012 {
		t.Errorf("issue number: got %v", res.Document.IssueNumber)
	}
	if res.Document.TotalPages != 6 {
		t.Errorf("total pages: got %d", res.Document.TotalPages)
	}
	if len(res.AdPages) != 1 || res.AdPages[0] != 3 {
		t.Fatalf("ad pages: got %v, want [3]", res.AdPages)
	}
	if len(res.ExtractedImagePaths) != 1 {
		t.Fatalf("extracted images: got %v", res.ExtractedImagePaths)
	}
	if filepath.Base(res.ExtractedImagePaths[0]) != "page_3.png" {
		t.Errorf("image name: got %s", filepath.Base(res.ExtractedImagePaths[0]))
	}
	if _, err := os.Stat(res.ExtractedImagePaths[0]); err != nil {
		t.Errorf("extracted image missing: %v", err)
	}

	// Detection scans at 150 DPI, extraction re-renders at 300.
	if fr.calls[0] != "echorouk_2025-03-16_issue_7012.pdf:1-6@150" {
		t.Errorf("scan call: got %s", fr.calls[0])
	}
	if fr.calls[1] != "echorouk_2025-03-16_issue_7012.pdf:3-3@300" {
		t.Errorf("extract call: got %s", fr.calls[1])
	}
}

func TestProcessDocumentScanCap(t *testing.T) {
	t.Parallel()

	fr := &fakeRenderer{}
	cls := classifier.New(keywordText{adPages: map[int]bool{2: true}}, nil, nil)
	p := New(Config{OutDir: t.TempDir(), ScanPageCap: 4}, fr, cls, nil, nil, nil)
	p.pageCount = func(string) (int, error) { return 9, nil }

	res := p.ProcessDocument(context.Background(), "/data/issue_5.pdf")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	if !strings.Contains(fr.calls[0], ":1-4@") {
		t.Errorf("scan must stop at the page cap, got %s", fr.calls[0])
	}
}

func TestProcessDocumentPositionalFallback(t *testing.T) {
	t.Parallel()

	fr := &fakeRenderer{}
	// 24 pages, nothing detected: back pages get synthesized.
	cls := classifier.New(keywordText{}, nil, nil)
	p := New(Config{OutDir: t.TempDir(), ScanPageCap: 3}, fr, cls, nil, nil, nil)
	p.pageCount = func(string) (int, error) { return 24, nil }

	res := p.ProcessDocument(context.Background(), "/data/issue_6.pdf")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	want := []int{24, 23, 22}
	if len(res.AdPages) != 3 {
		t.Fatalf("ad pages: got %v, want %v", res.AdPages, want)
	}
	for i := range want {
		if res.AdPages[i] != want[i] {
			t.Errorf("page %d: got %d, want %d", i, res.AdPages[i], want[i])
		}
	}
}

func TestProcessDocumentRenderFailureIsIsolated(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t, &fakeRenderer{fail: true}, 6, nil)

	res := p.ProcessDocument(context.Background(), "/data/issue_7.pdf")
	if res.Err == "" {
		t.Fatal("expected an error on the result")
	}
}

func TestWriteCSVReport(t *testing.T) {
	t.Parallel()

	issue := 7012
	results := []entity.IngestionResult{
		{
			Document: entity.Document{FilePath: "/data/echorouk_2025-03-16_issue_7012.pdf", IssueNumber: &issue},
			AdPages:  []int{18, 19, 22},
		},
		{
			Document: entity.Document{FilePath: "/data/frontpage.pdf"},
		},
	}

	path := filepath.Join(t.TempDir(), "ads_pages.csv")
	if err := WriteCSVReport(path, results); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(raw)
	if !strings.Contains(got, "name,issue_number,date,ads_pages") {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, `"18, 19, 22"`) {
		t.Errorf("missing ad pages row: %s", got)
	}
}

func TestProcessDirectoryAppliesFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"echorouk_2025-01-10_issue_100.pdf",
		"echorouk_2025-02-10_issue_110.pdf",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	p := newTestPipeline(t, &fakeRenderer{}, 4, nil)

	start := 110
	results, err := p.ProcessDirectory(context.Background(), dir, metadata.Filter{StartIssue: &start})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Document.IssueNumber == nil || *results[0].Document.IssueNumber != 110 {
		t.Errorf("wrong document processed: %+v", results[0].Document)
	}
}

var _ repository.AnnouncementRepository = (*countingRepo)(nil)

// countingRepo stores nothing, just counts.
type countingRepo struct {
	inserted []repository.InsertRequest
}

func (c *countingRepo) Insert(_ context.Context, req repository.InsertRequest) error {
	c.inserted = append(c.inserted, req)
	return nil
}

func (c *countingRepo) InsertBatch(ctx context.Context, reqs []repository.InsertRequest) int {
	for _, req := range reqs {
		_ = c.Insert(ctx, req)
	}
	return len(reqs)
}

// stubDetector answers every page with one canned announcement.
type stubDetector struct{ raw string }

func (s stubDetector) Enabled() bool { return true }

func (s stubDetector) DetectAnnouncements(context.Context, string, string) (string, error) {
	return s.raw, nil
}

func TestProcessDocumentFailedExtractionKeepsProvenance(t *testing.T) {
	t.Parallel()

	wilayas := taxonomy.FromPairs(taxonomy.KindWilaya, []int{16}, []string{"Algiers"})
	lines := taxonomy.FromPairs(taxonomy.KindBusinessLine, []int{1}, []string{"Construction and Public Works"})
	types := taxonomy.FromPairs(taxonomy.KindAnnouncementType, []int{1}, []string{"Tender"})

	det := stubDetector{raw: `[{"announcement": {"title": "Auction Notice"}}]`}
	prs := parser.New(det, wilayas, lines, types, nil)
	repo := &countingRepo{}

	// Pages 3 and 5 are ads, the high-DPI render of page 3 fails. Page 5's
	// announcements must still be attributed to page 5.
	fr := &fakeRenderer{failPage: 3}
	cls := classifier.New(keywordText{adPages: map[int]bool{3: true, 5: true}}, nil, nil)
	p := New(Config{OutDir: t.TempDir()}, fr, cls, prs, repo, nil)
	p.pageCount = func(string) (int, error) { return 6, nil }

	res := p.ProcessDocument(context.Background(), "/data/echorouk_2025-03-16_issue_7012.pdf")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	if len(res.AdPages) != 2 {
		t.Fatalf("ad pages: got %v, want [3 5]", res.AdPages)
	}
	if len(res.ExtractedImagePaths) != 1 || filepath.Base(res.ExtractedImagePaths[0]) != "page_5.png" {
		t.Fatalf("extracted images: got %v, want only page_5.png", res.ExtractedImagePaths)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("inserted: got %d, want 1", len(repo.inserted))
	}
	if repo.inserted[0].SourcePage != 5 {
		t.Errorf("source page: got %d, want 5", repo.inserted[0].SourcePage)
	}
}

func TestProcessDocumentParsesAndStores(t *testing.T) {
	t.Parallel()

	wilayas := taxonomy.FromPairs(taxonomy.KindWilaya, []int{16}, []string{"Algiers"})
	lines := taxonomy.FromPairs(taxonomy.KindBusinessLine, []int{1}, []string{"Construction and Public Works"})
	types := taxonomy.FromPairs(taxonomy.KindAnnouncementType, []int{1}, []string{"Tender"})

	det := stubDetector{raw: `[{"announcement": {"title": "Tender for Roadworks"}, "wilaya": {"id": 16, "name": "Algiers"}}]`}
	prs := parser.New(det, wilayas, lines, types, nil)
	repo := &countingRepo{}

	fr := &fakeRenderer{}
	cls := classifier.New(keywordText{adPages: map[int]bool{3: true}}, nil, nil)
	p := New(Config{OutDir: t.TempDir()}, fr, cls, prs, repo, nil)
	p.pageCount = func(string) (int, error) { return 6, nil }

	res := p.ProcessDocument(context.Background(), "/data/echorouk_2025-03-16_issue_7012.pdf")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	if res.AnnouncementsStored != 1 {
		t.Fatalf("announcements stored: got %d, want 1", res.AnnouncementsStored)
	}

	req := repo.inserted[0]
	if req.Record.Title != "Tender for Roadworks" {
		t.Errorf("title: got %q", req.Record.Title)
	}
	if req.SourcePage != 3 {
		t.Errorf("source page: got %d, want 3", req.SourcePage)
	}
	if req.IssueNumber == nil || *req.IssueNumber != 7012 {
		t.Errorf("issue number: got %v", req.IssueNumber)
	}
}

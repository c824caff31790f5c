// Package pipeline drives the per-issue ingestion flow: render pages, find
// the ad pages, extract them as images, and optionally parse and store the
// announcements they carry.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dzadsearch/ads-ingest/constants"
	"github.com/dzadsearch/ads-ingest/internal/classifier"
	"github.com/dzadsearch/ads-ingest/internal/entity"
	"github.com/dzadsearch/ads-ingest/internal/metadata"
	"github.com/dzadsearch/ads-ingest/internal/parser"
	"github.com/dzadsearch/ads-ingest/internal/raster"
	"github.com/dzadsearch/ads-ingest/internal/repository"
)

// Config for the ingestion pipeline.
type Config struct {
	ScanDPI     int // detection render resolution
	ExtractDPI  int // final ad-page render resolution
	ScanPageCap int // max leading pages classified per issue
	OutDir      string
}

// Pipeline processes newspaper issues end to end. Parser and announcement
// repository are optional: without them the run stops after page extraction.
type Pipeline struct {
	cfg           Config
	renderer      raster.Renderer
	classifier    *classifier.Classifier
	parser        *parser.Parser
	announcements repository.AnnouncementRepository
	pageCount     func(string) (int, error)
	logger        *slog.Logger
}

func New(cfg Config, renderer raster.Renderer, cls *classifier.Classifier, p *parser.Parser, repo repository.AnnouncementRepository, logger *slog.Logger) *Pipeline {
	if cfg.ScanDPI <= 0 {
		cfg.ScanDPI = 150
	}
	if cfg.ExtractDPI <= 0 {
		cfg.ExtractDPI = 300
	}
	if cfg.ScanPageCap <= 0 {
		cfg.ScanPageCap = classifier.DefaultScanPageCap
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:           cfg,
		renderer:      renderer,
		classifier:    cls,
		parser:        p,
		announcements: repo,
		pageCount:     raster.PageCount,
		logger:        logger,
	}
}

// ProcessDirectory processes every PDF in dir passing the filter, in name
// order. One broken issue never stops the batch; its result carries the
// error instead.
func (p *Pipeline) ProcessDirectory(ctx context.Context, dir string, filter metadata.Filter) ([]entity.IngestionResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !constants.IsPDFExt(filepath.Ext(e.Name())) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	paths = filter.Apply(paths)
	p.logger.Info("pipeline.batch_start", "dir", dir, "documents", len(paths))

	results := make([]entity.IngestionResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := p.ProcessDocument(ctx, path)
		if res.Err != "" {
			p.logger.Error("pipeline.document_failed", "file", res.Document.Name(), "error", res.Err)
		} else {
			p.logger.Info("pipeline.document_done",
				"file", res.Document.Name(),
				"ad_pages", res.AdPages,
				"announcements", res.AnnouncementsStored,
			)
		}
		results = append(results, res)
	}
	return results, nil
}

// ProcessDocument runs one issue through detection, extraction and parsing.
func (p *Pipeline) ProcessDocument(ctx context.Context, pdfPath string) entity.IngestionResult {
	doc := entity.Document{FilePath: pdfPath}
	doc.IssueNumber, doc.PublishDate = metadata.Extract(pdfPath)

	res := entity.IngestionResult{Document: doc}

	total, err := p.pageCount(pdfPath)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Document.TotalPages = total

	adPages, err := p.detectAdPages(ctx, pdfPath, total)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.AdPages = adPages
	if len(adPages) == 0 {
		return res
	}

	extracted, err := p.extractPages(ctx, pdfPath, adPages)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	for _, page := range extracted {
		res.ExtractedImagePaths = append(res.ExtractedImagePaths, page.Path)
	}

	if p.parser != nil && p.parser.Enabled() && p.announcements != nil {
		res.AnnouncementsStored = p.parseAndStore(ctx, res.Document, extracted)
	}
	return res
}

// detectAdPages renders the scannable prefix of the issue at detection
// resolution and classifies each page. An empty verdict on a big issue falls
// back to positional candidates.
func (p *Pipeline) detectAdPages(ctx context.Context, pdfPath string, totalPages int) ([]int, error) {
	scanDir, err := os.MkdirTemp("", "ads-scan-*")
	if err != nil {
		return nil, fmt.Errorf("scan dir: %w", err)
	}
	defer os.RemoveAll(scanDir)

	last := min(totalPages, p.cfg.ScanPageCap)
	pages, err := p.renderer.Render(ctx, pdfPath, scanDir, 1, last, p.cfg.ScanDPI)
	if err != nil {
		return nil, err
	}

	var adPages []int
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		verdict := p.classifier.Classify(ctx, page.Path, page.Number)
		if verdict.ContainsAds {
			adPages = append(adPages, page.Number)
		}
	}

	if len(adPages) == 0 {
		if fallback := classifier.FallbackPages(totalPages); len(fallback) > 0 {
			p.logger.Info("pipeline.positional_fallback", "file", filepath.Base(pdfPath), "pages", fallback)
			adPages = fallback
		}
	}
	return adPages, nil
}

// extractPages re-renders the accepted pages at extraction resolution into
// OutDir/<stem>/page_<N>.png. Each extracted image keeps its page number so
// a failed page never shifts provenance for the ones after it.
func (p *Pipeline) extractPages(ctx context.Context, pdfPath string, adPages []int) ([]raster.Page, error) {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	issueDir := filepath.Join(p.cfg.OutDir, stem)
	if err := os.MkdirAll(issueDir, 0o755); err != nil {
		return nil, fmt.Errorf("issue dir: %w", err)
	}

	var extracted []raster.Page
	for _, pageNum := range adPages {
		rendered, err := p.renderer.Render(ctx, pdfPath, issueDir, pageNum, pageNum, p.cfg.ExtractDPI)
		if err != nil {
			p.logger.Warn("pipeline.extract_page_failed", "file", filepath.Base(pdfPath), "page", pageNum, "error", err)
			continue
		}
		target := filepath.Join(issueDir, fmt.Sprintf("page_%d.png", pageNum))
		if err := os.Rename(rendered[0].Path, target); err != nil {
			p.logger.Warn("pipeline.extract_rename_failed", "page", pageNum, "error", err)
			continue
		}
		extracted = append(extracted, raster.Page{Number: pageNum, Path: target})
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("no pages extracted from %s", filepath.Base(pdfPath))
	}
	return extracted, nil
}

// parseAndStore runs announcement detection over each extracted page and
// persists what comes back. Page failures are isolated.
func (p *Pipeline) parseAndStore(ctx context.Context, doc entity.Document, pages []raster.Page) int {
	stored := 0
	for _, page := range pages {
		pageNum, img := page.Number, page.Path

		records, err := p.parser.ParsePage(ctx, img)
		if err != nil {
			p.logger.Warn("pipeline.parse_page_failed", "image", img, "error", err)
			continue
		}
		if len(records) == 0 {
			continue
		}

		reqs := make([]repository.InsertRequest, len(records))
		for j, rec := range records {
			reqs[j] = repository.InsertRequest{
				Record:      rec,
				SourceFile:  doc.Name(),
				SourcePage:  pageNum,
				IssueNumber: doc.IssueNumber,
			}
		}
		stored += p.announcements.InsertBatch(ctx, reqs)
	}
	return stored
}

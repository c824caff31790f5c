// Package raster renders PDF pages to images via poppler's pdftoppm and
// reads page counts directly from the PDF trailer.
package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/dzadsearch/ads-ingest/internal/common"
	"github.com/dzadsearch/ads-ingest/internal/ocr"
)

// Page is one rendered page image on disk.
type Page struct {
	Number int // 1-based page number within the PDF
	Path   string
}

// Renderer is the page-rasterizer contract used by the pipeline.
type Renderer interface {
	// Render rasterizes pages first..last (inclusive, 1-based) at the given
	// DPI into outDir and returns them in page order.
	Render(ctx context.Context, pdfPath, outDir string, first, last, dpi int) ([]Page, error)
}

// Config for the pdftoppm renderer.
type Config struct {
	Pdftoppm string // binary name or absolute path; empty -> "pdftoppm"
}

// Pdftoppm renders pages by shelling out to poppler.
type Pdftoppm struct {
	cfg    Config
	runner ocr.Runner
	logger *slog.Logger
}

// New fills config defaults and returns a pdftoppm-backed renderer.
func New(cfg Config, logger *slog.Logger) *Pdftoppm {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pdftoppm{cfg: cfg, runner: ocr.ExecRunner{Logger: logger}, logger: logger}
}

// NewWithRunner is used by tests to stub the external command.
func NewWithRunner(cfg Config, runner ocr.Runner, logger *slog.Logger) *Pdftoppm {
	p := New(cfg, logger)
	p.runner = runner
	return p
}

// Render runs `pdftoppm -r <dpi> -png -f <first> -l <last> <pdf> <prefix>`
// and collects the generated images. pdftoppm zero-pads page numbers, so a
// lexical sort restores page order.
func (p *Pdftoppm) Render(ctx context.Context, pdfPath, outDir string, first, last, dpi int) ([]Page, error) {
	if first < 1 || last < first {
		return nil, fmt.Errorf("invalid page range %d..%d: %w", first, last, common.ErrInvalidInput)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	prefix := filepath.Join(outDir, "page")
	_, errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", dpi),
		"-png",
		"-f", fmt.Sprintf("%d", first),
		"-l", fmt.Sprintf("%d", last),
		pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm %s: %s: %w", pdfPath, string(errb), common.ErrBackendUnavailable)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no images for %s", pdfPath)
	}

	pages := make([]Page, len(matches))
	for i, m := range matches {
		pages[i] = Page{Number: first + i, Path: m}
	}
	return pages, nil
}

// PageCount reads the total page count from the PDF itself.
func PageCount(pdfPath string) (int, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("open pdf %s: %w", pdfPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Default().Warn("close pdf", "path", pdfPath, "error", cerr)
		}
	}()
	return r.NumPage(), nil
}

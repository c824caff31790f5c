// Package ocr extracts text from page images by shelling out to tesseract.
// The classifier only needs raw text to scan for ad-indicator keywords, so
// there is no layout handling here.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/dzadsearch/ads-ingest/internal/common"
)

// TextExtractor is the interface the page classifier depends on.
type TextExtractor interface {
	// ExtractText OCRs one page image. A missing or broken backend is
	// reported as common.ErrBackendUnavailable.
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// Config for the tesseract extractor.
type Config struct {
	Tesseract   string // binary name or absolute path; empty -> "tesseract"
	Languages   string // tesseract -l value; empty -> "ara+eng"
	TessdataDir string
}

// Extractor runs tesseract over page images.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger

	probeOnce sync.Once
	probeErr  error
}

// NewExtractor fills config defaults and returns a ready extractor.
func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Languages == "" {
		cfg.Languages = "ara+eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: ExecRunner{Logger: logger}, logger: logger}
}

// NewExtractorWithRunner is used by tests to stub the external command.
func NewExtractorWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = runner
	return e
}

// Available reports whether the tesseract binary can be found. The probe runs
// once per process; a missing binary downgrades OCR detection rather than
// failing the run.
func (e *Extractor) Available() bool {
	e.probeOnce.Do(func() {
		_, e.probeErr = exec.LookPath(e.cfg.Tesseract)
		if e.probeErr != nil {
			e.logger.Warn("tesseract not found, OCR detection disabled",
				"binary", e.cfg.Tesseract, "error", e.probeErr)
		}
	})
	return e.probeErr == nil
}

// ExtractText runs `tesseract <image> stdout -l <langs>` and returns the
// decoded text.
func (e *Extractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	if !e.Available() {
		return "", fmt.Errorf("tesseract %q: %w", e.cfg.Tesseract, common.ErrBackendUnavailable)
	}

	args := []string{imagePath, "stdout", "-l", e.cfg.Languages}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %s: %w", truncate(string(errb), 512), common.ErrBackendUnavailable)
	}
	return string(out), nil
}

package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// A response smaller than this without a PDF content type is assumed to be
// an HTML error page.
const minPDFBytes = 10_000

// DownloaderConfig controls issue PDF downloads.
type DownloaderConfig struct {
	OutDir      string
	URLTemplate string        // verb order: year, month, issue number
	Concurrency int           // parallel downloads; default 3
	JitterMin   time.Duration // pre-request delay range; both zero disables
	JitterMax   time.Duration
	Timeout     time.Duration
}

// DownloadResult reports one issue's outcome.
type DownloadResult struct {
	IssueNumber int
	Path        string
	Skipped     bool // already on disk
	Err         error
}

// Downloader fetches issue PDFs from the publisher's upload store.
type Downloader struct {
	cfg    DownloaderConfig
	http   *http.Client
	logger *slog.Logger
}

func NewDownloader(cfg DownloaderConfig, logger *slog.Logger) *Downloader {
	if cfg.URLTemplate == "" {
		cfg.URLTemplate = "https://www.echoroukonline.com/wp-content/uploads/%s/%s/%d.pdf"
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// DownloadAll fetches every mapped issue concurrently. A failed download is
// recorded and skipped, never fatal; failures land in failed_downloads.txt
// in the output directory for a later retry.
func (d *Downloader) DownloadAll(ctx context.Context, entries []MappingEntry) []DownloadResult {
	if err := os.MkdirAll(d.cfg.OutDir, 0o755); err != nil {
		d.logger.Error("fetch.outdir_failed", "dir", d.cfg.OutDir, "error", err)
		return nil
	}

	results := make([]DownloadResult, len(entries))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			res := d.download(ctx, entry)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	var failed []DownloadResult
	succeeded := 0
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		} else {
			succeeded++
		}
	}
	d.logger.Info("fetch.download_done", "succeeded", succeeded, "failed", len(failed))

	if len(failed) > 0 {
		d.writeFailedList(failed)
	}
	return results
}

func (d *Downloader) download(ctx context.Context, entry MappingEntry) DownloadResult {
	res := DownloadResult{IssueNumber: entry.IssueNumber}

	filename := fmt.Sprintf("echorouk_%s_%d.pdf", entry.Date, entry.IssueNumber)
	path := filepath.Join(d.cfg.OutDir, filename)
	if _, err := os.Stat(path); err == nil {
		d.logger.Debug("fetch.already_downloaded", "path", path)
		res.Path = path
		res.Skipped = true
		return res
	}

	if err := d.jitter(ctx); err != nil {
		res.Err = err
		return res
	}

	url := d.issueURL(entry)
	d.logger.Info("fetch.downloading", "issue", entry.IssueNumber, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Err = err
		return res
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "application/pdf,application/x-pdf")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ar;q=0.8")
	req.Header.Set("Referer", "https://www.echoroukonline.com/")

	resp, err := d.http.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("download %s: %w", url, err)
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		res.Err = fmt.Errorf("download %s: status %d", url, resp.StatusCode)
		return res
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = fmt.Errorf("download %s: %w", url, err)
		return res
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/pdf") && len(body) <= minPDFBytes {
		res.Err = fmt.Errorf("not a pdf: %s (content-type %q, %d bytes)", url, contentType, len(body))
		return res
	}

	if err := os.WriteFile(path, body, 0o644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", path, err)
		return res
	}
	res.Path = path
	return res
}

// issueURL builds the upload-store URL from the publication date's year and
// month plus the issue number.
func (d *Downloader) issueURL(entry MappingEntry) string {
	year, month := "0000", "00"
	if parts := strings.SplitN(entry.Date, "-", 3); len(parts) == 3 {
		year, month = parts[0], parts[1]
	}
	return fmt.Sprintf(d.cfg.URLTemplate, year, month, entry.IssueNumber)
}

// jitter sleeps a random interval so the batch does not hammer the server.
func (d *Downloader) jitter(ctx context.Context) error {
	if d.cfg.JitterMax <= 0 {
		return nil
	}
	span := d.cfg.JitterMax - d.cfg.JitterMin
	delay := d.cfg.JitterMin
	if span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (d *Downloader) writeFailedList(failed []DownloadResult) {
	path := filepath.Join(d.cfg.OutDir, "failed_downloads.txt")
	var b strings.Builder
	for _, r := range failed {
		fmt.Fprintf(&b, "%d: %v\n", r.IssueNumber, r.Err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		d.logger.Error("fetch.failed_list_write_error", "path", path, "error", err)
		return
	}
	d.logger.Info("fetch.failed_list_written", "path", path, "count", len(failed))
}

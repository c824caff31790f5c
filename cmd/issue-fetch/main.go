// Command issue-fetch builds the publication-date mapping from the
// publisher's archive listing and downloads the mapped issue PDFs.
//
// Usage:
//
//	issue-fetch -scrape -max-pages 10            # refresh the mapping
//	issue-fetch -download -out ./issues          # fetch PDFs for the mapping
//	issue-fetch -scrape -download -out ./issues  # both in one run
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dzadsearch/ads-ingest/internal/common"
	"github.com/dzadsearch/ads-ingest/internal/fetch"
)

func main() {
	scrape := flag.Bool("scrape", false, "scrape the archive listing and write the date mapping")
	download := flag.Bool("download", false, "download issue PDFs for the mapping")
	mappingPath := flag.String("mapping", "publication_dates.csv", "mapping CSV path")
	baseURL := flag.String("base-url", "", "archive listing URL (default: the publisher's archive)")
	startPage := flag.Int("start-page", 1, "first listing page to scrape")
	maxPages := flag.Int("max-pages", 5, "listing pages to walk")
	latestIssue := flag.Int("latest-issue", 0, "latest issue number; 0 resolves it from the site")
	outDir := flag.String("out", "issues", "download directory")
	startIndex := flag.Int("start-index", 0, "first mapping index to download (0 = from the start)")
	endIndex := flag.Int("end-index", 0, "last mapping index to download (0 = to the end)")
	concurrency := flag.Int("concurrency", 0, "parallel downloads (default from FETCH_CONCURRENCY)")
	jitter := flag.Duration("jitter", 2*time.Second, "max random delay before each download")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if !*scrape && !*download {
		printError("nothing to do: pass -scrape, -download, or both")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := common.LoadConfig()

	if *scrape {
		if err := runScrape(ctx, *baseURL, *mappingPath, *startPage, *maxPages, *latestIssue, logger); err != nil {
			printError("scrape: %v", err)
			os.Exit(1)
		}
	}

	if *download {
		n := cfg.Fetch.Concurrency
		if *concurrency > 0 {
			n = *concurrency
		}
		if err := runDownload(ctx, *mappingPath, *outDir, *startIndex, *endIndex, n, *jitter, cfg.Fetch.Timeout, logger); err != nil {
			printError("download: %v", err)
			os.Exit(1)
		}
	}
}

func runScrape(ctx context.Context, baseURL, mappingPath string, startPage, maxPages, latestIssue int, logger *slog.Logger) error {
	s := fetch.NewScraper(baseURL, logger)

	first, last, latestDate, err := s.PaginationRange(ctx)
	if err != nil {
		return fmt.Errorf("read archive front page: %w", err)
	}
	fmt.Printf("Archive pages %d..%d, latest issue dated %q\n", first, last, latestDate)

	if latestIssue == 0 {
		latestIssue, err = s.LatestIssueNumber(ctx)
		if err != nil {
			return fmt.Errorf("resolve latest issue number: %w", err)
		}
	}
	fmt.Printf("Latest issue number: %d\n", latestIssue)

	dates, err := s.FetchPublicationDates(ctx, startPage, maxPages)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		return fmt.Errorf("no publication dates scraped")
	}
	fetch.AssignIssueNumbers(dates, latestIssue)

	if err := fetch.SaveMapping(mappingPath, dates); err != nil {
		return err
	}
	fmt.Printf("Wrote %d entries to %s\n", len(dates), mappingPath)
	return nil
}

func runDownload(ctx context.Context, mappingPath, outDir string, startIndex, endIndex, concurrency int, jitter, timeout time.Duration, logger *slog.Logger) error {
	entries, err := fetch.LoadMapping(mappingPath)
	if err != nil {
		return fmt.Errorf("load mapping %s (run -scrape first?): %w", mappingPath, err)
	}

	if startIndex > 0 || endIndex > 0 {
		var kept []fetch.MappingEntry
		for _, e := range entries {
			if startIndex > 0 && e.Index < startIndex {
				continue
			}
			if endIndex > 0 && e.Index > endIndex {
				continue
			}
			kept = append(kept, e)
		}
		entries = kept
	}
	if len(entries) == 0 {
		return fmt.Errorf("no mapping entries in the selected range")
	}

	d := fetch.NewDownloader(fetch.DownloaderConfig{
		OutDir:      outDir,
		Concurrency: concurrency,
		JitterMin:   jitter / 4,
		JitterMax:   jitter,
		Timeout:     timeout,
	}, logger)

	results := d.DownloadAll(ctx, entries)
	downloaded, skipped, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Skipped:
			skipped++
		default:
			downloaded++
		}
	}
	fmt.Printf("Downloaded %d, skipped %d already present, %d failed\n", downloaded, skipped, failed)
	if failed > 0 {
		fmt.Printf("Failures listed in %s\n", outDir+"/failed_downloads.txt")
	}
	if downloaded+skipped == 0 {
		return fmt.Errorf("every download failed")
	}
	return nil
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

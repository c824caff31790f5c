// Command ads-ingest processes a directory of newspaper issue PDFs: it finds
// the ad pages in each issue, extracts them as images, and, when a vision API
// key is configured, parses the announcements and stores them.
//
// Usage:
//
//	ads-ingest -pdf-dir ./issues -out ./ad_pages [-inmem] [-start-issue N -end-issue M]
//
// Without filter flags the tool prompts interactively, showing the date and
// issue ranges available in the input directory.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dzadsearch/ads-ingest/gen/ent"
	"github.com/dzadsearch/ads-ingest/internal/classifier"
	"github.com/dzadsearch/ads-ingest/internal/common"
	"github.com/dzadsearch/ads-ingest/internal/metadata"
	"github.com/dzadsearch/ads-ingest/internal/ocr"
	"github.com/dzadsearch/ads-ingest/internal/parser"
	"github.com/dzadsearch/ads-ingest/internal/pipeline"
	"github.com/dzadsearch/ads-ingest/internal/raster"
	"github.com/dzadsearch/ads-ingest/internal/repository"
	"github.com/dzadsearch/ads-ingest/internal/taxonomy"
	"github.com/dzadsearch/ads-ingest/internal/vision"
)

func main() {
	pdfDir := flag.String("pdf-dir", "", "directory containing issue PDFs (required)")
	outDir := flag.String("out", "ad_pages", "output directory for extracted page images and reports")
	configPath := flag.String("config", "config.json", "JSON config file (api key, tool paths)")
	apiKey := flag.String("api-key", "", "vision API key (overrides config file and VISION_API_KEY)")
	tesseractPath := flag.String("tesseract-path", "", "path to the tesseract binary")
	pdftoppmPath := flag.String("pdftoppm-path", "", "path to the pdftoppm binary")
	startDate := flag.String("start-date", "", "only process issues published on or after this date (YYYY-MM-DD)")
	endDate := flag.String("end-date", "", "only process issues published on or before this date (YYYY-MM-DD)")
	startIssue := flag.Int("start-issue", 0, "only process issues numbered at or above this")
	endIssue := flag.Int("end-issue", 0, "only process issues numbered at or below this")
	limit := flag.Int("limit", 0, "process at most this many issues")
	scanCap := flag.Int("scan-cap", 0, "classify at most this many leading pages per issue (default from SCAN_PAGE_CAP)")
	inmem := flag.Bool("inmem", false, "store announcements in an in-memory SQLite database instead of Postgres")
	noPrompt := flag.Bool("no-prompt", false, "never prompt; missing settings disable their feature")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *pdfDir == "" {
		printError("-pdf-dir is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.ApplyFile(*configPath); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			printError("config: %v", err)
			os.Exit(1)
		}
		if !*noPrompt {
			promptForSetup(cfg, *configPath)
		}
	}
	if *apiKey != "" {
		cfg.Vision.APIKey = *apiKey
	}
	if *tesseractPath != "" {
		cfg.OCR.Tesseract = *tesseractPath
	}
	if *pdftoppmPath != "" {
		cfg.Raster.Pdftoppm = *pdftoppmPath
	}
	if *scanCap > 0 {
		cfg.Raster.ScanPageCap = *scanCap
	}
	if err := cfg.Validate(); err != nil {
		printError("config: %v", err)
		os.Exit(2)
	}

	filter := metadata.Filter{
		StartDate: *startDate,
		EndDate:   *endDate,
		Limit:     *limit,
	}
	if *startIssue > 0 {
		filter.StartIssue = startIssue
	}
	if *endIssue > 0 {
		filter.EndIssue = endIssue
	}

	paths, err := filepath.Glob(filepath.Join(*pdfDir, "*.pdf"))
	if err != nil || len(paths) == 0 {
		printError("no PDFs found in %s", *pdfDir)
		os.Exit(1)
	}
	sort.Strings(paths)

	if filterIsEmpty(filter) && !*noPrompt {
		filter = promptForFilter(paths)
	}

	ctx := context.Background()

	// Storage is optional: with neither -inmem nor DB_URL the run stops
	// after page extraction and reporting.
	var announcements repository.AnnouncementRepository
	var wilayas, lines, types *taxonomy.Taxonomy
	switch {
	case *inmem:
		client, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			printError("open in-memory store: %v", err)
			os.Exit(1)
		}
		defer client.Close()
		wilayas, lines, types = mustTaxonomies(ctx, client, logger)
		announcements = repository.NewAnnouncementRepository(client, logger)
	case cfg.Database.DSN != "":
		client, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
		if err != nil {
			printError("connect to database: %v", err)
			os.Exit(1)
		}
		defer repository.Close(client, pool, logger)
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			printError("database health check: %v", err)
			os.Exit(1)
		}
		wilayas, lines, types = mustTaxonomies(ctx, client, logger)
		announcements = repository.NewAnnouncementRepository(client, logger)
	default:
		logger.Warn("no database configured, announcements will not be stored")
	}

	visionClient := vision.NewClient(vision.Config{
		APIKey:      cfg.Vision.APIKey,
		BaseURL:     cfg.Vision.BaseURL,
		Model:       cfg.Vision.Model,
		Temperature: cfg.Vision.Temperature,
		Timeout:     cfg.Vision.Timeout,
	}, logger)
	if !visionClient.Enabled() {
		logger.Warn("no vision api key, page classification falls back to OCR and heuristics")
	}

	textExtractor := ocr.NewExtractor(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Languages:   cfg.OCR.Languages,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	renderer := raster.New(raster.Config{Pdftoppm: cfg.Raster.Pdftoppm}, logger)
	cls := classifier.New(textExtractor, visionClient, logger)

	var prs *parser.Parser
	if announcements != nil && visionClient.Enabled() {
		prs = parser.New(visionClient, wilayas, lines, types, logger)
	}

	p := pipeline.New(pipeline.Config{
		ScanDPI:     cfg.Raster.ScanDPI,
		ExtractDPI:  cfg.Raster.ExtractDPI,
		ScanPageCap: cfg.Raster.ScanPageCap,
		OutDir:      *outDir,
	}, renderer, cls, prs, announcements, logger)

	results, err := p.ProcessDirectory(ctx, *pdfDir, filter)
	if err != nil {
		printError("processing aborted: %v", err)
	}
	if len(results) == 0 {
		printError("nothing processed")
		os.Exit(1)
	}

	csvPath := filepath.Join(*outDir, "ads_pages.csv")
	if err := pipeline.WriteCSVReport(csvPath, results); err != nil {
		printError("write csv report: %v", err)
	} else {
		fmt.Printf("Report written to %s\n", csvPath)
	}
	xlsxPath := filepath.Join(*outDir, "ads_pages.xlsx")
	if err := pipeline.WriteXLSXReport(xlsxPath, results); err != nil {
		printError("write xlsx report: %v", err)
	} else {
		fmt.Printf("Workbook written to %s\n", xlsxPath)
	}

	failed := 0
	stored := 0
	for _, r := range results {
		if r.Err != "" {
			failed++
		}
		stored += r.AnnouncementsStored
	}
	fmt.Printf("Processed %d issues (%d failed), %d announcements stored\n", len(results), failed, stored)
	if failed == len(results) {
		os.Exit(1)
	}
}

// mustTaxonomies seeds the reference tables if empty and loads all three
// lists, exiting on failure since nothing downstream works without them.
func mustTaxonomies(ctx context.Context, client *ent.Client, logger *slog.Logger) (*taxonomy.Taxonomy, *taxonomy.Taxonomy, *taxonomy.Taxonomy) {
	repo := repository.NewTaxonomyRepository(client, logger)
	if err := repo.Seed(ctx); err != nil {
		printError("seed reference tables: %v", err)
		os.Exit(1)
	}
	wilayas, err := repo.LoadWilayas(ctx)
	if err != nil {
		printError("load wilayas: %v", err)
		os.Exit(1)
	}
	lines, err := repo.LoadBusinessLines(ctx)
	if err != nil {
		printError("load business lines: %v", err)
		os.Exit(1)
	}
	types, err := repo.LoadAnnouncementTypes(ctx)
	if err != nil {
		printError("load announcement types: %v", err)
		os.Exit(1)
	}
	return wilayas, lines, types
}

func filterIsEmpty(f metadata.Filter) bool {
	return f.StartDate == "" && f.EndDate == "" && f.StartIssue == nil && f.EndIssue == nil && f.Limit == 0
}

// promptForSetup collects the api key and tool paths interactively when no
// config file exists, and offers to save them for the next run.
func promptForSetup(cfg *common.Config, path string) {
	r := bufio.NewReader(os.Stdin)

	fmt.Println("No config file found, let's set one up (press Enter to keep defaults).")
	if v := ask(r, fmt.Sprintf("Vision API key [%s]: ", mask(cfg.Vision.APIKey))); v != "" {
		cfg.Vision.APIKey = v
	}
	if v := ask(r, fmt.Sprintf("pdftoppm path [%s]: ", cfg.Raster.Pdftoppm)); v != "" {
		cfg.Raster.Pdftoppm = v
	}
	if v := ask(r, fmt.Sprintf("tesseract path [%s]: ", cfg.OCR.Tesseract)); v != "" {
		cfg.OCR.Tesseract = v
	}

	if strings.EqualFold(ask(r, fmt.Sprintf("Save to %s? [y/N]: ", path)), "y") {
		if err := cfg.WriteFile(path); err != nil {
			printError("save config: %v", err)
		} else {
			fmt.Printf("Saved %s\n", path)
		}
	}
}

// promptForFilter shows what the input directory holds and asks the operator
// how to narrow the run.
func promptForFilter(paths []string) metadata.Filter {
	r := bufio.NewReader(os.Stdin)
	ranges := metadata.AvailableRanges(paths)

	fmt.Printf("Found %d PDFs", len(paths))
	if ranges.MinDate != "" {
		fmt.Printf(", dates %s to %s", ranges.MinDate, ranges.MaxDate)
	}
	if ranges.MinIssue != nil {
		fmt.Printf(", issues %d to %d", *ranges.MinIssue, *ranges.MaxIssue)
	}
	fmt.Println()
	fmt.Println("How should the run be narrowed?")
	fmt.Println("  1) by date range")
	fmt.Println("  2) by issue number range")
	fmt.Println("  3) process everything (optionally capped)")

	var f metadata.Filter
	switch ask(r, "Choice [3]: ") {
	case "1":
		f.StartDate = ask(r, "Start date (YYYY-MM-DD, empty for open): ")
		f.EndDate = ask(r, "End date (YYYY-MM-DD, empty for open): ")
	case "2":
		if n, err := strconv.Atoi(ask(r, "Start issue (empty for open): ")); err == nil {
			f.StartIssue = &n
		}
		if n, err := strconv.Atoi(ask(r, "End issue (empty for open): ")); err == nil {
			f.EndIssue = &n
		}
	default:
		if n, err := strconv.Atoi(ask(r, "Max issues to process (empty for all): ")); err == nil {
			f.Limit = n
		}
	}
	return f
}

func ask(r *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func mask(s string) string {
	if len(s) <= 8 {
		if s == "" {
			return "not set"
		}
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

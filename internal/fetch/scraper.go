// Package fetch acquires newspaper issues: it scrapes the publisher's
// archive listing for publication dates and downloads the issue PDFs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	defaultBaseURL = "https://www.echoroukonline.com/echorouk-yawmi"
	browserUA      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// PublicationDate is one archive entry scraped from a listing page.
type PublicationDate struct {
	Date        time.Time
	DateText    string // original Arabic text, e.g. "الأحد 16 مارس 2025"
	URL         string
	ScrapeOrder int // 1-based, newest first
	IssueNumber int // 0 until assigned from the latest issue number
}

// Scraper reads the publisher's archive listing.
type Scraper struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewScraper(baseURL string, logger *slog.Logger) *Scraper {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

var pageNumberRe = regexp.MustCompile(`/page/(\d+)`)

// PaginationRange reads the archive front page and reports the last listing
// page plus the latest publication date text. A missing pagination block
// degrades to (1, 0).
func (s *Scraper) PaginationRange(ctx context.Context) (first, last int, latestDate string, err error) {
	doc, err := s.get(ctx, s.baseURL)
	if err != nil {
		return 1, 0, "", err
	}

	if n := findFirst(doc, byClass("div", "ech-palp__title")); n != nil {
		if a := findFirst(n, byTag("a")); a != nil {
			latestDate = strings.TrimSpace(text(a))
		}
	}

	ul := findFirst(doc, byClass("ul", "fxw-w"))
	if ul == nil {
		s.logger.Warn("fetch.pagination_not_found", "url", s.baseURL)
		return 1, 0, latestDate, nil
	}
	items := findAll(ul, byTag("li"))
	if len(items) == 0 {
		return 1, 0, latestDate, nil
	}

	a := findFirst(items[len(items)-1], byTag("a"))
	if a == nil {
		return 1, 0, latestDate, nil
	}
	if m := pageNumberRe.FindStringSubmatch(attr(a, "href")); m != nil {
		last, _ = strconv.Atoi(m[1])
	} else if n, convErr := strconv.Atoi(strings.TrimSpace(text(a))); convErr == nil {
		last = n
	}

	s.logger.Info("fetch.pagination", "first", 1, "last", last, "latest_date", latestDate)
	return 1, last, latestDate, nil
}

// FetchPublicationDates walks listing pages collecting publication dates in
// scrape order (newest first). An unreachable page ends the walk with what
// was collected so far.
func (s *Scraper) FetchPublicationDates(ctx context.Context, startPage, maxPages int) ([]PublicationDate, error) {
	var dates []PublicationDate
	for page := startPage; page < startPage+maxPages; page++ {
		url := fmt.Sprintf("%s/page/%d", s.baseURL, page)
		doc, err := s.get(ctx, url)
		if err != nil {
			s.logger.Warn("fetch.listing_page_failed", "url", url, "error", err)
			break
		}

		anchors := listingAnchors(doc)
		if len(anchors) == 0 {
			s.logger.Warn("fetch.no_dates_on_page", "url", url)
			break
		}

		for _, a := range anchors {
			dateText := strings.TrimSpace(text(a))
			date, err := ParseArabicDate(dateText)
			if err != nil {
				s.logger.Warn("fetch.unparseable_date", "text", dateText, "error", err)
				continue
			}
			dates = append(dates, PublicationDate{
				Date:        date,
				DateText:    dateText,
				URL:         attr(a, "href"),
				ScrapeOrder: len(dates) + 1,
			})
		}
		s.logger.Info("fetch.listing_page_done", "page", page, "total", len(dates))
	}
	return dates, nil
}

var issueFromPDFURLRe = regexp.MustCompile(`/(\d+)\.pdf$`)

// LatestIssueNumber follows the download chain from the archive front page
// to the latest issue's PDF and reads the issue number off its URL. With it,
// every scraped date gets an issue number by offset: the newest entry is the
// latest issue, each older entry one less.
func (s *Scraper) LatestIssueNumber(ctx context.Context) (int, error) {
	doc, err := s.get(ctx, s.baseURL)
	if err != nil {
		return 0, err
	}

	title := findFirst(doc, byClass("div", "ech-palp__title"))
	if title == nil {
		return 0, fmt.Errorf("latest issue link not found")
	}
	a := findFirst(title, byTag("a"))
	if a == nil {
		return 0, fmt.Errorf("latest issue link not found")
	}

	issueURL := s.absolute(attr(a, "href"))
	for i := 0; i < 2; i++ {
		doc, err = s.get(ctx, issueURL)
		if err != nil {
			return 0, err
		}
		link := findFirst(doc, byClass("a", "ech-dwmt__dwlk"))
		if link == nil {
			return 0, fmt.Errorf("download link not found on %s", issueURL)
		}
		issueURL = s.absolute(attr(link, "href"))
	}

	// The PDF link redirects; the final URL carries the issue number.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, issueURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", browserUA)
	resp, err := s.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	final := resp.Request.URL.String()
	m := issueFromPDFURLRe.FindStringSubmatch(final)
	if m == nil {
		return 0, fmt.Errorf("no issue number in pdf url %s", final)
	}
	n, _ := strconv.Atoi(m[1])
	s.logger.Info("fetch.latest_issue", "issue", n, "url", final)
	return n, nil
}

// AssignIssueNumbers back-fills issue numbers from the latest one using
// scrape order: newest entry first.
func AssignIssueNumbers(dates []PublicationDate, latestIssue int) {
	for i := range dates {
		dates[i].IssueNumber = latestIssue - dates[i].ScrapeOrder + 1
	}
}

func (s *Scraper) get(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUA)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return html.Parse(resp.Body)
}

func (s *Scraper) absolute(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return "https://www.echoroukonline.com" + href
}

// listingAnchors finds the per-issue date links, with a looser fallback when
// the publisher reshuffles its CSS classes.
func listingAnchors(doc *html.Node) []*html.Node {
	var anchors []*html.Node
	for _, block := range findAll(doc, byClass("div", "ech-pdbl__pdat")) {
		if a := findFirst(block, byTag("a")); a != nil {
			anchors = append(anchors, a)
		}
	}
	if len(anchors) > 0 {
		return anchors
	}
	for _, a := range findAll(doc, byTag("a")) {
		if strings.Contains(attr(a, "href"), "echorouk-yawmi") {
			anchors = append(anchors, a)
		}
	}
	return anchors
}

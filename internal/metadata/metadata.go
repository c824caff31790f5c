// Package metadata derives issue numbers and publication dates from PDF
// file names. Issue number is the primary correlation key across the
// scraping, downloading and extraction stages, so everything here is
// best-effort: no match means nil, never an error.
package metadata

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reIssueToken    = regexp.MustCompile(`(?i)issue[_-]?(\d+)`)
	reTrailingIssue = regexp.MustCompile(`(?i)_(\d+)\.pdf$`)
	reISODate       = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// Extract parses issue number and publication date from a PDF path.
// The issue number is taken from an explicit "issue_<N>" token first, then
// from a trailing "_<N>.pdf" token. The date is the first ISO YYYY-MM-DD
// token in the file stem.
func Extract(path string) (issueNumber *int, publishDate *time.Time) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if m := reIssueToken.FindStringSubmatch(stem); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			issueNumber = &n
		}
	} else if m := reTrailingIssue.FindStringSubmatch(filepath.Base(path)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			issueNumber = &n
		}
	}

	if m := reISODate.FindString(stem); m != "" {
		if d, err := time.Parse("2006-01-02", m); err == nil {
			publishDate = &d
		}
	}

	return issueNumber, publishDate
}

// Filter narrows a set of PDF paths by filename-derived metadata.
// All bounds are inclusive. Zero values mean "no bound".
type Filter struct {
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	StartIssue *int
	EndIssue   *int
	Limit      int
}

// Apply returns the paths passing every configured bound, preserving input
// order. When a date bound is set, files without a parseable date are
// dropped; likewise for issue bounds and files without an issue number.
func (f Filter) Apply(paths []string) []string {
	out := paths

	if f.StartDate != "" || f.EndDate != "" {
		var kept []string
		for _, p := range out {
			stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			d := reISODate.FindString(stem)
			if d == "" {
				continue
			}
			// ISO dates compare correctly as strings.
			if f.StartDate != "" && d < f.StartDate {
				continue
			}
			if f.EndDate != "" && d > f.EndDate {
				continue
			}
			kept = append(kept, p)
		}
		out = kept
	}

	if f.StartIssue != nil || f.EndIssue != nil {
		var kept []string
		for _, p := range out {
			n, _ := Extract(p)
			if n == nil {
				continue
			}
			if f.StartIssue != nil && *n < *f.StartIssue {
				continue
			}
			if f.EndIssue != nil && *n > *f.EndIssue {
				continue
			}
			kept = append(kept, p)
		}
		out = kept
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// Ranges describes the metadata spread across a set of files, used by the
// interactive prompts to show the operator what is available.
type Ranges struct {
	MinDate  string
	MaxDate  string
	MinIssue *int
	MaxIssue *int
}

// AvailableRanges scans paths and reports the min/max date and issue number
// found. Files without metadata are skipped.
func AvailableRanges(paths []string) Ranges {
	var r Ranges
	for _, p := range paths {
		issue, date := Extract(p)
		if date != nil {
			d := date.Format("2006-01-02")
			if r.MinDate == "" || d < r.MinDate {
				r.MinDate = d
			}
			if r.MaxDate == "" || d > r.MaxDate {
				r.MaxDate = d
			}
		}
		if issue != nil {
			if r.MinIssue == nil || *issue < *r.MinIssue {
				v := *issue
				r.MinIssue = &v
			}
			if r.MaxIssue == nil || *issue > *r.MaxIssue {
				v := *issue
				r.MaxIssue = &v
			}
		}
	}
	return r
}

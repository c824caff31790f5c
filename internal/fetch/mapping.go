package fetch

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/dzadsearch/ads-ingest/internal/common"
)

// MappingEntry links one publication date to its issue number.
type MappingEntry struct {
	Index       int
	Date        string // YYYY-MM-DD
	DateText    string
	IssueNumber int
}

// SaveMapping writes the issue mapping CSV, oldest issue first, re-indexing
// rows after the sort.
func SaveMapping(path string, dates []PublicationDate) error {
	sorted := make([]PublicationDate, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].IssueNumber < sorted[j].IssueNumber
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mapping file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"index", "date", "date_text", "standard_date", "issue_number"}); err != nil {
		return err
	}
	for i, d := range sorted {
		iso := d.Date.Format("2006-01-02")
		row := []string{strconv.Itoa(i + 1), iso, d.DateText, iso, strconv.Itoa(d.IssueNumber)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// LoadMapping reads the issue mapping CSV back, sorted ascending by issue
// number. A missing file wraps common.ErrNotFound.
func LoadMapping(path string) ([]MappingEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("mapping file %s: %w", path, common.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	entries := make([]MappingEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 5 {
			continue
		}
		idx, _ := strconv.Atoi(row[0])
		issue, err := strconv.Atoi(row[4])
		if err != nil {
			continue
		}
		entries = append(entries, MappingEntry{
			Index:       idx,
			Date:        row[1],
			DateText:    row[2],
			IssueNumber: issue,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].IssueNumber < entries[j].IssueNumber
	})
	return entries, nil
}

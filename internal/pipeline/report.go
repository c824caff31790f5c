package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dzadsearch/ads-ingest/internal/entity"
)

// WriteCSVReport writes the per-issue ad page summary the downstream stages
// read: one row per document with the detected ad pages.
func WriteCSVReport(path string, results []entity.IngestionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"name", "issue_number", "date", "ads_pages"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write(reportRow(r)); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteXLSXReport writes the same summary as a workbook for manual review.
func WriteXLSXReport(path string, results []entity.IngestionResult) error {
	f := excelize.NewFile()
	const sheet = "Ad Pages"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Issue Number", "Date", "Ad Pages", "Announcements", "Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range results {
		row := reportRow(r)
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, row[0])
		write(2, row[1])
		write(3, row[2])
		write(4, row[3])
		write(5, r.AnnouncementsStored)
		write(6, r.Err)
	}

	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "C", 14)
	_ = f.SetColWidth(sheet, "D", "D", 20)
	_ = f.SetColWidth(sheet, "F", "F", 48)

	return f.SaveAs(path)
}

func reportRow(r entity.IngestionResult) []string {
	issue := ""
	if r.Document.IssueNumber != nil {
		issue = strconv.Itoa(*r.Document.IssueNumber)
	}
	date := ""
	if r.Document.PublishDate != nil {
		date = r.Document.PublishDate.Format("2006-01-02")
	}

	pages := make([]string, len(r.AdPages))
	for i, p := range r.AdPages {
		pages[i] = strconv.Itoa(p)
	}
	return []string{r.Document.Name(), issue, date, strings.Join(pages, ", ")}
}

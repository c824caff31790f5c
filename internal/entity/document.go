package entity

import (
	"path/filepath"
	"time"
)

// Document is one newspaper issue on disk. IssueNumber and PublishDate are
// best-effort extractions from the file name and may be nil.
type Document struct {
	FilePath    string     `json:"file_path"`
	IssueNumber *int       `json:"issue_number"`
	PublishDate *time.Time `json:"publish_date"`
	TotalPages  int        `json:"total_pages"`
}

// Name returns the base file name of the document.
func (d Document) Name() string {
	return filepath.Base(d.FilePath)
}

// IngestionResult aggregates the outcome of processing one document.
// AdPages and ExtractedImagePaths keep the order in which pages were accepted.
type IngestionResult struct {
	Document            Document `json:"document"`
	AdPages             []int    `json:"ad_pages"`
	ExtractedImagePaths []string `json:"extracted_image_paths"`
	AnnouncementsStored int      `json:"announcements_stored"`
	Err                 string   `json:"err,omitempty"`
}

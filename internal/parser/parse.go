package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dzadsearch/ads-ingest/constants"
	"github.com/dzadsearch/ads-ingest/internal/entity"
	"github.com/dzadsearch/ads-ingest/internal/taxonomy"
)

// DefaultTitle fills in for announcements the model returned without one.
const DefaultTitle = "Untitled Announcement"

// ParseError reports model output that carried no usable announcement array.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse announcements: %s", e.Reason)
}

// wire shapes for the model's announcement JSON.
type wireRef struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type wireItem struct {
	Announcement struct {
		ID          string          `json:"id"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Number      string          `json:"number"`
		Owner       string          `json:"owner"`
		Terms       string          `json:"terms"`
		Contact     string          `json:"contact"`
		DueAmount   json.RawMessage `json:"dueAmount"`
		PublishDate string          `json:"publishDate"`
		DueDate     string          `json:"dueDate"`
		Status      int             `json:"status"`
	} `json:"announcement"`
	Wilaya           wireRef            `json:"wilaya"`
	BusinessLine     wireRef            `json:"businessLine"`
	AnnouncementType wireRef            `json:"announcementType"`
	BoundingBox      entity.BoundingBox `json:"boundingBox"`
}

// extractArray slices the first top-level JSON array out of surrounding model
// chatter: everything from the first '[' to the last ']'.
func extractArray(raw string) (string, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start == -1 || end == -1 || end < start {
		return "", &ParseError{Reason: "no JSON array found", Raw: raw}
	}
	return raw[start : end+1], nil
}

// ParseAnnouncements decodes raw model output into announcement records,
// reconciling the three taxonomy labels against the reference lists. A
// malformed item is logged and skipped; only output with no array at all is
// an error.
func ParseAnnouncements(raw string, wilayas, businessLines, types *taxonomy.Taxonomy, logger *slog.Logger) ([]entity.AnnouncementRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	arr, err := extractArray(raw)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(arr), &items); err != nil {
		return nil, &ParseError{Reason: "invalid JSON array: " + err.Error(), Raw: raw}
	}

	schema := buildAnnouncementSchema()
	records := make([]entity.AnnouncementRecord, 0, len(items))
	for i, item := range items {
		if err := validateAgainstSchema(schema, item); err != nil {
			logger.Warn("parser.item_rejected", "index", i, "error", err)
			continue
		}

		var w wireItem
		if err := json.Unmarshal(item, &w); err != nil {
			logger.Warn("parser.item_rejected", "index", i, "error", err)
			continue
		}

		records = append(records, toRecord(w, wilayas, businessLines, types))
	}
	return records, nil
}

func toRecord(w wireItem, wilayas, businessLines, types *taxonomy.Taxonomy) entity.AnnouncementRecord {
	a := w.Announcement

	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = DefaultTitle
	}

	status := a.Status
	if status < constants.AnnouncementStatusOpen || status > constants.AnnouncementStatusCancelled {
		status = constants.StatusDefault
	}

	return entity.AnnouncementRecord{
		Title:       title,
		Description: strings.TrimSpace(a.Description),
		Number:      strings.TrimSpace(a.Number),
		Owner:       strings.TrimSpace(a.Owner),
		Terms:       strings.TrimSpace(a.Terms),
		Contact:     strings.TrimSpace(a.Contact),
		DueAmount:   coerceAmount(a.DueAmount),
		PublishDate: strings.TrimSpace(a.PublishDate),
		DueDate:     strings.TrimSpace(a.DueDate),
		Status:      status,

		Wilaya:           wilayas.Resolve(w.Wilaya.Name),
		BusinessLine:     businessLines.Resolve(w.BusinessLine.Name),
		AnnouncementType: types.Resolve(w.AnnouncementType.Name),

		BoundingBox: w.BoundingBox,
	}
}

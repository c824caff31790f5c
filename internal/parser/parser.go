// Package parser turns ad-page images into structured announcement records.
// Detection is delegated to a vision model; this package owns validation,
// field normalization, and reconciliation against the reference taxonomies.
package parser

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/dzadsearch/ads-ingest/internal/entity"
	"github.com/dzadsearch/ads-ingest/internal/taxonomy"
)

// Detector is the vision-model dependency, satisfied by *vision.Client.
type Detector interface {
	Enabled() bool
	DetectAnnouncements(ctx context.Context, imagePath, listsBlock string) (string, error)
}

// Parser extracts announcements from ad-page images.
type Parser struct {
	detector      Detector
	wilayas       *taxonomy.Taxonomy
	businessLines *taxonomy.Taxonomy
	types         *taxonomy.Taxonomy
	listsBlock    string
	logger        *slog.Logger
}

// New builds a parser bound to the loaded reference taxonomies. The lists
// block sent to the model is rendered once up front; taxonomies are fixed
// for the process lifetime.
func New(detector Detector, wilayas, businessLines, types *taxonomy.Taxonomy, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		detector:      detector,
		wilayas:       wilayas,
		businessLines: businessLines,
		types:         types,
		listsBlock:    renderLists(wilayas, businessLines, types),
		logger:        logger,
	}
}

// Enabled reports whether the underlying detector can be called.
func (p *Parser) Enabled() bool {
	return p.detector != nil && p.detector.Enabled()
}

// ParsePage detects and parses every announcement on one page image.
func (p *Parser) ParsePage(ctx context.Context, imagePath string) ([]entity.AnnouncementRecord, error) {
	raw, err := p.detector.DetectAnnouncements(ctx, imagePath, p.listsBlock)
	if err != nil {
		return nil, err
	}

	records, err := ParseAnnouncements(raw, p.wilayas, p.businessLines, p.types, p.logger)
	if err != nil {
		return nil, err
	}

	p.logger.Info("parser.page_done", "image", imagePath, "announcements", len(records))
	return records, nil
}

// renderLists serializes the taxonomies the way the detection prompt expects
// them: three named JSON arrays of {id, name} objects.
func renderLists(wilayas, businessLines, types *taxonomy.Taxonomy) string {
	var b strings.Builder
	b.WriteString("BusinessLines = ")
	b.WriteString(entriesJSON(businessLines))
	b.WriteString("\nWilayas = ")
	b.WriteString(entriesJSON(wilayas))
	b.WriteString("\nAnnouncementTypes = ")
	b.WriteString(entriesJSON(types))
	return b.String()
}

func entriesJSON(t *taxonomy.Taxonomy) string {
	if t == nil {
		return "[]"
	}
	type ref struct {
		ID   *int   `json:"id"`
		Name string `json:"name"`
	}
	entries := t.Entries()
	refs := make([]ref, len(entries))
	for i, e := range entries {
		refs[i] = ref{ID: e.ID, Name: e.Name}
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

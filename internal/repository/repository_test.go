package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dzadsearch/ads-ingest/constants"
	"github.com/dzadsearch/ads-ingest/gen/ent"
	"github.com/dzadsearch/ads-ingest/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	// Private memory store per test: no shared cache, no cross-test state.
	client, err := OpenSQLite(context.Background(), "file:"+t.Name()+"?mode=memory&_pragma=foreign_keys(1)", slog.Default())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTaxonomySeedAndLoad(t *testing.T) {
	client := openTestClient(t)
	repo := NewTaxonomyRepository(client, slog.Default())
	ctx := context.Background()

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Second seed must be a no-op, not a duplicate-key error.
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	wilayas, err := repo.LoadWilayas(ctx)
	if err != nil {
		t.Fatalf("load wilayas: %v", err)
	}
	if wilayas.Len() != len(constants.Wilayas) {
		t.Errorf("wilayas: got %d, want %d", wilayas.Len(), len(constants.Wilayas))
	}
	entries := wilayas.Entries()
	if entries[0].ID == nil || *entries[0].ID != 1 || entries[0].Name != constants.Wilayas[0] {
		t.Errorf("first wilaya: got %+v", entries[0])
	}

	types, err := repo.LoadAnnouncementTypes(ctx)
	if err != nil {
		t.Fatalf("load types: %v", err)
	}
	if types.Len() != len(constants.AnnouncementTypes) {
		t.Errorf("types: got %d, want %d", types.Len(), len(constants.AnnouncementTypes))
	}
}

func TestAnnouncementInsert(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()

	taxRepo := NewTaxonomyRepository(client, slog.Default())
	if err := taxRepo.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewAnnouncementRepository(client, slog.Default())
	amount := int64(2500000)
	wilayaID := 16
	issue := 7012

	req := InsertRequest{
		Record: entity.AnnouncementRecord{
			Title:       "Tender for Roadworks",
			Description: "Resurfacing of the RN5",
			DueAmount:   &amount,
			PublishDate: "2025-03-16",
			Status:      constants.AnnouncementStatusOpen,
			Wilaya:      entity.TaxonomyEntry{ID: &wilayaID, Name: "Algiers"},
			// Unmatched label: name only, no FK.
			BusinessLine: entity.TaxonomyEntry{Name: "Road Resurfacing"},
			BoundingBox:  entity.BoundingBox{XMin: 10, YMin: 20, XMax: 300, YMax: 400},
		},
		SourceFile:  "echorouk_2025-03-16_7012.pdf",
		SourcePage:  18,
		IssueNumber: &issue,
	}
	if err := repo.Insert(ctx, req); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := client.Announcement.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Title != "Tender for Roadworks" {
		t.Errorf("title: got %q", row.Title)
	}
	if row.DueAmount == nil || *row.DueAmount != amount {
		t.Errorf("due amount: got %v", row.DueAmount)
	}
	if row.WilayaID == nil || *row.WilayaID != wilayaID {
		t.Errorf("wilaya id: got %v", row.WilayaID)
	}
	if row.BusinessLineID != nil {
		t.Errorf("unmatched business line must keep a nil FK, got %v", row.BusinessLineID)
	}
	if row.BusinessLineName == nil || *row.BusinessLineName != "Road Resurfacing" {
		t.Errorf("business line name: got %v", row.BusinessLineName)
	}
	if row.BoundingBox["x_max"] != 300 {
		t.Errorf("bounding box: got %v", row.BoundingBox)
	}
}

func TestInsertBatchIsolatesFailures(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()

	repo := NewAnnouncementRepository(client, slog.Default())
	reqs := []InsertRequest{
		{Record: entity.AnnouncementRecord{Title: "Good One", Status: 1}},
		{Record: entity.AnnouncementRecord{Title: "", Status: 1}}, // violates NotEmpty
		{Record: entity.AnnouncementRecord{Title: "Good Two", Status: 1}},
	}

	stored := repo.InsertBatch(ctx, reqs)
	if stored != 2 {
		t.Fatalf("stored: got %d, want 2", stored)
	}
	n, err := client.Announcement.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("row count: got %d, want 2", n)
	}
}

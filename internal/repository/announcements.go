package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dzadsearch/ads-ingest/gen/ent"
	"github.com/dzadsearch/ads-ingest/internal/common"
	"github.com/dzadsearch/ads-ingest/internal/entity"
)

// InsertRequest carries one parsed announcement plus its provenance.
type InsertRequest struct {
	Record      entity.AnnouncementRecord
	SourceFile  string
	SourcePage  int
	IssueNumber *int
}

type AnnouncementRepository interface {
	Insert(ctx context.Context, req InsertRequest) error
	// InsertBatch stores each record independently and returns how many made
	// it in; one bad row never rolls back its siblings.
	InsertBatch(ctx context.Context, reqs []InsertRequest) int
}

type announcementRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAnnouncementRepository(client *ent.Client, logger *slog.Logger) AnnouncementRepository {
	return &announcementRepository{
		client: client,
		logger: logger,
	}
}

func (r *announcementRepository) Insert(ctx context.Context, req InsertRequest) error {
	rec := req.Record

	create := r.client.Announcement.Create().
		SetTitle(rec.Title).
		SetStatus(rec.Status).
		SetNillableDescription(nilIfEmpty(rec.Description)).
		SetNillableNumber(nilIfEmpty(rec.Number)).
		SetNillableOwner(nilIfEmpty(rec.Owner)).
		SetNillableTerms(nilIfEmpty(rec.Terms)).
		SetNillableContact(nilIfEmpty(rec.Contact)).
		SetNillableDueAmount(rec.DueAmount).
		SetNillablePublishDate(nilIfEmpty(rec.PublishDate)).
		SetNillableDueDate(nilIfEmpty(rec.DueDate)).
		SetNillableWilayaID(rec.Wilaya.ID).
		SetNillableBusinessLineID(rec.BusinessLine.ID).
		SetNillableAnnouncementTypeID(rec.AnnouncementType.ID).
		SetNillableWilayaName(nilIfEmpty(rec.Wilaya.Name)).
		SetNillableBusinessLineName(nilIfEmpty(rec.BusinessLine.Name)).
		SetNillableAnnouncementTypeName(nilIfEmpty(rec.AnnouncementType.Name)).
		SetBoundingBox(map[string]int{
			"x_min": rec.BoundingBox.XMin,
			"y_min": rec.BoundingBox.YMin,
			"x_max": rec.BoundingBox.XMax,
			"y_max": rec.BoundingBox.YMax,
		}).
		SetNillableSourceFile(nilIfEmpty(req.SourceFile)).
		SetNillableIssueNumber(req.IssueNumber)

	if req.SourcePage > 0 {
		create = create.SetSourcePage(req.SourcePage)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save announcement: %v: %w", err, common.ErrInsertFailure)
	}
	return nil
}

func (r *announcementRepository) InsertBatch(ctx context.Context, reqs []InsertRequest) int {
	stored := 0
	for _, req := range reqs {
		if err := r.Insert(ctx, req); err != nil {
			r.logger.Error("announcement insert failed",
				"title", req.Record.Title,
				"source_file", req.SourceFile,
				"source_page", req.SourcePage,
				"error", err,
			)
			continue
		}
		stored++
	}
	return stored
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

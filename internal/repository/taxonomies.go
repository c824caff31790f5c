package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dzadsearch/ads-ingest/constants"
	"github.com/dzadsearch/ads-ingest/gen/ent"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
	"github.com/dzadsearch/ads-ingest/internal/taxonomy"
)

// TaxonomyRepository seeds and loads the three fixed reference lists.
type TaxonomyRepository interface {
	// Seed inserts the canonical reference rows if the tables are empty.
	// Ids are positional: row i gets id i+1.
	Seed(ctx context.Context) error
	LoadWilayas(ctx context.Context) (*taxonomy.Taxonomy, error)
	LoadBusinessLines(ctx context.Context) (*taxonomy.Taxonomy, error)
	LoadAnnouncementTypes(ctx context.Context) (*taxonomy.Taxonomy, error)
}

type taxonomyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTaxonomyRepository(client *ent.Client, logger *slog.Logger) TaxonomyRepository {
	return &taxonomyRepository{
		client: client,
		logger: logger,
	}
}

func (r *taxonomyRepository) Seed(ctx context.Context) error {
	if err := r.seedWilayas(ctx); err != nil {
		return fmt.Errorf("seed wilayas: %w", err)
	}
	if err := r.seedBusinessLines(ctx); err != nil {
		return fmt.Errorf("seed business lines: %w", err)
	}
	if err := r.seedAnnouncementTypes(ctx); err != nil {
		return fmt.Errorf("seed announcement types: %w", err)
	}
	return nil
}

func (r *taxonomyRepository) seedWilayas(ctx context.Context) error {
	n, err := r.client.Wilaya.Query().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		r.logger.Debug("wilayas already seeded", "count", n)
		return nil
	}
	bulk := make([]*ent.WilayaCreate, len(constants.Wilayas))
	for i, name := range constants.Wilayas {
		bulk[i] = r.client.Wilaya.Create().SetID(i + 1).SetName(name)
	}
	if _, err := r.client.Wilaya.CreateBulk(bulk...).Save(ctx); err != nil {
		return err
	}
	r.logger.Info("seeded wilayas", "count", len(constants.Wilayas))
	return nil
}

func (r *taxonomyRepository) seedBusinessLines(ctx context.Context) error {
	n, err := r.client.BusinessLine.Query().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		r.logger.Debug("business lines already seeded", "count", n)
		return nil
	}
	bulk := make([]*ent.BusinessLineCreate, len(constants.BusinessLines))
	for i, name := range constants.BusinessLines {
		bulk[i] = r.client.BusinessLine.Create().SetID(i + 1).SetName(name)
	}
	if _, err := r.client.BusinessLine.CreateBulk(bulk...).Save(ctx); err != nil {
		return err
	}
	r.logger.Info("seeded business lines", "count", len(constants.BusinessLines))
	return nil
}

func (r *taxonomyRepository) seedAnnouncementTypes(ctx context.Context) error {
	n, err := r.client.AnnouncementType.Query().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		r.logger.Debug("announcement types already seeded", "count", n)
		return nil
	}
	bulk := make([]*ent.AnnouncementTypeCreate, len(constants.AnnouncementTypes))
	for i, name := range constants.AnnouncementTypes {
		bulk[i] = r.client.AnnouncementType.Create().SetID(i + 1).SetName(name)
	}
	if _, err := r.client.AnnouncementType.CreateBulk(bulk...).Save(ctx); err != nil {
		return err
	}
	r.logger.Info("seeded announcement types", "count", len(constants.AnnouncementTypes))
	return nil
}

func (r *taxonomyRepository) LoadWilayas(ctx context.Context) (*taxonomy.Taxonomy, error) {
	rows, err := r.client.Wilaya.Query().Order(wilaya.ByID()).All(ctx)
	if err != nil {
		return nil, err
	}
	t := taxonomy.New(taxonomy.KindWilaya)
	for _, row := range rows {
		t.Add(row.ID, row.Name)
	}
	return t, nil
}

func (r *taxonomyRepository) LoadBusinessLines(ctx context.Context) (*taxonomy.Taxonomy, error) {
	rows, err := r.client.BusinessLine.Query().Order(businessline.ByID()).All(ctx)
	if err != nil {
		return nil, err
	}
	t := taxonomy.New(taxonomy.KindBusinessLine)
	for _, row := range rows {
		t.Add(row.ID, row.Name)
	}
	return t, nil
}

func (r *taxonomyRepository) LoadAnnouncementTypes(ctx context.Context) (*taxonomy.Taxonomy, error) {
	rows, err := r.client.AnnouncementType.Query().Order(announcementtype.ByID()).All(ctx)
	if err != nil {
		return nil, err
	}
	t := taxonomy.New(taxonomy.KindAnnouncementType)
	for _, row := range rows {
		t.Add(row.ID, row.Name)
	}
	return t, nil
}

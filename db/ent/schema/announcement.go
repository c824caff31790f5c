package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Announcement maps to the public.announcements table: one parsed
// announcement from one detected region of one ad page. Taxonomy FKs are
// nullable because unmatched labels are stored by name only; the *_name
// columns keep the raw label either way.
type Announcement struct {
	ent.Schema
}

func (Announcement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "announcements"},
	}
}

func (Announcement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("number").Optional().Nillable(),
		field.String("owner").Optional().Nillable(),
		field.String("terms").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("contact").Optional().Nillable(),
		field.Int64("due_amount").Optional().Nillable(),
		// Dates stay text: the model reads them off scanned pages and they
		// are not always well formed.
		field.String("publish_date").Optional().Nillable(),
		field.String("due_date").Optional().Nillable(),
		field.Int("status").Default(1),

		field.Int("wilaya_id").Optional().Nillable(),
		field.Int("business_line_id").Optional().Nillable(),
		field.Int("announcement_type_id").Optional().Nillable(),
		field.String("wilaya_name").Optional().Nillable(),
		field.String("business_line_name").Optional().Nillable(),
		field.String("announcement_type_name").Optional().Nillable(),

		field.JSON("bounding_box", map[string]int{}).Optional(),

		field.String("source_file").Optional().Nillable(),
		field.Int("source_page").Optional().Nillable(),
		field.Int("issue_number").Optional().Nillable(),

		field.Time("created_at").Default(time.Now),
	}
}

func (Announcement) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY announcements -> ONE wilaya (FK: announcements.wilaya_id)
		edge.From("wilaya", Wilaya.Type).
			Ref("announcements").
			Field("wilaya_id").
			Unique(),
		edge.From("business_line", BusinessLine.Type).
			Ref("announcements").
			Field("business_line_id").
			Unique(),
		edge.From("announcement_type", AnnouncementType.Type).
			Ref("announcements").
			Field("announcement_type_id").
			Unique(),
	}
}

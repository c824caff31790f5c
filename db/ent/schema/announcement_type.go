package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AnnouncementType maps to the public.announcement_types reference table.
type AnnouncementType struct {
	ent.Schema
}

func (AnnouncementType) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "announcement_types"},
	}
}

func (AnnouncementType) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (AnnouncementType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("announcements", Announcement.Type),
	}
}

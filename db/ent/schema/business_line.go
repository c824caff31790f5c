package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// BusinessLine maps to the public.business_lines reference table.
type BusinessLine struct {
	ent.Schema
}

func (BusinessLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "business_lines"},
	}
}

func (BusinessLine) Fields() []ent.Field {
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

func (BusinessLine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("announcements", Announcement.Type),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Wilaya maps to the public.wilayas reference table. Rows are seeded once
// from the fixed list of 58 Algerian wilayas; ids are stable.
type Wilaya struct {
	ent.Schema
}

func (Wilaya) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "wilayas"},
	}
}

func (Wilaya) Fields() []ent.Field {
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

func (Wilaya) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("announcements", Announcement.Type),
	}
}

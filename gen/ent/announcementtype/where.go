// Code generated by ent, DO NOT EDIT.

package announcementtype

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldEQ(FieldName, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.FieldContainsFold(FieldName, v))
}

// HasAnnouncements applies the HasEdge predicate on the "announcements" edge.
func HasAnnouncements() predicate.AnnouncementType {
	return predicate.AnnouncementType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnnouncementsTable, AnnouncementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnnouncementsWith applies the HasEdge predicate on the "announcements" edge with a given conditions (other predicates).
func HasAnnouncementsWith(preds ...predicate.Announcement) predicate.AnnouncementType {
	return predicate.AnnouncementType(func(s *sql.Selector) {
		step := newAnnouncementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnnouncementType) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnnouncementType) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnnouncementType) predicate.AnnouncementType {
	return predicate.AnnouncementType(sql.NotPredicates(p))
}

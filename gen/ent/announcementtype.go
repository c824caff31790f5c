// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
)

// AnnouncementType is the model entity for the AnnouncementType schema.
type AnnouncementType struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnnouncementTypeQuery when eager-loading is set.
	Edges        AnnouncementTypeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnnouncementTypeEdges holds the relations/edges for other nodes in the graph.
type AnnouncementTypeEdges struct {
	// Announcements holds the value of the announcements edge.
	Announcements []*Announcement `json:"announcements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnnouncementsOrErr returns the Announcements value or an error if the edge
// was not loaded in eager-loading.
func (e AnnouncementTypeEdges) AnnouncementsOrErr() ([]*Announcement, error) {
	if e.loadedTypes[0] {
		return e.Announcements, nil
	}
	return nil, &NotLoadedError{edge: "announcements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnnouncementType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case announcementtype.FieldID:
			values[i] = new(sql.NullInt64)
		case announcementtype.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnnouncementType fields.
func (_m *AnnouncementType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case announcementtype.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case announcementtype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnnouncementType.
// This includes values selected through modifiers, order, etc.
func (_m *AnnouncementType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnnouncements queries the "announcements" edge of the AnnouncementType entity.
func (_m *AnnouncementType) QueryAnnouncements() *AnnouncementQuery {
	return NewAnnouncementTypeClient(_m.config).QueryAnnouncements(_m)
}

// Update returns a builder for updating this AnnouncementType.
// Note that you need to call AnnouncementType.Unwrap() before calling this method if this AnnouncementType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnnouncementType) Update() *AnnouncementTypeUpdateOne {
	return NewAnnouncementTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnnouncementType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnnouncementType) Unwrap() *AnnouncementType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnnouncementType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnnouncementType) String() string {
	var builder strings.Builder
	builder.WriteString("AnnouncementType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// AnnouncementTypes is a parsable slice of AnnouncementType.
type AnnouncementTypes []*AnnouncementType

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
)

// Wilaya is the model entity for the Wilaya schema.
type Wilaya struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WilayaQuery when eager-loading is set.
	Edges        WilayaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WilayaEdges holds the relations/edges for other nodes in the graph.
type WilayaEdges struct {
	// Announcements holds the value of the announcements edge.
	Announcements []*Announcement `json:"announcements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnnouncementsOrErr returns the Announcements value or an error if the edge
// was not loaded in eager-loading.
func (e WilayaEdges) AnnouncementsOrErr() ([]*Announcement, error) {
	if e.loadedTypes[0] {
		return e.Announcements, nil
	}
	return nil, &NotLoadedError{edge: "announcements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Wilaya) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wilaya.FieldID:
			values[i] = new(sql.NullInt64)
		case wilaya.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Wilaya fields.
func (_m *Wilaya) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wilaya.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case wilaya.FieldName:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Wilaya.
// This includes values selected through modifiers, order, etc.
func (_m *Wilaya) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnnouncements queries the "announcements" edge of the Wilaya entity.
func (_m *Wilaya) QueryAnnouncements() *AnnouncementQuery {
	return NewWilayaClient(_m.config).QueryAnnouncements(_m)
}

// Update returns a builder for updating this Wilaya.
// Note that you need to call Wilaya.Unwrap() before calling this method if this Wilaya
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Wilaya) Update() *WilayaUpdateOne {
	return NewWilayaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Wilaya entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Wilaya) Unwrap() *Wilaya {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Wilaya is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Wilaya) String() string {
	var builder strings.Builder
	builder.WriteString("Wilaya(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// Wilayas is a parsable slice of Wilaya.
type Wilayas []*Wilaya

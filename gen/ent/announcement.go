// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
	"github.com/google/uuid"
)

// Announcement is the model entity for the Announcement schema.
type Announcement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Number holds the value of the "number" field.
	Number *string `json:"number,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner *string `json:"owner,omitempty"`
	// Terms holds the value of the "terms" field.
	Terms *string `json:"terms,omitempty"`
	// Contact holds the value of the "contact" field.
	Contact *string `json:"contact,omitempty"`
	// DueAmount holds the value of the "due_amount" field.
	DueAmount *int64 `json:"due_amount,omitempty"`
	// PublishDate holds the value of the "publish_date" field.
	PublishDate *string `json:"publish_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *string `json:"due_date,omitempty"`
	// Status holds the value of the "status" field.
	Status int `json:"status,omitempty"`
	// WilayaID holds the value of the "wilaya_id" field.
	WilayaID *int `json:"wilaya_id,omitempty"`
	// BusinessLineID holds the value of the "business_line_id" field.
	BusinessLineID *int `json:"business_line_id,omitempty"`
	// AnnouncementTypeID holds the value of the "announcement_type_id" field.
	AnnouncementTypeID *int `json:"announcement_type_id,omitempty"`
	// WilayaName holds the value of the "wilaya_name" field.
	WilayaName *string `json:"wilaya_name,omitempty"`
	// BusinessLineName holds the value of the "business_line_name" field.
	BusinessLineName *string `json:"business_line_name,omitempty"`
	// AnnouncementTypeName holds the value of the "announcement_type_name" field.
	AnnouncementTypeName *string `json:"announcement_type_name,omitempty"`
	// BoundingBox holds the value of the "bounding_box" field.
	BoundingBox map[string]int `json:"bounding_box,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile *string `json:"source_file,omitempty"`
	// SourcePage holds the value of the "source_page" field.
	SourcePage *int `json:"source_page,omitempty"`
	// IssueNumber holds the value of the "issue_number" field.
	IssueNumber *int `json:"issue_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnnouncementQuery when eager-loading is set.
	Edges        AnnouncementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnnouncementEdges holds the relations/edges for other nodes in the graph.
type AnnouncementEdges struct {
	// Wilaya holds the value of the wilaya edge.
	Wilaya *Wilaya `json:"wilaya,omitempty"`
	// BusinessLine holds the value of the business_line edge.
	BusinessLine *BusinessLine `json:"business_line,omitempty"`
	// AnnouncementType holds the value of the announcement_type edge.
	AnnouncementType *AnnouncementType `json:"announcement_type,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// WilayaOrErr returns the Wilaya value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnnouncementEdges) WilayaOrErr() (*Wilaya, error) {
	if e.Wilaya != nil {
		return e.Wilaya, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: wilaya.Label}
	}
	return nil, &NotLoadedError{edge: "wilaya"}
}

// BusinessLineOrErr returns the BusinessLine value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnnouncementEdges) BusinessLineOrErr() (*BusinessLine, error) {
	if e.BusinessLine != nil {
		return e.BusinessLine, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: businessline.Label}
	}
	return nil, &NotLoadedError{edge: "business_line"}
}

// AnnouncementTypeOrErr returns the AnnouncementType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnnouncementEdges) AnnouncementTypeOrErr() (*AnnouncementType, error) {
	if e.AnnouncementType != nil {
		return e.AnnouncementType, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: announcementtype.Label}
	}
	return nil, &NotLoadedError{edge: "announcement_type"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Announcement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case announcement.FieldBoundingBox:
			values[i] = new([]byte)
		case announcement.FieldDueAmount, announcement.FieldStatus, announcement.FieldWilayaID, announcement.FieldBusinessLineID, announcement.FieldAnnouncementTypeID, announcement.FieldSourcePage, announcement.FieldIssueNumber:
			values[i] = new(sql.NullInt64)
		case announcement.FieldTitle, announcement.FieldDescription, announcement.FieldNumber, announcement.FieldOwner, announcement.FieldTerms, announcement.FieldContact, announcement.FieldPublishDate, announcement.FieldDueDate, announcement.FieldWilayaName, announcement.FieldBusinessLineName, announcement.FieldAnnouncementTypeName, announcement.FieldSourceFile:
			values[i] = new(sql.NullString)
		case announcement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case announcement.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Announcement fields.
func (_m *Announcement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case announcement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case announcement.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case announcement.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case announcement.FieldNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = new(string)
				*_m.Number = value.String
			}
		case announcement.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = new(string)
				*_m.Owner = value.String
			}
		case announcement.FieldTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field terms", values[i])
			} else if value.Valid {
				_m.Terms = new(string)
				*_m.Terms = value.String
			}
		case announcement.FieldContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact", values[i])
			} else if value.Valid {
				_m.Contact = new(string)
				*_m.Contact = value.String
			}
		case announcement.FieldDueAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field due_amount", values[i])
			} else if value.Valid {
				_m.DueAmount = new(int64)
				*_m.DueAmount = value.Int64
			}
		case announcement.FieldPublishDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publish_date", values[i])
			} else if value.Valid {
				_m.PublishDate = new(string)
				*_m.PublishDate = value.String
			}
		case announcement.FieldDueDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(string)
				*_m.DueDate = value.String
			}
		case announcement.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case announcement.FieldWilayaID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wilaya_id", values[i])
			} else if value.Valid {
				_m.WilayaID = new(int)
				*_m.WilayaID = int(value.Int64)
			}
		case announcement.FieldBusinessLineID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_line_id", values[i])
			} else if value.Valid {
				_m.BusinessLineID = new(int)
				*_m.BusinessLineID = int(value.Int64)
			}
		case announcement.FieldAnnouncementTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field announcement_type_id", values[i])
			} else if value.Valid {
				_m.AnnouncementTypeID = new(int)
				*_m.AnnouncementTypeID = int(value.Int64)
			}
		case announcement.FieldWilayaName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wilaya_name", values[i])
			} else if value.Valid {
				_m.WilayaName = new(string)
				*_m.WilayaName = value.String
			}
		case announcement.FieldBusinessLineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_line_name", values[i])
			} else if value.Valid {
				_m.BusinessLineName = new(string)
				*_m.BusinessLineName = value.String
			}
		case announcement.FieldAnnouncementTypeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field announcement_type_name", values[i])
			} else if value.Valid {
				_m.AnnouncementTypeName = new(string)
				*_m.AnnouncementTypeName = value.String
			}
		case announcement.FieldBoundingBox:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bounding_box", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BoundingBox); err != nil {
					return fmt.Errorf("unmarshal field bounding_box: %w", err)
				}
			}
		case announcement.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = new(string)
				*_m.SourceFile = value.String
			}
		case announcement.FieldSourcePage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_page", values[i])
			} else if value.Valid {
				_m.SourcePage = new(int)
				*_m.SourcePage = int(value.Int64)
			}
		case announcement.FieldIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issue_number", values[i])
			} else if value.Valid {
				_m.IssueNumber = new(int)
				*_m.IssueNumber = int(value.Int64)
			}
		case announcement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Announcement.
// This includes values selected through modifiers, order, etc.
func (_m *Announcement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWilaya queries the "wilaya" edge of the Announcement entity.
func (_m *Announcement) QueryWilaya() *WilayaQuery {
	return NewAnnouncementClient(_m.config).QueryWilaya(_m)
}

// QueryBusinessLine queries the "business_line" edge of the Announcement entity.
func (_m *Announcement) QueryBusinessLine() *BusinessLineQuery {
	return NewAnnouncementClient(_m.config).QueryBusinessLine(_m)
}

// QueryAnnouncementType queries the "announcement_type" edge of the Announcement entity.
func (_m *Announcement) QueryAnnouncementType() *AnnouncementTypeQuery {
	return NewAnnouncementClient(_m.config).QueryAnnouncementType(_m)
}

// Update returns a builder for updating this Announcement.
// Note that you need to call Announcement.Unwrap() before calling this method if this Announcement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Announcement) Update() *AnnouncementUpdateOne {
	return NewAnnouncementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Announcement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Announcement) Unwrap() *Announcement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Announcement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Announcement) String() string {
	var builder strings.Builder
	builder.WriteString("Announcement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Number; v != nil {
		builder.WriteString("number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Owner; v != nil {
		builder.WriteString("owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Terms; v != nil {
		builder.WriteString("terms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Contact; v != nil {
		builder.WriteString("contact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DueAmount; v != nil {
		builder.WriteString("due_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PublishDate; v != nil {
		builder.WriteString("publish_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.WilayaID; v != nil {
		builder.WriteString("wilaya_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BusinessLineID; v != nil {
		builder.WriteString("business_line_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AnnouncementTypeID; v != nil {
		builder.WriteString("announcement_type_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WilayaName; v != nil {
		builder.WriteString("wilaya_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BusinessLineName; v != nil {
		builder.WriteString("business_line_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnnouncementTypeName; v != nil {
		builder.WriteString("announcement_type_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("bounding_box=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoundingBox))
	builder.WriteString(", ")
	if v := _m.SourceFile; v != nil {
		builder.WriteString("source_file=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourcePage; v != nil {
		builder.WriteString("source_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IssueNumber; v != nil {
		builder.WriteString("issue_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Announcements is a parsable slice of Announcement.
type Announcements []*Announcement

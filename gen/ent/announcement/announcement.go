// Code generated by ent, DO NOT EDIT.

package announcement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the announcement type in the database.
	Label = "announcement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldTerms holds the string denoting the terms field in the database.
	FieldTerms = "terms"
	// FieldContact holds the string denoting the contact field in the database.
	FieldContact = "contact"
	// FieldDueAmount holds the string denoting the due_amount field in the database.
	FieldDueAmount = "due_amount"
	// FieldPublishDate holds the string denoting the publish_date field in the database.
	FieldPublishDate = "publish_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWilayaID holds the string denoting the wilaya_id field in the database.
	FieldWilayaID = "wilaya_id"
	// FieldBusinessLineID holds the string denoting the business_line_id field in the database.
	FieldBusinessLineID = "business_line_id"
	// FieldAnnouncementTypeID holds the string denoting the announcement_type_id field in the database.
	FieldAnnouncementTypeID = "announcement_type_id"
	// FieldWilayaName holds the string denoting the wilaya_name field in the database.
	FieldWilayaName = "wilaya_name"
	// FieldBusinessLineName holds the string denoting the business_line_name field in the database.
	FieldBusinessLineName = "business_line_name"
	// FieldAnnouncementTypeName holds the string denoting the announcement_type_name field in the database.
	FieldAnnouncementTypeName = "announcement_type_name"
	// FieldBoundingBox holds the string denoting the bounding_box field in the database.
	FieldBoundingBox = "bounding_box"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldSourcePage holds the string denoting the source_page field in the database.
	FieldSourcePage = "source_page"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWilaya holds the string denoting the wilaya edge name in mutations.
	EdgeWilaya = "wilaya"
	// EdgeBusinessLine holds the string denoting the business_line edge name in mutations.
	EdgeBusinessLine = "business_line"
	// EdgeAnnouncementType holds the string denoting the announcement_type edge name in mutations.
	EdgeAnnouncementType = "announcement_type"
	// Table holds the table name of the announcement in the database.
	Table = "announcements"
	// WilayaTable is the table that holds the wilaya relation/edge.
	WilayaTable = "announcements"
	// WilayaInverseTable is the table name for the Wilaya entity.
	// It exists in this package in order to avoid circular dependency with the "wilaya" package.
	WilayaInverseTable = "wilayas"
	// WilayaColumn is the table column denoting the wilaya relation/edge.
	WilayaColumn = "wilaya_id"
	// BusinessLineTable is the table that holds the business_line relation/edge.
	BusinessLineTable = "announcements"
	// BusinessLineInverseTable is the table name for the BusinessLine entity.
	// It exists in this package in order to avoid circular dependency with the "businessline" package.
	BusinessLineInverseTable = "business_lines"
	// BusinessLineColumn is the table column denoting the business_line relation/edge.
	BusinessLineColumn = "business_line_id"
	// AnnouncementTypeTable is the table that holds the announcement_type relation/edge.
	AnnouncementTypeTable = "announcements"
	// AnnouncementTypeInverseTable is the table name for the AnnouncementType entity.
	// It exists in this package in order to avoid circular dependency with the "announcementtype" package.
	AnnouncementTypeInverseTable = "announcement_types"
	// AnnouncementTypeColumn is the table column denoting the announcement_type relation/edge.
	AnnouncementTypeColumn = "announcement_type_id"
)

// Columns holds all SQL columns for announcement fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldNumber,
	FieldOwner,
	FieldTerms,
	FieldContact,
	FieldDueAmount,
	FieldPublishDate,
	FieldDueDate,
	FieldStatus,
	FieldWilayaID,
	FieldBusinessLineID,
	FieldAnnouncementTypeID,
	FieldWilayaName,
	FieldBusinessLineName,
	FieldAnnouncementTypeName,
	FieldBoundingBox,
	FieldSourceFile,
	FieldSourcePage,
	FieldIssueNumber,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Announcement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByTerms orders the results by the terms field.
func ByTerms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerms, opts...).ToFunc()
}

// ByContact orders the results by the contact field.
func ByContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContact, opts...).ToFunc()
}

// ByDueAmount orders the results by the due_amount field.
func ByDueAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAmount, opts...).ToFunc()
}

// ByPublishDate orders the results by the publish_date field.
func ByPublishDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWilayaID orders the results by the wilaya_id field.
func ByWilayaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWilayaID, opts...).ToFunc()
}

// ByBusinessLineID orders the results by the business_line_id field.
func ByBusinessLineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessLineID, opts...).ToFunc()
}

// ByAnnouncementTypeID orders the results by the announcement_type_id field.
func ByAnnouncementTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnouncementTypeID, opts...).ToFunc()
}

// ByWilayaName orders the results by the wilaya_name field.
func ByWilayaName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWilayaName, opts...).ToFunc()
}

// ByBusinessLineName orders the results by the business_line_name field.
func ByBusinessLineName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessLineName, opts...).ToFunc()
}

// ByAnnouncementTypeName orders the results by the announcement_type_name field.
func ByAnnouncementTypeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnouncementTypeName, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// BySourcePage orders the results by the source_page field.
func BySourcePage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePage, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWilayaField orders the results by wilaya field.
func ByWilayaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWilayaStep(), sql.OrderByField(field, opts...))
	}
}

// ByBusinessLineField orders the results by business_line field.
func ByBusinessLineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessLineStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnnouncementTypeField orders the results by announcement_type field.
func ByAnnouncementTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnnouncementTypeStep(), sql.OrderByField(field, opts...))
	}
}
func newWilayaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WilayaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WilayaTable, WilayaColumn),
	)
}
func newBusinessLineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessLineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BusinessLineTable, BusinessLineColumn),
	)
}
func newAnnouncementTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnnouncementTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnnouncementTypeTable, AnnouncementTypeColumn),
	)
}

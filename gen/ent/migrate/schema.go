// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnnouncementsColumns holds the columns for the "announcements" table.
	AnnouncementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "number", Type: field.TypeString, Nullable: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "terms", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contact", Type: field.TypeString, Nullable: true},
		{Name: "due_amount", Type: field.TypeInt64, Nullable: true},
		{Name: "publish_date", Type: field.TypeString, Nullable: true},
		{Name: "due_date", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "wilaya_name", Type: field.TypeString, Nullable: true},
		{Name: "business_line_name", Type: field.TypeString, Nullable: true},
		{Name: "announcement_type_name", Type: field.TypeString, Nullable: true},
		{Name: "bounding_box", Type: field.TypeJSON, Nullable: true},
		{Name: "source_file", Type: field.TypeString, Nullable: true},
		{Name: "source_page", Type: field.TypeInt, Nullable: true},
		{Name: "issue_number", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "announcement_type_id", Type: field.TypeInt, Nullable: true},
		{Name: "business_line_id", Type: field.TypeInt, Nullable: true},
		{Name: "wilaya_id", Type: field.TypeInt, Nullable: true},
	}
	// AnnouncementsTable holds the schema information for the "announcements" table.
	AnnouncementsTable = &schema.Table{
		Name:       "announcements",
		Columns:    AnnouncementsColumns,
		PrimaryKey: []*schema.Column{AnnouncementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "announcements_announcement_types_announcements",
				Columns:    []*schema.Column{AnnouncementsColumns[19]},
				RefColumns: []*schema.Column{AnnouncementTypesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "announcements_business_lines_announcements",
				Columns:    []*schema.Column{AnnouncementsColumns[20]},
				RefColumns: []*schema.Column{BusinessLinesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "announcements_wilayas_announcements",
				Columns:    []*schema.Column{AnnouncementsColumns[21]},
				RefColumns: []*schema.Column{WilayasColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// AnnouncementTypesColumns holds the columns for the "announcement_types" table.
	AnnouncementTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// AnnouncementTypesTable holds the schema information for the "announcement_types" table.
	AnnouncementTypesTable = &schema.Table{
		Name:       "announcement_types",
		Columns:    AnnouncementTypesColumns,
		PrimaryKey: []*schema.Column{AnnouncementTypesColumns[0]},
	}
	// BusinessLinesColumns holds the columns for the "business_lines" table.
	BusinessLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// BusinessLinesTable holds the schema information for the "business_lines" table.
	BusinessLinesTable = &schema.Table{
		Name:       "business_lines",
		Columns:    BusinessLinesColumns,
		PrimaryKey: []*schema.Column{BusinessLinesColumns[0]},
	}
	// WilayasColumns holds the columns for the "wilayas" table.
	WilayasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// WilayasTable holds the schema information for the "wilayas" table.
	WilayasTable = &schema.Table{
		Name:       "wilayas",
		Columns:    WilayasColumns,
		PrimaryKey: []*schema.Column{WilayasColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnnouncementsTable,
		AnnouncementTypesTable,
		BusinessLinesTable,
		WilayasTable,
	}
)

func init() {
	AnnouncementsTable.ForeignKeys[0].RefTable = AnnouncementTypesTable
	AnnouncementsTable.ForeignKeys[1].RefTable = BusinessLinesTable
	AnnouncementsTable.ForeignKeys[2].RefTable = WilayasTable
	AnnouncementsTable.Annotation = &entsql.Annotation{
		Table: "announcements",
	}
	AnnouncementTypesTable.Annotation = &entsql.Annotation{
		Table: "announcement_types",
	}
	BusinessLinesTable.Annotation = &entsql.Annotation{
		Table: "business_lines",
	}
	WilayasTable.Annotation = &entsql.Annotation{
		Table: "wilayas",
	}
}

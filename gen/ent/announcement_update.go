// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
)

// AnnouncementUpdate is the builder for updating Announcement entities.
type AnnouncementUpdate struct {
	config
	hooks    []Hook
	mutation *AnnouncementMutation
}

// Where appends a list predicates to the AnnouncementUpdate builder.
func (_u *AnnouncementUpdate) Where(ps ...predicate.Announcement) *AnnouncementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AnnouncementUpdate) SetTitle(v string) *AnnouncementUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableTitle(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AnnouncementUpdate) SetDescription(v string) *AnnouncementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableDescription(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AnnouncementUpdate) ClearDescription() *AnnouncementUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetNumber sets the "number" field.
func (_u *AnnouncementUpdate) SetNumber(v string) *AnnouncementUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableNumber(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *AnnouncementUpdate) ClearNumber() *AnnouncementUpdate {
	_u.mutation.ClearNumber()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *AnnouncementUpdate) SetOwner(v string) *AnnouncementUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableOwner(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *AnnouncementUpdate) ClearOwner() *AnnouncementUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetTerms sets the "terms" field.
func (_u *AnnouncementUpdate) SetTerms(v string) *AnnouncementUpdate {
	_u.mutation.SetTerms(v)
	return _u
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableTerms(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetTerms(*v)
	}
	return _u
}

// ClearTerms clears the value of the "terms" field.
func (_u *AnnouncementUpdate) ClearTerms() *AnnouncementUpdate {
	_u.mutation.ClearTerms()
	return _u
}

// SetContact sets the "contact" field.
func (_u *AnnouncementUpdate) SetContact(v string) *AnnouncementUpdate {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableContact(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *AnnouncementUpdate) ClearContact() *AnnouncementUpdate {
	_u.mutation.ClearContact()
	return _u
}

// SetDueAmount sets the "due_amount" field.
func (_u *AnnouncementUpdate) SetDueAmount(v int64) *AnnouncementUpdate {
	_u.mutation.ResetDueAmount()
	_u.mutation.SetDueAmount(v)
	return _u
}

// SetNillableDueAmount sets the "due_amount" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableDueAmount(v *int64) *AnnouncementUpdate {
	if v != nil {
		_u.SetDueAmount(*v)
	}
	return _u
}

// AddDueAmount adds value to the "due_amount" field.
func (_u *AnnouncementUpdate) AddDueAmount(v int64) *AnnouncementUpdate {
	_u.mutation.AddDueAmount(v)
	return _u
}

// ClearDueAmount clears the value of the "due_amount" field.
func (_u *AnnouncementUpdate) ClearDueAmount() *AnnouncementUpdate {
	_u.mutation.ClearDueAmount()
	return _u
}

// SetPublishDate sets the "publish_date" field.
func (_u *AnnouncementUpdate) SetPublishDate(v string) *AnnouncementUpdate {
	_u.mutation.SetPublishDate(v)
	return _u
}

// SetNillablePublishDate sets the "publish_date" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillablePublishDate(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetPublishDate(*v)
	}
	return _u
}

// ClearPublishDate clears the value of the "publish_date" field.
func (_u *AnnouncementUpdate) ClearPublishDate() *AnnouncementUpdate {
	_u.mutation.ClearPublishDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *AnnouncementUpdate) SetDueDate(v string) *AnnouncementUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableDueDate(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *AnnouncementUpdate) ClearDueDate() *AnnouncementUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementUpdate) SetStatus(v int) *AnnouncementUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableStatus(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *AnnouncementUpdate) AddStatus(v int) *AnnouncementUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetWilayaID sets the "wilaya_id" field.
func (_u *AnnouncementUpdate) SetWilayaID(v int) *AnnouncementUpdate {
	_u.mutation.SetWilayaID(v)
	return _u
}

// SetNillableWilayaID sets the "wilaya_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableWilayaID(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetWilayaID(*v)
	}
	return _u
}

// ClearWilayaID clears the value of the "wilaya_id" field.
func (_u *AnnouncementUpdate) ClearWilayaID() *AnnouncementUpdate {
	_u.mutation.ClearWilayaID()
	return _u
}

// SetBusinessLineID sets the "business_line_id" field.
func (_u *AnnouncementUpdate) SetBusinessLineID(v int) *AnnouncementUpdate {
	_u.mutation.SetBusinessLineID(v)
	return _u
}

// SetNillableBusinessLineID sets the "business_line_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableBusinessLineID(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetBusinessLineID(*v)
	}
	return _u
}

// ClearBusinessLineID clears the value of the "business_line_id" field.
func (_u *AnnouncementUpdate) ClearBusinessLineID() *AnnouncementUpdate {
	_u.mutation.ClearBusinessLineID()
	return _u
}

// SetAnnouncementTypeID sets the "announcement_type_id" field.
func (_u *AnnouncementUpdate) SetAnnouncementTypeID(v int) *AnnouncementUpdate {
	_u.mutation.SetAnnouncementTypeID(v)
	return _u
}

// SetNillableAnnouncementTypeID sets the "announcement_type_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableAnnouncementTypeID(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetAnnouncementTypeID(*v)
	}
	return _u
}

// ClearAnnouncementTypeID clears the value of the "announcement_type_id" field.
func (_u *AnnouncementUpdate) ClearAnnouncementTypeID() *AnnouncementUpdate {
	_u.mutation.ClearAnnouncementTypeID()
	return _u
}

// SetWilayaName sets the "wilaya_name" field.
func (_u *AnnouncementUpdate) SetWilayaName(v string) *AnnouncementUpdate {
	_u.mutation.SetWilayaName(v)
	return _u
}

// SetNillableWilayaName sets the "wilaya_name" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableWilayaName(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetWilayaName(*v)
	}
	return _u
}

// ClearWilayaName clears the value of the "wilaya_name" field.
func (_u *AnnouncementUpdate) ClearWilayaName() *AnnouncementUpdate {
	_u.mutation.ClearWilayaName()
	return _u
}

// SetBusinessLineName sets the "business_line_name" field.
func (_u *AnnouncementUpdate) SetBusinessLineName(v string) *AnnouncementUpdate {
	_u.mutation.SetBusinessLineName(v)
	return _u
}

// SetNillableBusinessLineName sets the "business_line_name" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableBusinessLineName(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetBusinessLineName(*v)
	}
	return _u
}

// ClearBusinessLineName clears the value of the "business_line_name" field.
func (_u *AnnouncementUpdate) ClearBusinessLineName() *AnnouncementUpdate {
	_u.mutation.ClearBusinessLineName()
	return _u
}

// SetAnnouncementTypeName sets the "announcement_type_name" field.
func (_u *AnnouncementUpdate) SetAnnouncementTypeName(v string) *AnnouncementUpdate {
	_u.mutation.SetAnnouncementTypeName(v)
	return _u
}

// SetNillableAnnouncementTypeName sets the "announcement_type_name" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableAnnouncementTypeName(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetAnnouncementTypeName(*v)
	}
	return _u
}

// ClearAnnouncementTypeName clears the value of the "announcement_type_name" field.
func (_u *AnnouncementUpdate) ClearAnnouncementTypeName() *AnnouncementUpdate {
	_u.mutation.ClearAnnouncementTypeName()
	return _u
}

// SetBoundingBox sets the "bounding_box" field.
func (_u *AnnouncementUpdate) SetBoundingBox(v map[string]int) *AnnouncementUpdate {
	_u.mutation.SetBoundingBox(v)
	return _u
}

// ClearBoundingBox clears the value of the "bounding_box" field.
func (_u *AnnouncementUpdate) ClearBoundingBox() *AnnouncementUpdate {
	_u.mutation.ClearBoundingBox()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *AnnouncementUpdate) SetSourceFile(v string) *AnnouncementUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableSourceFile(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *AnnouncementUpdate) ClearSourceFile() *AnnouncementUpdate {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetSourcePage sets the "source_page" field.
func (_u *AnnouncementUpdate) SetSourcePage(v int) *AnnouncementUpdate {
	_u.mutation.ResetSourcePage()
	_u.mutation.SetSourcePage(v)
	return _u
}

// SetNillableSourcePage sets the "source_page" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableSourcePage(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetSourcePage(*v)
	}
	return _u
}

// AddSourcePage adds value to the "source_page" field.
func (_u *AnnouncementUpdate) AddSourcePage(v int) *AnnouncementUpdate {
	_u.mutation.AddSourcePage(v)
	return _u
}

// ClearSourcePage clears the value of the "source_page" field.
func (_u *AnnouncementUpdate) ClearSourcePage() *AnnouncementUpdate {
	_u.mutation.ClearSourcePage()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *AnnouncementUpdate) SetIssueNumber(v int) *AnnouncementUpdate {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableIssueNumber(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *AnnouncementUpdate) AddIssueNumber(v int) *AnnouncementUpdate {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *AnnouncementUpdate) ClearIssueNumber() *AnnouncementUpdate {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnnouncementUpdate) SetCreatedAt(v time.Time) *AnnouncementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableCreatedAt(v *time.Time) *AnnouncementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetWilaya sets the "wilaya" edge to the Wilaya entity.
func (_u *AnnouncementUpdate) SetWilaya(v *Wilaya) *AnnouncementUpdate {
	return _u.SetWilayaID(v.ID)
}

// SetBusinessLine sets the "business_line" edge to the BusinessLine entity.
func (_u *AnnouncementUpdate) SetBusinessLine(v *BusinessLine) *AnnouncementUpdate {
	return _u.SetBusinessLineID(v.ID)
}

// SetAnnouncementType sets the "announcement_type" edge to the AnnouncementType entity.
func (_u *AnnouncementUpdate) SetAnnouncementType(v *AnnouncementType) *AnnouncementUpdate {
	return _u.SetAnnouncementTypeID(v.ID)
}

// Mutation returns the AnnouncementMutation object of the builder.
func (_u *AnnouncementUpdate) Mutation() *AnnouncementMutation {
	return _u.mutation
}

// ClearWilaya clears the "wilaya" edge to the Wilaya entity.
func (_u *AnnouncementUpdate) ClearWilaya() *AnnouncementUpdate {
	_u.mutation.ClearWilaya()
	return _u
}

// ClearBusinessLine clears the "business_line" edge to the BusinessLine entity.
func (_u *AnnouncementUpdate) ClearBusinessLine() *AnnouncementUpdate {
	_u.mutation.ClearBusinessLine()
	return _u
}

// ClearAnnouncementType clears the "announcement_type" edge to the AnnouncementType entity.
func (_u *AnnouncementUpdate) ClearAnnouncementType() *AnnouncementUpdate {
	_u.mutation.ClearAnnouncementType()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnnouncementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnnouncementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := announcement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Announcement.title": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcement.Table, announcement.Columns, sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(announcement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(announcement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(announcement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(announcement.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(announcement.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(announcement.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(announcement.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Terms(); ok {
		_spec.SetField(announcement.FieldTerms, field.TypeString, value)
	}
	if _u.mutation.TermsCleared() {
		_spec.ClearField(announcement.FieldTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(announcement.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(announcement.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.DueAmount(); ok {
		_spec.SetField(announcement.FieldDueAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDueAmount(); ok {
		_spec.AddField(announcement.FieldDueAmount, field.TypeInt64, value)
	}
	if _u.mutation.DueAmountCleared() {
		_spec.ClearField(announcement.FieldDueAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.PublishDate(); ok {
		_spec.SetField(announcement.FieldPublishDate, field.TypeString, value)
	}
	if _u.mutation.PublishDateCleared() {
		_spec.ClearField(announcement.FieldPublishDate, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(announcement.FieldDueDate, field.TypeString, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(announcement.FieldDueDate, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcement.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(announcement.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WilayaName(); ok {
		_spec.SetField(announcement.FieldWilayaName, field.TypeString, value)
	}
	if _u.mutation.WilayaNameCleared() {
		_spec.ClearField(announcement.FieldWilayaName, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessLineName(); ok {
		_spec.SetField(announcement.FieldBusinessLineName, field.TypeString, value)
	}
	if _u.mutation.BusinessLineNameCleared() {
		_spec.ClearField(announcement.FieldBusinessLineName, field.TypeString)
	}
	if value, ok := _u.mutation.AnnouncementTypeName(); ok {
		_spec.SetField(announcement.FieldAnnouncementTypeName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementTypeNameCleared() {
		_spec.ClearField(announcement.FieldAnnouncementTypeName, field.TypeString)
	}
	if value, ok := _u.mutation.BoundingBox(); ok {
		_spec.SetField(announcement.FieldBoundingBox, field.TypeJSON, value)
	}
	if _u.mutation.BoundingBoxCleared() {
		_spec.ClearField(announcement.FieldBoundingBox, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(announcement.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(announcement.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePage(); ok {
		_spec.SetField(announcement.FieldSourcePage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourcePage(); ok {
		_spec.AddField(announcement.FieldSourcePage, field.TypeInt, value)
	}
	if _u.mutation.SourcePageCleared() {
		_spec.ClearField(announcement.FieldSourcePage, field.TypeInt)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(announcement.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(announcement.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(announcement.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(announcement.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.WilayaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.WilayaTable,
			Columns: []string{announcement.WilayaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wilaya.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WilayaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.WilayaTable,
			Columns: []string{announcement.WilayaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wilaya.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BusinessLineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.BusinessLineTable,
			Columns: []string{announcement.BusinessLineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessLineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.BusinessLineTable,
			Columns: []string{announcement.BusinessLineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnnouncementTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.AnnouncementTypeTable,
			Columns: []string{announcement.AnnouncementTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcementtype.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnnouncementTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.AnnouncementTypeTable,
			Columns: []string{announcement.AnnouncementTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcementtype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnnouncementUpdateOne is the builder for updating a single Announcement entity.
type AnnouncementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnnouncementMutation
}

// SetTitle sets the "title" field.
func (_u *AnnouncementUpdateOne) SetTitle(v string) *AnnouncementUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableTitle(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AnnouncementUpdateOne) SetDescription(v string) *AnnouncementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableDescription(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AnnouncementUpdateOne) ClearDescription() *AnnouncementUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetNumber sets the "number" field.
func (_u *AnnouncementUpdateOne) SetNumber(v string) *AnnouncementUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableNumber(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *AnnouncementUpdateOne) ClearNumber() *AnnouncementUpdateOne {
	_u.mutation.ClearNumber()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *AnnouncementUpdateOne) SetOwner(v string) *AnnouncementUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableOwner(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *AnnouncementUpdateOne) ClearOwner() *AnnouncementUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetTerms sets the "terms" field.
func (_u *AnnouncementUpdateOne) SetTerms(v string) *AnnouncementUpdateOne {
	_u.mutation.SetTerms(v)
	return _u
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableTerms(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetTerms(*v)
	}
	return _u
}

// ClearTerms clears the value of the "terms" field.
func (_u *AnnouncementUpdateOne) ClearTerms() *AnnouncementUpdateOne {
	_u.mutation.ClearTerms()
	return _u
}

// SetContact sets the "contact" field.
func (_u *AnnouncementUpdateOne) SetContact(v string) *AnnouncementUpdateOne {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableContact(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *AnnouncementUpdateOne) ClearContact() *AnnouncementUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// SetDueAmount sets the "due_amount" field.
func (_u *AnnouncementUpdateOne) SetDueAmount(v int64) *AnnouncementUpdateOne {
	_u.mutation.ResetDueAmount()
	_u.mutation.SetDueAmount(v)
	return _u
}

// SetNillableDueAmount sets the "due_amount" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableDueAmount(v *int64) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetDueAmount(*v)
	}
	return _u
}

// AddDueAmount adds value to the "due_amount" field.
func (_u *AnnouncementUpdateOne) AddDueAmount(v int64) *AnnouncementUpdateOne {
	_u.mutation.AddDueAmount(v)
	return _u
}

// ClearDueAmount clears the value of the "due_amount" field.
func (_u *AnnouncementUpdateOne) ClearDueAmount() *AnnouncementUpdateOne {
	_u.mutation.ClearDueAmount()
	return _u
}

// SetPublishDate sets the "publish_date" field.
func (_u *AnnouncementUpdateOne) SetPublishDate(v string) *AnnouncementUpdateOne {
	_u.mutation.SetPublishDate(v)
	return _u
}

// SetNillablePublishDate sets the "publish_date" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillablePublishDate(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetPublishDate(*v)
	}
	return _u
}

// ClearPublishDate clears the value of the "publish_date" field.
func (_u *AnnouncementUpdateOne) ClearPublishDate() *AnnouncementUpdateOne {
	_u.mutation.ClearPublishDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *AnnouncementUpdateOne) SetDueDate(v string) *AnnouncementUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableDueDate(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *AnnouncementUpdateOne) ClearDueDate() *AnnouncementUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementUpdateOne) SetStatus(v int) *AnnouncementUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableStatus(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *AnnouncementUpdateOne) AddStatus(v int) *AnnouncementUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetWilayaID sets the "wilaya_id" field.
func (_u *AnnouncementUpdateOne) SetWilayaID(v int) *AnnouncementUpdateOne {
	_u.mutation.SetWilayaID(v)
	return _u
}

// SetNillableWilayaID sets the "wilaya_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableWilayaID(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetWilayaID(*v)
	}
	return _u
}

// ClearWilayaID clears the value of the "wilaya_id" field.
func (_u *AnnouncementUpdateOne) ClearWilayaID() *AnnouncementUpdateOne {
	_u.mutation.ClearWilayaID()
	return _u
}

// SetBusinessLineID sets the "business_line_id" field.
func (_u *AnnouncementUpdateOne) SetBusinessLineID(v int) *AnnouncementUpdateOne {
	_u.mutation.SetBusinessLineID(v)
	return _u
}

// SetNillableBusinessLineID sets the "business_line_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableBusinessLineID(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetBusinessLineID(*v)
	}
	return _u
}

// ClearBusinessLineID clears the value of the "business_line_id" field.
func (_u *AnnouncementUpdateOne) ClearBusinessLineID() *AnnouncementUpdateOne {
	_u.mutation.ClearBusinessLineID()
	return _u
}

// SetAnnouncementTypeID sets the "announcement_type_id" field.
func (_u *AnnouncementUpdateOne) SetAnnouncementTypeID(v int) *AnnouncementUpdateOne {
	_u.mutation.SetAnnouncementTypeID(v)
	return _u
}

// SetNillableAnnouncementTypeID sets the "announcement_type_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableAnnouncementTypeID(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetAnnouncementTypeID(*v)
	}
	return _u
}

// ClearAnnouncementTypeID clears the value of the "announcement_type_id" field.
func (_u *AnnouncementUpdateOne) ClearAnnouncementTypeID() *AnnouncementUpdateOne {
	_u.mutation.ClearAnnouncementTypeID()
	return _u
}

// SetWilayaName sets the "wilaya_name" field.
func (_u *AnnouncementUpdateOne) SetWilayaName(v string) *AnnouncementUpdateOne {
	_u.mutation.SetWilayaName(v)
	return _u
}

// SetNillableWilayaName sets the "wilaya_name" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableWilayaName(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetWilayaName(*v)
	}
	return _u
}

// ClearWilayaName clears the value of the "wilaya_name" field.
func (_u *AnnouncementUpdateOne) ClearWilayaName() *AnnouncementUpdateOne {
	_u.mutation.ClearWilayaName()
	return _u
}

// SetBusinessLineName sets the "business_line_name" field.
func (_u *AnnouncementUpdateOne) SetBusinessLineName(v string) *AnnouncementUpdateOne {
	_u.mutation.SetBusinessLineName(v)
	return _u
}

// SetNillableBusinessLineName sets the "business_line_name" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableBusinessLineName(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetBusinessLineName(*v)
	}
	return _u
}

// ClearBusinessLineName clears the value of the "business_line_name" field.
func (_u *AnnouncementUpdateOne) ClearBusinessLineName() *AnnouncementUpdateOne {
	_u.mutation.ClearBusinessLineName()
	return _u
}

// SetAnnouncementTypeName sets the "announcement_type_name" field.
func (_u *AnnouncementUpdateOne) SetAnnouncementTypeName(v string) *AnnouncementUpdateOne {
	_u.mutation.SetAnnouncementTypeName(v)
	return _u
}

// SetNillableAnnouncementTypeName sets the "announcement_type_name" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableAnnouncementTypeName(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetAnnouncementTypeName(*v)
	}
	return _u
}

// ClearAnnouncementTypeName clears the value of the "announcement_type_name" field.
func (_u *AnnouncementUpdateOne) ClearAnnouncementTypeName() *AnnouncementUpdateOne {
	_u.mutation.ClearAnnouncementTypeName()
	return _u
}

// SetBoundingBox sets the "bounding_box" field.
func (_u *AnnouncementUpdateOne) SetBoundingBox(v map[string]int) *AnnouncementUpdateOne {
	_u.mutation.SetBoundingBox(v)
	return _u
}

// ClearBoundingBox clears the value of the "bounding_box" field.
func (_u *AnnouncementUpdateOne) ClearBoundingBox() *AnnouncementUpdateOne {
	_u.mutation.ClearBoundingBox()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *AnnouncementUpdateOne) SetSourceFile(v string) *AnnouncementUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableSourceFile(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *AnnouncementUpdateOne) ClearSourceFile() *AnnouncementUpdateOne {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetSourcePage sets the "source_page" field.
func (_u *AnnouncementUpdateOne) SetSourcePage(v int) *AnnouncementUpdateOne {
	_u.mutation.ResetSourcePage()
	_u.mutation.SetSourcePage(v)
	return _u
}

// SetNillableSourcePage sets the "source_page" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableSourcePage(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetSourcePage(*v)
	}
	return _u
}

// AddSourcePage adds value to the "source_page" field.
func (_u *AnnouncementUpdateOne) AddSourcePage(v int) *AnnouncementUpdateOne {
	_u.mutation.AddSourcePage(v)
	return _u
}

// ClearSourcePage clears the value of the "source_page" field.
func (_u *AnnouncementUpdateOne) ClearSourcePage() *AnnouncementUpdateOne {
	_u.mutation.ClearSourcePage()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *AnnouncementUpdateOne) SetIssueNumber(v int) *AnnouncementUpdateOne {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableIssueNumber(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *AnnouncementUpdateOne) AddIssueNumber(v int) *AnnouncementUpdateOne {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *AnnouncementUpdateOne) ClearIssueNumber() *AnnouncementUpdateOne {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnnouncementUpdateOne) SetCreatedAt(v time.Time) *AnnouncementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableCreatedAt(v *time.Time) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetWilaya sets the "wilaya" edge to the Wilaya entity.
func (_u *AnnouncementUpdateOne) SetWilaya(v *Wilaya) *AnnouncementUpdateOne {
	return _u.SetWilayaID(v.ID)
}

// SetBusinessLine sets the "business_line" edge to the BusinessLine entity.
func (_u *AnnouncementUpdateOne) SetBusinessLine(v *BusinessLine) *AnnouncementUpdateOne {
	return _u.SetBusinessLineID(v.ID)
}

// SetAnnouncementType sets the "announcement_type" edge to the AnnouncementType entity.
func (_u *AnnouncementUpdateOne) SetAnnouncementType(v *AnnouncementType) *AnnouncementUpdateOne {
	return _u.SetAnnouncementTypeID(v.ID)
}

// Mutation returns the AnnouncementMutation object of the builder.
func (_u *AnnouncementUpdateOne) Mutation() *AnnouncementMutation {
	return _u.mutation
}

// ClearWilaya clears the "wilaya" edge to the Wilaya entity.
func (_u *AnnouncementUpdateOne) ClearWilaya() *AnnouncementUpdateOne {
	_u.mutation.ClearWilaya()
	return _u
}

// ClearBusinessLine clears the "business_line" edge to the BusinessLine entity.
func (_u *AnnouncementUpdateOne) ClearBusinessLine() *AnnouncementUpdateOne {
	_u.mutation.ClearBusinessLine()
	return _u
}

// ClearAnnouncementType clears the "announcement_type" edge to the AnnouncementType entity.
func (_u *AnnouncementUpdateOne) ClearAnnouncementType() *AnnouncementUpdateOne {
	_u.mutation.ClearAnnouncementType()
	return _u
}

// Where appends a list predicates to the AnnouncementUpdate builder.
func (_u *AnnouncementUpdateOne) Where(ps ...predicate.Announcement) *AnnouncementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnnouncementUpdateOne) Select(field string, fields ...string) *AnnouncementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Announcement entity.
func (_u *AnnouncementUpdateOne) Save(ctx context.Context) (*Announcement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementUpdateOne) SaveX(ctx context.Context) *Announcement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnnouncementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := announcement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Announcement.title": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementUpdateOne) sqlSave(ctx context.Context) (_node *Announcement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcement.Table, announcement.Columns, sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Announcement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, announcement.FieldID)
		for _, f := range fields {
			if !announcement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != announcement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(announcement.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(announcement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(announcement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(announcement.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(announcement.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(announcement.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(announcement.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Terms(); ok {
		_spec.SetField(announcement.FieldTerms, field.TypeString, value)
	}
	if _u.mutation.TermsCleared() {
		_spec.ClearField(announcement.FieldTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(announcement.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(announcement.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.DueAmount(); ok {
		_spec.SetField(announcement.FieldDueAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDueAmount(); ok {
		_spec.AddField(announcement.FieldDueAmount, field.TypeInt64, value)
	}
	if _u.mutation.DueAmountCleared() {
		_spec.ClearField(announcement.FieldDueAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.PublishDate(); ok {
		_spec.SetField(announcement.FieldPublishDate, field.TypeString, value)
	}
	if _u.mutation.PublishDateCleared() {
		_spec.ClearField(announcement.FieldPublishDate, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(announcement.FieldDueDate, field.TypeString, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(announcement.FieldDueDate, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcement.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(announcement.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WilayaName(); ok {
		_spec.SetField(announcement.FieldWilayaName, field.TypeString, value)
	}
	if _u.mutation.WilayaNameCleared() {
		_spec.ClearField(announcement.FieldWilayaName, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessLineName(); ok {
		_spec.SetField(announcement.FieldBusinessLineName, field.TypeString, value)
	}
	if _u.mutation.BusinessLineNameCleared() {
		_spec.ClearField(announcement.FieldBusinessLineName, field.TypeString)
	}
	if value, ok := _u.mutation.AnnouncementTypeName(); ok {
		_spec.SetField(announcement.FieldAnnouncementTypeName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementTypeNameCleared() {
		_spec.ClearField(announcement.FieldAnnouncementTypeName, field.TypeString)
	}
	if value, ok := _u.mutation.BoundingBox(); ok {
		_spec.SetField(announcement.FieldBoundingBox, field.TypeJSON, value)
	}
	if _u.mutation.BoundingBoxCleared() {
		_spec.ClearField(announcement.FieldBoundingBox, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(announcement.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(announcement.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePage(); ok {
		_spec.SetField(announcement.FieldSourcePage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourcePage(); ok {
		_spec.AddField(announcement.FieldSourcePage, field.TypeInt, value)
	}
	if _u.mutation.SourcePageCleared() {
		_spec.ClearField(announcement.FieldSourcePage, field.TypeInt)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(announcement.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(announcement.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(announcement.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(announcement.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.WilayaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.WilayaTable,
			Columns: []string{announcement.WilayaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wilaya.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WilayaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.WilayaTable,
			Columns: []string{announcement.WilayaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wilaya.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BusinessLineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.BusinessLineTable,
			Columns: []string{announcement.BusinessLineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessLineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.BusinessLineTable,
			Columns: []string{announcement.BusinessLineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnnouncementTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.AnnouncementTypeTable,
			Columns: []string{announcement.AnnouncementTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcementtype.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnnouncementTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcement.AnnouncementTypeTable,
			Columns: []string{announcement.AnnouncementTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcementtype.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Announcement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

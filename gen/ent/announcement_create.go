// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
	"github.com/google/uuid"
)

// AnnouncementCreate is the builder for creating a Announcement entity.
type AnnouncementCreate struct {
	config
	mutation *AnnouncementMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *AnnouncementCreate) SetTitle(v string) *AnnouncementCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AnnouncementCreate) SetDescription(v string) *AnnouncementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableDescription(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetNumber sets the "number" field.
func (_c *AnnouncementCreate) SetNumber(v string) *AnnouncementCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableNumber(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetNumber(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *AnnouncementCreate) SetOwner(v string) *AnnouncementCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableOwner(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetTerms sets the "terms" field.
func (_c *AnnouncementCreate) SetTerms(v string) *AnnouncementCreate {
	_c.mutation.SetTerms(v)
	return _c
}

// SetNillableTerms sets the "terms" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableTerms(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetTerms(*v)
	}
	return _c
}

// SetContact sets the "contact" field.
func (_c *AnnouncementCreate) SetContact(v string) *AnnouncementCreate {
	_c.mutation.SetContact(v)
	return _c
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableContact(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetContact(*v)
	}
	return _c
}

// SetDueAmount sets the "due_amount" field.
func (_c *AnnouncementCreate) SetDueAmount(v int64) *AnnouncementCreate {
	_c.mutation.SetDueAmount(v)
	return _c
}

// SetNillableDueAmount sets the "due_amount" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableDueAmount(v *int64) *AnnouncementCreate {
	if v != nil {
		_c.SetDueAmount(*v)
	}
	return _c
}

// SetPublishDate sets the "publish_date" field.
func (_c *AnnouncementCreate) SetPublishDate(v string) *AnnouncementCreate {
	_c.mutation.SetPublishDate(v)
	return _c
}

// SetNillablePublishDate sets the "publish_date" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillablePublishDate(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetPublishDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *AnnouncementCreate) SetDueDate(v string) *AnnouncementCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableDueDate(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnnouncementCreate) SetStatus(v int) *AnnouncementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableStatus(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWilayaID sets the "wilaya_id" field.
func (_c *AnnouncementCreate) SetWilayaID(v int) *AnnouncementCreate {
	_c.mutation.SetWilayaID(v)
	return _c
}

// SetNillableWilayaID sets the "wilaya_id" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableWilayaID(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetWilayaID(*v)
	}
	return _c
}

// SetBusinessLineID sets the "business_line_id" field.
func (_c *AnnouncementCreate) SetBusinessLineID(v int) *AnnouncementCreate {
	_c.mutation.SetBusinessLineID(v)
	return _c
}

// SetNillableBusinessLineID sets the "business_line_id" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableBusinessLineID(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetBusinessLineID(*v)
	}
	return _c
}

// SetAnnouncementTypeID sets the "announcement_type_id" field.
func (_c *AnnouncementCreate) SetAnnouncementTypeID(v int) *AnnouncementCreate {
	_c.mutation.SetAnnouncementTypeID(v)
	return _c
}

// SetNillableAnnouncementTypeID sets the "announcement_type_id" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableAnnouncementTypeID(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetAnnouncementTypeID(*v)
	}
	return _c
}

// SetWilayaName sets the "wilaya_name" field.
func (_c *AnnouncementCreate) SetWilayaName(v string) *AnnouncementCreate {
	_c.mutation.SetWilayaName(v)
	return _c
}

// SetNillableWilayaName sets the "wilaya_name" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableWilayaName(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetWilayaName(*v)
	}
	return _c
}

// SetBusinessLineName sets the "business_line_name" field.
func (_c *AnnouncementCreate) SetBusinessLineName(v string) *AnnouncementCreate {
	_c.mutation.SetBusinessLineName(v)
	return _c
}

// SetNillableBusinessLineName sets the "business_line_name" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableBusinessLineName(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetBusinessLineName(*v)
	}
	return _c
}

// SetAnnouncementTypeName sets the "announcement_type_name" field.
func (_c *AnnouncementCreate) SetAnnouncementTypeName(v string) *AnnouncementCreate {
	_c.mutation.SetAnnouncementTypeName(v)
	return _c
}

// SetNillableAnnouncementTypeName sets the "announcement_type_name" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableAnnouncementTypeName(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetAnnouncementTypeName(*v)
	}
	return _c
}

// SetBoundingBox sets the "bounding_box" field.
func (_c *AnnouncementCreate) SetBoundingBox(v map[string]int) *AnnouncementCreate {
	_c.mutation.SetBoundingBox(v)
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *AnnouncementCreate) SetSourceFile(v string) *AnnouncementCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableSourceFile(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetSourcePage sets the "source_page" field.
func (_c *AnnouncementCreate) SetSourcePage(v int) *AnnouncementCreate {
	_c.mutation.SetSourcePage(v)
	return _c
}

// SetNillableSourcePage sets the "source_page" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableSourcePage(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetSourcePage(*v)
	}
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *AnnouncementCreate) SetIssueNumber(v int) *AnnouncementCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableIssueNumber(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetIssueNumber(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnnouncementCreate) SetCreatedAt(v time.Time) *AnnouncementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableCreatedAt(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnnouncementCreate) SetID(v uuid.UUID) *AnnouncementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableID(v *uuid.UUID) *AnnouncementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWilaya sets the "wilaya" edge to the Wilaya entity.
func (_c *AnnouncementCreate) SetWilaya(v *Wilaya) *AnnouncementCreate {
	return _c.SetWilayaID(v.ID)
}

// SetBusinessLine sets the "business_line" edge to the BusinessLine entity.
func (_c *AnnouncementCreate) SetBusinessLine(v *BusinessLine) *AnnouncementCreate {
	return _c.SetBusinessLineID(v.ID)
}

// SetAnnouncementType sets the "announcement_type" edge to the AnnouncementType entity.
func (_c *AnnouncementCreate) SetAnnouncementType(v *AnnouncementType) *AnnouncementCreate {
	return _c.SetAnnouncementTypeID(v.ID)
}

// Mutation returns the AnnouncementMutation object of the builder.
func (_c *AnnouncementCreate) Mutation() *AnnouncementMutation {
	return _c.mutation
}

// Save creates the Announcement in the database.
func (_c *AnnouncementCreate) Save(ctx context.Context) (*Announcement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnnouncementCreate) SaveX(ctx context.Context) *Announcement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnnouncementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := announcement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := announcement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := announcement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnnouncementCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Announcement.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := announcement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Announcement.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Announcement.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Announcement.created_at"`)}
	}
	return nil
}

func (_c *AnnouncementCreate) sqlSave(ctx context.Context) (*Announcement, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnnouncementCreate) createSpec() (*Announcement, *sqlgraph.CreateSpec) {
	var (
		_node = &Announcement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(announcement.Table, sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(announcement.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(announcement.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(announcement.FieldNumber, field.TypeString, value)
		_node.Number = &value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(announcement.FieldOwner, field.TypeString, value)
		_node.Owner = &value
	}
	if value, ok := _c.mutation.Terms(); ok {
		_spec.SetField(announcement.FieldTerms, field.TypeString, value)
		_node.Terms = &value
	}
	if value, ok := _c.mutation.Contact(); ok {
		_spec.SetField(announcement.FieldContact, field.TypeString, value)
		_node.Contact = &value
	}
	if value, ok := _c.mutation.DueAmount(); ok {
		_spec.SetField(announcement.FieldDueAmount, field.TypeInt64, value)
		_node.DueAmount = &value
	}
	if value, ok := _c.mutation.PublishDate(); ok {
		_spec.SetField(announcement.FieldPublishDate, field.TypeString, value)
		_node.PublishDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(announcement.FieldDueDate, field.TypeString, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(announcement.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WilayaName(); ok {
		_spec.SetField(announcement.FieldWilayaName, field.TypeString, value)
		_node.WilayaName = &value
	}
	if value, ok := _c.mutation.BusinessLineName(); ok {
		_spec.SetField(announcement.FieldBusinessLineName, field.TypeString, value)
		_node.BusinessLineName = &value
	}
	if value, ok := _c.mutation.AnnouncementTypeName(); ok {
		_spec.SetField(announcement.FieldAnnouncementTypeName, field.TypeString, value)
		_node.AnnouncementTypeName = &value
	}
	if value, ok := _c.mutation.BoundingBox(); ok {
		_spec.SetField(announcement.FieldBoundingBox, field.TypeJSON, value)
		_node.BoundingBox = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(announcement.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = &value
	}
	if value, ok := _c.mutation.SourcePage(); ok {
		_spec.SetField(announcement.FieldSourcePage, field.TypeInt, value)
		_node.SourcePage = &value
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(announcement.FieldIssueNumber, field.TypeInt, value)
		_node.IssueNumber = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(announcement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WilayaIDs(); len(nodes) > 0 {
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
		_node.WilayaID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BusinessLineIDs(); len(nodes) > 0 {
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
		_node.BusinessLineID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnnouncementTypeIDs(); len(nodes) > 0 {
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
		_node.AnnouncementTypeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnnouncementCreateBulk is the builder for creating many Announcement entities in bulk.
type AnnouncementCreateBulk struct {
	config
	err      error
	builders []*AnnouncementCreate
}

// Save creates the Announcement entities in the database.
func (_c *AnnouncementCreateBulk) Save(ctx context.Context) ([]*Announcement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Announcement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnnouncementMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnnouncementCreateBulk) SaveX(ctx context.Context) []*Announcement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

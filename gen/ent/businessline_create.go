// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/google/uuid"
)

// BusinessLineCreate is the builder for creating a BusinessLine entity.
type BusinessLineCreate struct {
	config
	mutation *BusinessLineMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BusinessLineCreate) SetName(v string) *BusinessLineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessLineCreate) SetID(v int) *BusinessLineCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_c *BusinessLineCreate) AddAnnouncementIDs(ids ...uuid.UUID) *BusinessLineCreate {
	_c.mutation.AddAnnouncementIDs(ids...)
	return _c
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_c *BusinessLineCreate) AddAnnouncements(v ...*Announcement) *BusinessLineCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnnouncementIDs(ids...)
}

// Mutation returns the BusinessLineMutation object of the builder.
func (_c *BusinessLineCreate) Mutation() *BusinessLineMutation {
	return _c.mutation
}

// Save creates the BusinessLine in the database.
func (_c *BusinessLineCreate) Save(ctx context.Context) (*BusinessLine, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessLineCreate) SaveX(ctx context.Context) *BusinessLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessLineCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BusinessLine.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := businessline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BusinessLine.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := businessline.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "BusinessLine.id": %w`, err)}
		}
	}
	return nil
}

func (_c *BusinessLineCreate) sqlSave(ctx context.Context) (*BusinessLine, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusinessLineCreate) createSpec() (*BusinessLine, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businessline.Table, sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(businessline.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if nodes := _c.mutation.AnnouncementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessline.AnnouncementsTable,
			Columns: []string{businessline.AnnouncementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessLineCreateBulk is the builder for creating many BusinessLine entities in bulk.
type BusinessLineCreateBulk struct {
	config
	err      error
	builders []*BusinessLineCreate
}

// Save creates the BusinessLine entities in the database.
func (_c *BusinessLineCreateBulk) Save(ctx context.Context) ([]*BusinessLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessLineMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BusinessLineCreateBulk) SaveX(ctx context.Context) []*BusinessLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

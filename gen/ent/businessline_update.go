// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// BusinessLineUpdate is the builder for updating BusinessLine entities.
type BusinessLineUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessLineMutation
}

// Where appends a list predicates to the BusinessLineUpdate builder.
func (_u *BusinessLineUpdate) Where(ps ...predicate.BusinessLine) *BusinessLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessLineUpdate) SetName(v string) *BusinessLineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessLineUpdate) SetNillableName(v *string) *BusinessLineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_u *BusinessLineUpdate) AddAnnouncementIDs(ids ...uuid.UUID) *BusinessLineUpdate {
	_u.mutation.AddAnnouncementIDs(ids...)
	return _u
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_u *BusinessLineUpdate) AddAnnouncements(v ...*Announcement) *BusinessLineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnouncementIDs(ids...)
}

// Mutation returns the BusinessLineMutation object of the builder.
func (_u *BusinessLineUpdate) Mutation() *BusinessLineMutation {
	return _u.mutation
}

// ClearAnnouncements clears all "announcements" edges to the Announcement entity.
func (_u *BusinessLineUpdate) ClearAnnouncements() *BusinessLineUpdate {
	_u.mutation.ClearAnnouncements()
	return _u
}

// RemoveAnnouncementIDs removes the "announcements" edge to Announcement entities by IDs.
func (_u *BusinessLineUpdate) RemoveAnnouncementIDs(ids ...uuid.UUID) *BusinessLineUpdate {
	_u.mutation.RemoveAnnouncementIDs(ids...)
	return _u
}

// RemoveAnnouncements removes "announcements" edges to Announcement entities.
func (_u *BusinessLineUpdate) RemoveAnnouncements(v ...*Announcement) *BusinessLineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnouncementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessLineUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := businessline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BusinessLine.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessline.Table, businessline.Columns, sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(businessline.FieldName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnnouncementsIDs(); len(nodes) > 0 && !_u.mutation.AnnouncementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnnouncementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessLineUpdateOne is the builder for updating a single BusinessLine entity.
type BusinessLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessLineMutation
}

// SetName sets the "name" field.
func (_u *BusinessLineUpdateOne) SetName(v string) *BusinessLineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessLineUpdateOne) SetNillableName(v *string) *BusinessLineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_u *BusinessLineUpdateOne) AddAnnouncementIDs(ids ...uuid.UUID) *BusinessLineUpdateOne {
	_u.mutation.AddAnnouncementIDs(ids...)
	return _u
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_u *BusinessLineUpdateOne) AddAnnouncements(v ...*Announcement) *BusinessLineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnouncementIDs(ids...)
}

// Mutation returns the BusinessLineMutation object of the builder.
func (_u *BusinessLineUpdateOne) Mutation() *BusinessLineMutation {
	return _u.mutation
}

// ClearAnnouncements clears all "announcements" edges to the Announcement entity.
func (_u *BusinessLineUpdateOne) ClearAnnouncements() *BusinessLineUpdateOne {
	_u.mutation.ClearAnnouncements()
	return _u
}

// RemoveAnnouncementIDs removes the "announcements" edge to Announcement entities by IDs.
func (_u *BusinessLineUpdateOne) RemoveAnnouncementIDs(ids ...uuid.UUID) *BusinessLineUpdateOne {
	_u.mutation.RemoveAnnouncementIDs(ids...)
	return _u
}

// RemoveAnnouncements removes "announcements" edges to Announcement entities.
func (_u *BusinessLineUpdateOne) RemoveAnnouncements(v ...*Announcement) *BusinessLineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnouncementIDs(ids...)
}

// Where appends a list predicates to the BusinessLineUpdate builder.
func (_u *BusinessLineUpdateOne) Where(ps ...predicate.BusinessLine) *BusinessLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessLineUpdateOne) Select(field string, fields ...string) *BusinessLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessLine entity.
func (_u *BusinessLineUpdateOne) Save(ctx context.Context) (*BusinessLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessLineUpdateOne) SaveX(ctx context.Context) *BusinessLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessLineUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := businessline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BusinessLine.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessLineUpdateOne) sqlSave(ctx context.Context) (_node *BusinessLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessline.Table, businessline.Columns, sqlgraph.NewFieldSpec(businessline.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businessline.FieldID)
		for _, f := range fields {
			if !businessline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businessline.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(businessline.FieldName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnnouncementsIDs(); len(nodes) > 0 && !_u.mutation.AnnouncementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnnouncementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BusinessLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

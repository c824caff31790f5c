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
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// AnnouncementTypeUpdate is the builder for updating AnnouncementType entities.
type AnnouncementTypeUpdate struct {
	config
	hooks    []Hook
	mutation *AnnouncementTypeMutation
}

// Where appends a list predicates to the AnnouncementTypeUpdate builder.
func (_u *AnnouncementTypeUpdate) Where(ps ...predicate.AnnouncementType) *AnnouncementTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AnnouncementTypeUpdate) SetName(v string) *AnnouncementTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnnouncementTypeUpdate) SetNillableName(v *string) *AnnouncementTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_u *AnnouncementTypeUpdate) AddAnnouncementIDs(ids ...uuid.UUID) *AnnouncementTypeUpdate {
	_u.mutation.AddAnnouncementIDs(ids...)
	return _u
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_u *AnnouncementTypeUpdate) AddAnnouncements(v ...*Announcement) *AnnouncementTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnouncementIDs(ids...)
}

// Mutation returns the AnnouncementTypeMutation object of the builder.
func (_u *AnnouncementTypeUpdate) Mutation() *AnnouncementTypeMutation {
	return _u.mutation
}

// ClearAnnouncements clears all "announcements" edges to the Announcement entity.
func (_u *AnnouncementTypeUpdate) ClearAnnouncements() *AnnouncementTypeUpdate {
	_u.mutation.ClearAnnouncements()
	return _u
}

// RemoveAnnouncementIDs removes the "announcements" edge to Announcement entities by IDs.
func (_u *AnnouncementTypeUpdate) RemoveAnnouncementIDs(ids ...uuid.UUID) *AnnouncementTypeUpdate {
	_u.mutation.RemoveAnnouncementIDs(ids...)
	return _u
}

// RemoveAnnouncements removes "announcements" edges to Announcement entities.
func (_u *AnnouncementTypeUpdate) RemoveAnnouncements(v ...*Announcement) *AnnouncementTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnouncementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnnouncementTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnnouncementTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := announcementtype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnnouncementType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcementtype.Table, announcementtype.Columns, sqlgraph.NewFieldSpec(announcementtype.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(announcementtype.FieldName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   announcementtype.AnnouncementsTable,
			Columns: []string{announcementtype.AnnouncementsColumn},
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
			Table:   announcementtype.AnnouncementsTable,
			Columns: []string{announcementtype.AnnouncementsColumn},
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
			Table:   announcementtype.AnnouncementsTable,
			Columns: []string{announcementtype.AnnouncementsColumn},
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
			err = &NotFoundError{announcementtype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnnouncementTypeUpdateOne is the builder for updating a single AnnouncementType entity.
type AnnouncementTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnnouncementTypeMutation
}

// SetName sets the "name" field.
func (_u *AnnouncementTypeUpdateOne) SetName(v string) *AnnouncementTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnnouncementTypeUpdateOne) SetNillableName(v *string) *AnnouncementTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_u *AnnouncementTypeUpdateOne) AddAnnouncementIDs(ids ...uuid.UUID) *AnnouncementTypeUpdateOne {
	_u.mutation.AddAnnouncementIDs(ids...)
	return _u
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_u *AnnouncementTypeUpdateOne) AddAnnouncements(v ...*Announcement) *AnnouncementTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnouncementIDs(ids...)
}

// Mutation returns the AnnouncementTypeMutation object of the builder.
func (_u *AnnouncementTypeUpdateOne) Mutation() *AnnouncementTypeMutation {
	return _u.mutation
}

// ClearAnnouncements clears all "announcements" edges to the Announcement entity.
func (_u *AnnouncementTypeUpdateOne) ClearAnnouncements() *AnnouncementTypeUpdateOne {
	_u.mutation.ClearAnnouncements()
	return _u
}

// RemoveAnnouncementIDs removes the "announcements" edge to Announcement entities by IDs.
func (_u *AnnouncementTypeUpdateOne) RemoveAnnouncementIDs(ids ...uuid.UUID) *AnnouncementTypeUpdateOne {
	_u.mutation.RemoveAnnouncementIDs(ids...)
	return _u
}

// RemoveAnnouncements removes "announcements" edges to Announcement entities.
func (_u *AnnouncementTypeUpdateOne) RemoveAnnouncements(v ...*Announcement) *AnnouncementTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnouncementIDs(ids...)
}

// Where appends a list predicates to the AnnouncementTypeUpdate builder.
func (_u *AnnouncementTypeUpdateOne) Where(ps ...predicate.AnnouncementType) *AnnouncementTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnnouncementTypeUpdateOne) Select(field string, fields ...string) *AnnouncementTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnnouncementType entity.
func (_u *AnnouncementTypeUpdateOne) Save(ctx context.Context) (*AnnouncementType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementTypeUpdateOne) SaveX(ctx context.Context) *AnnouncementType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnnouncementTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := announcementtype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnnouncementType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementTypeUpdateOne) sqlSave(ctx context.Context) (_node *AnnouncementType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcementtype.Table, announcementtype.Columns, sqlgraph.NewFieldSpec(announcementtype.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnnouncementType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, announcementtype.FieldID)
		for _, f := range fields {
			if !announcementtype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != announcementtype.FieldID {
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
		_spec.SetField(announcementtype.FieldName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   announcementtype.AnnouncementsTable,
			Columns: []string{announcementtype.AnnouncementsColumn},
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
			Table:   announcementtype.AnnouncementsTable,
			Columns: []string{announcementtype.AnnouncementsColumn},
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
			Table:   announcementtype.AnnouncementsTable,
			Columns: []string{announcementtype.AnnouncementsColumn},
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
	_node = &AnnouncementType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcementtype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

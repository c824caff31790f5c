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
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
	"github.com/google/uuid"
)

// WilayaUpdate is the builder for updating Wilaya entities.
type WilayaUpdate struct {
	config
	hooks    []Hook
	mutation *WilayaMutation
}

// Where appends a list predicates to the WilayaUpdate builder.
func (_u *WilayaUpdate) Where(ps ...predicate.Wilaya) *WilayaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WilayaUpdate) SetName(v string) *WilayaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WilayaUpdate) SetNillableName(v *string) *WilayaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_u *WilayaUpdate) AddAnnouncementIDs(ids ...uuid.UUID) *WilayaUpdate {
	_u.mutation.AddAnnouncementIDs(ids...)
	return _u
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_u *WilayaUpdate) AddAnnouncements(v ...*Announcement) *WilayaUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnouncementIDs(ids...)
}

// Mutation returns the WilayaMutation object of the builder.
func (_u *WilayaUpdate) Mutation() *WilayaMutation {
	return _u.mutation
}

// ClearAnnouncements clears all "announcements" edges to the Announcement entity.
func (_u *WilayaUpdate) ClearAnnouncements() *WilayaUpdate {
	_u.mutation.ClearAnnouncements()
	return _u
}

// RemoveAnnouncementIDs removes the "announcements" edge to Announcement entities by IDs.
func (_u *WilayaUpdate) RemoveAnnouncementIDs(ids ...uuid.UUID) *WilayaUpdate {
	_u.mutation.RemoveAnnouncementIDs(ids...)
	return _u
}

// RemoveAnnouncements removes "announcements" edges to Announcement entities.
func (_u *WilayaUpdate) RemoveAnnouncements(v ...*Announcement) *WilayaUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnouncementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WilayaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WilayaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WilayaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WilayaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WilayaUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := wilaya.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Wilaya.name": %w`, err)}
		}
	}
	return nil
}

func (_u *WilayaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wilaya.Table, wilaya.Columns, sqlgraph.NewFieldSpec(wilaya.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(wilaya.FieldName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   wilaya.AnnouncementsTable,
			Columns: []string{wilaya.AnnouncementsColumn},
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
			Table:   wilaya.AnnouncementsTable,
			Columns: []string{wilaya.AnnouncementsColumn},
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
			Table:   wilaya.AnnouncementsTable,
			Columns: []string{wilaya.AnnouncementsColumn},
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
			err = &NotFoundError{wilaya.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WilayaUpdateOne is the builder for updating a single Wilaya entity.
type WilayaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WilayaMutation
}

// SetName sets the "name" field.
func (_u *WilayaUpdateOne) SetName(v string) *WilayaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WilayaUpdateOne) SetNillableName(v *string) *WilayaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by IDs.
func (_u *WilayaUpdateOne) AddAnnouncementIDs(ids ...uuid.UUID) *WilayaUpdateOne {
	_u.mutation.AddAnnouncementIDs(ids...)
	return _u
}

// AddAnnouncements adds the "announcements" edges to the Announcement entity.
func (_u *WilayaUpdateOne) AddAnnouncements(v ...*Announcement) *WilayaUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnouncementIDs(ids...)
}

// Mutation returns the WilayaMutation object of the builder.
func (_u *WilayaUpdateOne) Mutation() *WilayaMutation {
	return _u.mutation
}

// ClearAnnouncements clears all "announcements" edges to the Announcement entity.
func (_u *WilayaUpdateOne) ClearAnnouncements() *WilayaUpdateOne {
	_u.mutation.ClearAnnouncements()
	return _u
}

// RemoveAnnouncementIDs removes the "announcements" edge to Announcement entities by IDs.
func (_u *WilayaUpdateOne) RemoveAnnouncementIDs(ids ...uuid.UUID) *WilayaUpdateOne {
	_u.mutation.RemoveAnnouncementIDs(ids...)
	return _u
}

// RemoveAnnouncements removes "announcements" edges to Announcement entities.
func (_u *WilayaUpdateOne) RemoveAnnouncements(v ...*Announcement) *WilayaUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnouncementIDs(ids...)
}

// Where appends a list predicates to the WilayaUpdate builder.
func (_u *WilayaUpdateOne) Where(ps ...predicate.Wilaya) *WilayaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WilayaUpdateOne) Select(field string, fields ...string) *WilayaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Wilaya entity.
func (_u *WilayaUpdateOne) Save(ctx context.Context) (*Wilaya, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WilayaUpdateOne) SaveX(ctx context.Context) *Wilaya {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WilayaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WilayaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WilayaUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := wilaya.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Wilaya.name": %w`, err)}
		}
	}
	return nil
}

func (_u *WilayaUpdateOne) sqlSave(ctx context.Context) (_node *Wilaya, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wilaya.Table, wilaya.Columns, sqlgraph.NewFieldSpec(wilaya.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Wilaya.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wilaya.FieldID)
		for _, f := range fields {
			if !wilaya.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wilaya.FieldID {
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
		_spec.SetField(wilaya.FieldName, field.TypeString, value)
	}
	if _u.mutation.AnnouncementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   wilaya.AnnouncementsTable,
			Columns: []string{wilaya.AnnouncementsColumn},
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
			Table:   wilaya.AnnouncementsTable,
			Columns: []string{wilaya.AnnouncementsColumn},
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
			Table:   wilaya.AnnouncementsTable,
			Columns: []string{wilaya.AnnouncementsColumn},
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
	_node = &Wilaya{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wilaya.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

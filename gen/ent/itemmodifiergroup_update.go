// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
	"github.com/platewise/menu-extractor/gen/ent/predicate"
)

// ItemModifierGroupUpdate is the builder for updating ItemModifierGroup entities.
type ItemModifierGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ItemModifierGroupMutation
}

// Where appends a list predicates to the ItemModifierGroupUpdate builder.
func (_u *ItemModifierGroupUpdate) Where(ps ...predicate.ItemModifierGroup) *ItemModifierGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemModifierGroupUpdate) SetItemID(v uuid.UUID) *ItemModifierGroupUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemModifierGroupUpdate) SetNillableItemID(v *uuid.UUID) *ItemModifierGroupUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ItemModifierGroupUpdate) SetName(v string) *ItemModifierGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ItemModifierGroupUpdate) SetNillableName(v *string) *ItemModifierGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ItemModifierGroupUpdate) SetOptions(v json.RawMessage) *ItemModifierGroupUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ItemModifierGroupUpdate) AppendOptions(v json.RawMessage) *ItemModifierGroupUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ItemModifierGroupUpdate) ClearOptions() *ItemModifierGroupUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetItem sets the "item" edge to the MenuItem entity.
func (_u *ItemModifierGroupUpdate) SetItem(v *MenuItem) *ItemModifierGroupUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the ItemModifierGroupMutation object of the builder.
func (_u *ItemModifierGroupUpdate) Mutation() *ItemModifierGroupMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the MenuItem entity.
func (_u *ItemModifierGroupUpdate) ClearItem() *ItemModifierGroupUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemModifierGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemModifierGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemModifierGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemModifierGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemModifierGroupUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := itemmodifiergroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ItemModifierGroup.name": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ItemModifierGroup.item"`)
	}
	return nil
}

func (_u *ItemModifierGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemmodifiergroup.Table, itemmodifiergroup.Columns, sqlgraph.NewFieldSpec(itemmodifiergroup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(itemmodifiergroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(itemmodifiergroup.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, itemmodifiergroup.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(itemmodifiergroup.FieldOptions, field.TypeJSON)
	}
	if _u.mutation.ItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemmodifiergroup.ItemTable,
			Columns: []string{itemmodifiergroup.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemmodifiergroup.ItemTable,
			Columns: []string{itemmodifiergroup.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemmodifiergroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemModifierGroupUpdateOne is the builder for updating a single ItemModifierGroup entity.
type ItemModifierGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemModifierGroupMutation
}

// SetItemID sets the "item_id" field.
func (_u *ItemModifierGroupUpdateOne) SetItemID(v uuid.UUID) *ItemModifierGroupUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemModifierGroupUpdateOne) SetNillableItemID(v *uuid.UUID) *ItemModifierGroupUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ItemModifierGroupUpdateOne) SetName(v string) *ItemModifierGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ItemModifierGroupUpdateOne) SetNillableName(v *string) *ItemModifierGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ItemModifierGroupUpdateOne) SetOptions(v json.RawMessage) *ItemModifierGroupUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ItemModifierGroupUpdateOne) AppendOptions(v json.RawMessage) *ItemModifierGroupUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ItemModifierGroupUpdateOne) ClearOptions() *ItemModifierGroupUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetItem sets the "item" edge to the MenuItem entity.
func (_u *ItemModifierGroupUpdateOne) SetItem(v *MenuItem) *ItemModifierGroupUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the ItemModifierGroupMutation object of the builder.
func (_u *ItemModifierGroupUpdateOne) Mutation() *ItemModifierGroupMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the MenuItem entity.
func (_u *ItemModifierGroupUpdateOne) ClearItem() *ItemModifierGroupUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the ItemModifierGroupUpdate builder.
func (_u *ItemModifierGroupUpdateOne) Where(ps ...predicate.ItemModifierGroup) *ItemModifierGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemModifierGroupUpdateOne) Select(field string, fields ...string) *ItemModifierGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemModifierGroup entity.
func (_u *ItemModifierGroupUpdateOne) Save(ctx context.Context) (*ItemModifierGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemModifierGroupUpdateOne) SaveX(ctx context.Context) *ItemModifierGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemModifierGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemModifierGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemModifierGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := itemmodifiergroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ItemModifierGroup.name": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ItemModifierGroup.item"`)
	}
	return nil
}

func (_u *ItemModifierGroupUpdateOne) sqlSave(ctx context.Context) (_node *ItemModifierGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemmodifiergroup.Table, itemmodifiergroup.Columns, sqlgraph.NewFieldSpec(itemmodifiergroup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemModifierGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemmodifiergroup.FieldID)
		for _, f := range fields {
			if !itemmodifiergroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemmodifiergroup.FieldID {
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
		_spec.SetField(itemmodifiergroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(itemmodifiergroup.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, itemmodifiergroup.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(itemmodifiergroup.FieldOptions, field.TypeJSON)
	}
	if _u.mutation.ItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemmodifiergroup.ItemTable,
			Columns: []string{itemmodifiergroup.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemmodifiergroup.ItemTable,
			Columns: []string{itemmodifiergroup.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ItemModifierGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemmodifiergroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

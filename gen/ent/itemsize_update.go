// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemsize"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
	"github.com/platewise/menu-extractor/gen/ent/predicate"
)

// ItemSizeUpdate is the builder for updating ItemSize entities.
type ItemSizeUpdate struct {
	config
	hooks    []Hook
	mutation *ItemSizeMutation
}

// Where appends a list predicates to the ItemSizeUpdate builder.
func (_u *ItemSizeUpdate) Where(ps ...predicate.ItemSize) *ItemSizeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemSizeUpdate) SetItemID(v uuid.UUID) *ItemSizeUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemSizeUpdate) SetNillableItemID(v *uuid.UUID) *ItemSizeUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *ItemSizeUpdate) SetSize(v string) *ItemSizeUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *ItemSizeUpdate) SetNillableSize(v *string) *ItemSizeUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ItemSizeUpdate) SetPrice(v float64) *ItemSizeUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ItemSizeUpdate) SetNillablePrice(v *float64) *ItemSizeUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ItemSizeUpdate) AddPrice(v float64) *ItemSizeUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ItemSizeUpdate) SetIsActive(v bool) *ItemSizeUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ItemSizeUpdate) SetNillableIsActive(v *bool) *ItemSizeUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the MenuItem entity.
func (_u *ItemSizeUpdate) SetItem(v *MenuItem) *ItemSizeUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the ItemSizeMutation object of the builder.
func (_u *ItemSizeUpdate) Mutation() *ItemSizeMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the MenuItem entity.
func (_u *ItemSizeUpdate) ClearItem() *ItemSizeUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemSizeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemSizeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemSizeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemSizeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemSizeUpdate) check() error {
	if v, ok := _u.mutation.Price(); ok {
		if err := itemsize.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "ItemSize.price": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ItemSize.item"`)
	}
	return nil
}

func (_u *ItemSizeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemsize.Table, itemsize.Columns, sqlgraph.NewFieldSpec(itemsize.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(itemsize.FieldSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(itemsize.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(itemsize.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(itemsize.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemsize.ItemTable,
			Columns: []string{itemsize.ItemColumn},
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
			Table:   itemsize.ItemTable,
			Columns: []string{itemsize.ItemColumn},
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
			err = &NotFoundError{itemsize.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemSizeUpdateOne is the builder for updating a single ItemSize entity.
type ItemSizeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemSizeMutation
}

// SetItemID sets the "item_id" field.
func (_u *ItemSizeUpdateOne) SetItemID(v uuid.UUID) *ItemSizeUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemSizeUpdateOne) SetNillableItemID(v *uuid.UUID) *ItemSizeUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *ItemSizeUpdateOne) SetSize(v string) *ItemSizeUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *ItemSizeUpdateOne) SetNillableSize(v *string) *ItemSizeUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ItemSizeUpdateOne) SetPrice(v float64) *ItemSizeUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ItemSizeUpdateOne) SetNillablePrice(v *float64) *ItemSizeUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ItemSizeUpdateOne) AddPrice(v float64) *ItemSizeUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ItemSizeUpdateOne) SetIsActive(v bool) *ItemSizeUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ItemSizeUpdateOne) SetNillableIsActive(v *bool) *ItemSizeUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the MenuItem entity.
func (_u *ItemSizeUpdateOne) SetItem(v *MenuItem) *ItemSizeUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the ItemSizeMutation object of the builder.
func (_u *ItemSizeUpdateOne) Mutation() *ItemSizeMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the MenuItem entity.
func (_u *ItemSizeUpdateOne) ClearItem() *ItemSizeUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the ItemSizeUpdate builder.
func (_u *ItemSizeUpdateOne) Where(ps ...predicate.ItemSize) *ItemSizeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemSizeUpdateOne) Select(field string, fields ...string) *ItemSizeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemSize entity.
func (_u *ItemSizeUpdateOne) Save(ctx context.Context) (*ItemSize, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemSizeUpdateOne) SaveX(ctx context.Context) *ItemSize {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemSizeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemSizeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemSizeUpdateOne) check() error {
	if v, ok := _u.mutation.Price(); ok {
		if err := itemsize.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "ItemSize.price": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ItemSize.item"`)
	}
	return nil
}

func (_u *ItemSizeUpdateOne) sqlSave(ctx context.Context) (_node *ItemSize, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemsize.Table, itemsize.Columns, sqlgraph.NewFieldSpec(itemsize.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemSize.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemsize.FieldID)
		for _, f := range fields {
			if !itemsize.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemsize.FieldID {
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
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(itemsize.FieldSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(itemsize.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(itemsize.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(itemsize.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemsize.ItemTable,
			Columns: []string{itemsize.ItemColumn},
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
			Table:   itemsize.ItemTable,
			Columns: []string{itemsize.ItemColumn},
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
	_node = &ItemSize{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemsize.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemsize"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
)

// ItemSizeCreate is the builder for creating a ItemSize entity.
type ItemSizeCreate struct {
	config
	mutation *ItemSizeMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemSizeCreate) SetItemID(v uuid.UUID) *ItemSizeCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *ItemSizeCreate) SetSize(v string) *ItemSizeCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *ItemSizeCreate) SetNillableSize(v *string) *ItemSizeCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ItemSizeCreate) SetPrice(v float64) *ItemSizeCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ItemSizeCreate) SetNillablePrice(v *float64) *ItemSizeCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ItemSizeCreate) SetIsActive(v bool) *ItemSizeCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ItemSizeCreate) SetNillableIsActive(v *bool) *ItemSizeCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemSizeCreate) SetID(v uuid.UUID) *ItemSizeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ItemSizeCreate) SetNillableID(v *uuid.UUID) *ItemSizeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the MenuItem entity.
func (_c *ItemSizeCreate) SetItem(v *MenuItem) *ItemSizeCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the ItemSizeMutation object of the builder.
func (_c *ItemSizeCreate) Mutation() *ItemSizeMutation {
	return _c.mutation
}

// Save creates the ItemSize in the database.
func (_c *ItemSizeCreate) Save(ctx context.Context) (*ItemSize, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemSizeCreate) SaveX(ctx context.Context) *ItemSize {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemSizeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemSizeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemSizeCreate) defaults() {
	if _, ok := _c.mutation.Size(); !ok {
		v := itemsize.DefaultSize
		_c.mutation.SetSize(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := itemsize.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := itemsize.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := itemsize.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemSizeCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemSize.item_id"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "ItemSize.size"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "ItemSize.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := itemsize.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "ItemSize.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ItemSize.is_active"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "ItemSize.item"`)}
	}
	return nil
}

func (_c *ItemSizeCreate) sqlSave(ctx context.Context) (*ItemSize, error) {
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

func (_c *ItemSizeCreate) createSpec() (*ItemSize, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemSize{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemsize.Table, sqlgraph.NewFieldSpec(itemsize.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(itemsize.FieldSize, field.TypeString, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(itemsize.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(itemsize.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
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
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ItemSizeCreateBulk is the builder for creating many ItemSize entities in bulk.
type ItemSizeCreateBulk struct {
	config
	err      error
	builders []*ItemSizeCreate
}

// Save creates the ItemSize entities in the database.
func (_c *ItemSizeCreateBulk) Save(ctx context.Context) ([]*ItemSize, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemSize, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemSizeMutation)
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
func (_c *ItemSizeCreateBulk) SaveX(ctx context.Context) []*ItemSize {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemSizeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemSizeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
)

// ItemModifierGroupCreate is the builder for creating a ItemModifierGroup entity.
type ItemModifierGroupCreate struct {
	config
	mutation *ItemModifierGroupMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemModifierGroupCreate) SetItemID(v uuid.UUID) *ItemModifierGroupCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ItemModifierGroupCreate) SetName(v string) *ItemModifierGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ItemModifierGroupCreate) SetOptions(v json.RawMessage) *ItemModifierGroupCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ItemModifierGroupCreate) SetID(v uuid.UUID) *ItemModifierGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ItemModifierGroupCreate) SetNillableID(v *uuid.UUID) *ItemModifierGroupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the MenuItem entity.
func (_c *ItemModifierGroupCreate) SetItem(v *MenuItem) *ItemModifierGroupCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the ItemModifierGroupMutation object of the builder.
func (_c *ItemModifierGroupCreate) Mutation() *ItemModifierGroupMutation {
	return _c.mutation
}

// Save creates the ItemModifierGroup in the database.
func (_c *ItemModifierGroupCreate) Save(ctx context.Context) (*ItemModifierGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemModifierGroupCreate) SaveX(ctx context.Context) *ItemModifierGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemModifierGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemModifierGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemModifierGroupCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := itemmodifiergroup.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemModifierGroupCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemModifierGroup.item_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ItemModifierGroup.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := itemmodifiergroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ItemModifierGroup.name": %w`, err)}
		}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "ItemModifierGroup.item"`)}
	}
	return nil
}

func (_c *ItemModifierGroupCreate) sqlSave(ctx context.Context) (*ItemModifierGroup, error) {
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

func (_c *ItemModifierGroupCreate) createSpec() (*ItemModifierGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemModifierGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemmodifiergroup.Table, sqlgraph.NewFieldSpec(itemmodifiergroup.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(itemmodifiergroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(itemmodifiergroup.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
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
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ItemModifierGroupCreateBulk is the builder for creating many ItemModifierGroup entities in bulk.
type ItemModifierGroupCreateBulk struct {
	config
	err      error
	builders []*ItemModifierGroupCreate
}

// Save creates the ItemModifierGroup entities in the database.
func (_c *ItemModifierGroupCreateBulk) Save(ctx context.Context) ([]*ItemModifierGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemModifierGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemModifierGroupMutation)
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
func (_c *ItemModifierGroupCreateBulk) SaveX(ctx context.Context) []*ItemModifierGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemModifierGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemModifierGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/itemsize"
	"github.com/platewise/menu-extractor/gen/ent/job"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
)

// MenuItemCreate is the builder for creating a MenuItem entity.
type MenuItemCreate struct {
	config
	mutation *MenuItemMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *MenuItemCreate) SetJobID(v uuid.UUID) *MenuItemCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MenuItemCreate) SetName(v string) *MenuItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MenuItemCreate) SetDescription(v string) *MenuItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableDescription(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *MenuItemCreate) SetSubcategory(v string) *MenuItemCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetMenuName sets the "menu_name" field.
func (_c *MenuItemCreate) SetMenuName(v string) *MenuItemCreate {
	_c.mutation.SetMenuName(v)
	return _c
}

// SetNillableMenuName sets the "menu_name" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableMenuName(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetMenuName(*v)
	}
	return _c
}

// SetCreatedFrom sets the "created_from" field.
func (_c *MenuItemCreate) SetCreatedFrom(v string) *MenuItemCreate {
	_c.mutation.SetCreatedFrom(v)
	return _c
}

// SetNillableCreatedFrom sets the "created_from" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableCreatedFrom(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetCreatedFrom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MenuItemCreate) SetCreatedAt(v time.Time) *MenuItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableCreatedAt(v *time.Time) *MenuItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MenuItemCreate) SetUpdatedAt(v time.Time) *MenuItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableUpdatedAt(v *time.Time) *MenuItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MenuItemCreate) SetID(v uuid.UUID) *MenuItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableID(v *uuid.UUID) *MenuItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *MenuItemCreate) SetJob(v *Job) *MenuItemCreate {
	return _c.SetJobID(v.ID)
}

// AddSizeIDs adds the "sizes" edge to the ItemSize entity by IDs.
func (_c *MenuItemCreate) AddSizeIDs(ids ...uuid.UUID) *MenuItemCreate {
	_c.mutation.AddSizeIDs(ids...)
	return _c
}

// AddSizes adds the "sizes" edges to the ItemSize entity.
func (_c *MenuItemCreate) AddSizes(v ...*ItemSize) *MenuItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSizeIDs(ids...)
}

// AddModifierGroupIDs adds the "modifier_groups" edge to the ItemModifierGroup entity by IDs.
func (_c *MenuItemCreate) AddModifierGroupIDs(ids ...uuid.UUID) *MenuItemCreate {
	_c.mutation.AddModifierGroupIDs(ids...)
	return _c
}

// AddModifierGroups adds the "modifier_groups" edges to the ItemModifierGroup entity.
func (_c *MenuItemCreate) AddModifierGroups(v ...*ItemModifierGroup) *MenuItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddModifierGroupIDs(ids...)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_c *MenuItemCreate) Mutation() *MenuItemMutation {
	return _c.mutation
}

// Save creates the MenuItem in the database.
func (_c *MenuItemCreate) Save(ctx context.Context) (*MenuItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MenuItemCreate) SaveX(ctx context.Context) *MenuItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MenuItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedFrom(); !ok {
		v := menuitem.DefaultCreatedFrom
		_c.mutation.SetCreatedFrom(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := menuitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := menuitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := menuitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MenuItemCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "MenuItem.job_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MenuItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := menuitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MenuItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "MenuItem.subcategory"`)}
	}
	if v, ok := _c.mutation.Subcategory(); ok {
		if err := menuitem.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "MenuItem.subcategory": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedFrom(); !ok {
		return &ValidationError{Name: "created_from", err: errors.New(`ent: missing required field "MenuItem.created_from"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MenuItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MenuItem.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "MenuItem.job"`)}
	}
	return nil
}

func (_c *MenuItemCreate) sqlSave(ctx context.Context) (*MenuItem, error) {
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

func (_c *MenuItemCreate) createSpec() (*MenuItem, *sqlgraph.CreateSpec) {
	var (
		_node = &MenuItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(menuitem.Table, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(menuitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(menuitem.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.MenuName(); ok {
		_spec.SetField(menuitem.FieldMenuName, field.TypeString, value)
		_node.MenuName = &value
	}
	if value, ok := _c.mutation.CreatedFrom(); ok {
		_spec.SetField(menuitem.FieldCreatedFrom, field.TypeString, value)
		_node.CreatedFrom = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(menuitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   menuitem.JobTable,
			Columns: []string{menuitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SizesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.SizesTable,
			Columns: []string{menuitem.SizesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsize.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ModifierGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.ModifierGroupsTable,
			Columns: []string{menuitem.ModifierGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemmodifiergroup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MenuItemCreateBulk is the builder for creating many MenuItem entities in bulk.
type MenuItemCreateBulk struct {
	config
	err      error
	builders []*MenuItemCreate
}

// Save creates the MenuItem entities in the database.
func (_c *MenuItemCreateBulk) Save(ctx context.Context) ([]*MenuItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MenuItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MenuItemMutation)
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
func (_c *MenuItemCreateBulk) SaveX(ctx context.Context) []*MenuItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/itemsize"
	"github.com/platewise/menu-extractor/gen/ent/job"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
	"github.com/platewise/menu-extractor/gen/ent/predicate"
)

// MenuItemUpdate is the builder for updating MenuItem entities.
type MenuItemUpdate struct {
	config
	hooks    []Hook
	mutation *MenuItemMutation
}

// Where appends a list predicates to the MenuItemUpdate builder.
func (_u *MenuItemUpdate) Where(ps ...predicate.MenuItem) *MenuItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *MenuItemUpdate) SetJobID(v uuid.UUID) *MenuItemUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableJobID(v *uuid.UUID) *MenuItemUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MenuItemUpdate) SetName(v string) *MenuItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableName(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MenuItemUpdate) SetDescription(v string) *MenuItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableDescription(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MenuItemUpdate) ClearDescription() *MenuItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *MenuItemUpdate) SetSubcategory(v string) *MenuItemUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableSubcategory(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetMenuName sets the "menu_name" field.
func (_u *MenuItemUpdate) SetMenuName(v string) *MenuItemUpdate {
	_u.mutation.SetMenuName(v)
	return _u
}

// SetNillableMenuName sets the "menu_name" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableMenuName(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetMenuName(*v)
	}
	return _u
}

// ClearMenuName clears the value of the "menu_name" field.
func (_u *MenuItemUpdate) ClearMenuName() *MenuItemUpdate {
	_u.mutation.ClearMenuName()
	return _u
}

// SetCreatedFrom sets the "created_from" field.
func (_u *MenuItemUpdate) SetCreatedFrom(v string) *MenuItemUpdate {
	_u.mutation.SetCreatedFrom(v)
	return _u
}

// SetNillableCreatedFrom sets the "created_from" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableCreatedFrom(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetCreatedFrom(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MenuItemUpdate) SetCreatedAt(v time.Time) *MenuItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableCreatedAt(v *time.Time) *MenuItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuItemUpdate) SetUpdatedAt(v time.Time) *MenuItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *MenuItemUpdate) SetJob(v *Job) *MenuItemUpdate {
	return _u.SetJobID(v.ID)
}

// AddSizeIDs adds the "sizes" edge to the ItemSize entity by IDs.
func (_u *MenuItemUpdate) AddSizeIDs(ids ...uuid.UUID) *MenuItemUpdate {
	_u.mutation.AddSizeIDs(ids...)
	return _u
}

// AddSizes adds the "sizes" edges to the ItemSize entity.
func (_u *MenuItemUpdate) AddSizes(v ...*ItemSize) *MenuItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSizeIDs(ids...)
}

// AddModifierGroupIDs adds the "modifier_groups" edge to the ItemModifierGroup entity by IDs.
func (_u *MenuItemUpdate) AddModifierGroupIDs(ids ...uuid.UUID) *MenuItemUpdate {
	_u.mutation.AddModifierGroupIDs(ids...)
	return _u
}

// AddModifierGroups adds the "modifier_groups" edges to the ItemModifierGroup entity.
func (_u *MenuItemUpdate) AddModifierGroups(v ...*ItemModifierGroup) *MenuItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModifierGroupIDs(ids...)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_u *MenuItemUpdate) Mutation() *MenuItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *MenuItemUpdate) ClearJob() *MenuItemUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearSizes clears all "sizes" edges to the ItemSize entity.
func (_u *MenuItemUpdate) ClearSizes() *MenuItemUpdate {
	_u.mutation.ClearSizes()
	return _u
}

// RemoveSizeIDs removes the "sizes" edge to ItemSize entities by IDs.
func (_u *MenuItemUpdate) RemoveSizeIDs(ids ...uuid.UUID) *MenuItemUpdate {
	_u.mutation.RemoveSizeIDs(ids...)
	return _u
}

// RemoveSizes removes "sizes" edges to ItemSize entities.
func (_u *MenuItemUpdate) RemoveSizes(v ...*ItemSize) *MenuItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSizeIDs(ids...)
}

// ClearModifierGroups clears all "modifier_groups" edges to the ItemModifierGroup entity.
func (_u *MenuItemUpdate) ClearModifierGroups() *MenuItemUpdate {
	_u.mutation.ClearModifierGroups()
	return _u
}

// RemoveModifierGroupIDs removes the "modifier_groups" edge to ItemModifierGroup entities by IDs.
func (_u *MenuItemUpdate) RemoveModifierGroupIDs(ids ...uuid.UUID) *MenuItemUpdate {
	_u.mutation.RemoveModifierGroupIDs(ids...)
	return _u
}

// RemoveModifierGroups removes "modifier_groups" edges to ItemModifierGroup entities.
func (_u *MenuItemUpdate) RemoveModifierGroups(v ...*ItemModifierGroup) *MenuItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModifierGroupIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MenuItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MenuItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menuitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := menuitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MenuItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := menuitem.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "MenuItem.subcategory": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MenuItem.job"`)
	}
	return nil
}

func (_u *MenuItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menuitem.Table, menuitem.Columns, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(menuitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(menuitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(menuitem.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.MenuName(); ok {
		_spec.SetField(menuitem.FieldMenuName, field.TypeString, value)
	}
	if _u.mutation.MenuNameCleared() {
		_spec.ClearField(menuitem.FieldMenuName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedFrom(); ok {
		_spec.SetField(menuitem.FieldCreatedFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(menuitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SizesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSizesIDs(); len(nodes) > 0 && !_u.mutation.SizesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SizesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModifierGroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModifierGroupsIDs(); len(nodes) > 0 && !_u.mutation.ModifierGroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModifierGroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menuitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MenuItemUpdateOne is the builder for updating a single MenuItem entity.
type MenuItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MenuItemMutation
}

// SetJobID sets the "job_id" field.
func (_u *MenuItemUpdateOne) SetJobID(v uuid.UUID) *MenuItemUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableJobID(v *uuid.UUID) *MenuItemUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MenuItemUpdateOne) SetName(v string) *MenuItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableName(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MenuItemUpdateOne) SetDescription(v string) *MenuItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableDescription(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MenuItemUpdateOne) ClearDescription() *MenuItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *MenuItemUpdateOne) SetSubcategory(v string) *MenuItemUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableSubcategory(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetMenuName sets the "menu_name" field.
func (_u *MenuItemUpdateOne) SetMenuName(v string) *MenuItemUpdateOne {
	_u.mutation.SetMenuName(v)
	return _u
}

// SetNillableMenuName sets the "menu_name" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableMenuName(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetMenuName(*v)
	}
	return _u
}

// ClearMenuName clears the value of the "menu_name" field.
func (_u *MenuItemUpdateOne) ClearMenuName() *MenuItemUpdateOne {
	_u.mutation.ClearMenuName()
	return _u
}

// SetCreatedFrom sets the "created_from" field.
func (_u *MenuItemUpdateOne) SetCreatedFrom(v string) *MenuItemUpdateOne {
	_u.mutation.SetCreatedFrom(v)
	return _u
}

// SetNillableCreatedFrom sets the "created_from" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableCreatedFrom(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetCreatedFrom(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MenuItemUpdateOne) SetCreatedAt(v time.Time) *MenuItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableCreatedAt(v *time.Time) *MenuItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuItemUpdateOne) SetUpdatedAt(v time.Time) *MenuItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *MenuItemUpdateOne) SetJob(v *Job) *MenuItemUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddSizeIDs adds the "sizes" edge to the ItemSize entity by IDs.
func (_u *MenuItemUpdateOne) AddSizeIDs(ids ...uuid.UUID) *MenuItemUpdateOne {
	_u.mutation.AddSizeIDs(ids...)
	return _u
}

// AddSizes adds the "sizes" edges to the ItemSize entity.
func (_u *MenuItemUpdateOne) AddSizes(v ...*ItemSize) *MenuItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSizeIDs(ids...)
}

// AddModifierGroupIDs adds the "modifier_groups" edge to the ItemModifierGroup entity by IDs.
func (_u *MenuItemUpdateOne) AddModifierGroupIDs(ids ...uuid.UUID) *MenuItemUpdateOne {
	_u.mutation.AddModifierGroupIDs(ids...)
	return _u
}

// AddModifierGroups adds the "modifier_groups" edges to the ItemModifierGroup entity.
func (_u *MenuItemUpdateOne) AddModifierGroups(v ...*ItemModifierGroup) *MenuItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModifierGroupIDs(ids...)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_u *MenuItemUpdateOne) Mutation() *MenuItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *MenuItemUpdateOne) ClearJob() *MenuItemUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearSizes clears all "sizes" edges to the ItemSize entity.
func (_u *MenuItemUpdateOne) ClearSizes() *MenuItemUpdateOne {
	_u.mutation.ClearSizes()
	return _u
}

// RemoveSizeIDs removes the "sizes" edge to ItemSize entities by IDs.
func (_u *MenuItemUpdateOne) RemoveSizeIDs(ids ...uuid.UUID) *MenuItemUpdateOne {
	_u.mutation.RemoveSizeIDs(ids...)
	return _u
}

// RemoveSizes removes "sizes" edges to ItemSize entities.
func (_u *MenuItemUpdateOne) RemoveSizes(v ...*ItemSize) *MenuItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSizeIDs(ids...)
}

// ClearModifierGroups clears all "modifier_groups" edges to the ItemModifierGroup entity.
func (_u *MenuItemUpdateOne) ClearModifierGroups() *MenuItemUpdateOne {
	_u.mutation.ClearModifierGroups()
	return _u
}

// RemoveModifierGroupIDs removes the "modifier_groups" edge to ItemModifierGroup entities by IDs.
func (_u *MenuItemUpdateOne) RemoveModifierGroupIDs(ids ...uuid.UUID) *MenuItemUpdateOne {
	_u.mutation.RemoveModifierGroupIDs(ids...)
	return _u
}

// RemoveModifierGroups removes "modifier_groups" edges to ItemModifierGroup entities.
func (_u *MenuItemUpdateOne) RemoveModifierGroups(v ...*ItemModifierGroup) *MenuItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModifierGroupIDs(ids...)
}

// Where appends a list predicates to the MenuItemUpdate builder.
func (_u *MenuItemUpdateOne) Where(ps ...predicate.MenuItem) *MenuItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MenuItemUpdateOne) Select(field string, fields ...string) *MenuItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MenuItem entity.
func (_u *MenuItemUpdateOne) Save(ctx context.Context) (*MenuItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuItemUpdateOne) SaveX(ctx context.Context) *MenuItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MenuItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menuitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := menuitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MenuItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := menuitem.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "MenuItem.subcategory": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MenuItem.job"`)
	}
	return nil
}

func (_u *MenuItemUpdateOne) sqlSave(ctx context.Context) (_node *MenuItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menuitem.Table, menuitem.Columns, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MenuItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, menuitem.FieldID)
		for _, f := range fields {
			if !menuitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != menuitem.FieldID {
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
		_spec.SetField(menuitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(menuitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(menuitem.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.MenuName(); ok {
		_spec.SetField(menuitem.FieldMenuName, field.TypeString, value)
	}
	if _u.mutation.MenuNameCleared() {
		_spec.ClearField(menuitem.FieldMenuName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedFrom(); ok {
		_spec.SetField(menuitem.FieldCreatedFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(menuitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SizesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSizesIDs(); len(nodes) > 0 && !_u.mutation.SizesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SizesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModifierGroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModifierGroupsIDs(); len(nodes) > 0 && !_u.mutation.ModifierGroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModifierGroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MenuItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menuitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

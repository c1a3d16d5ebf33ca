// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/predicate"
)

// ItemModifierGroupDelete is the builder for deleting a ItemModifierGroup entity.
type ItemModifierGroupDelete struct {
	config
	hooks    []Hook
	mutation *ItemModifierGroupMutation
}

// Where appends a list predicates to the ItemModifierGroupDelete builder.
func (_d *ItemModifierGroupDelete) Where(ps ...predicate.ItemModifierGroup) *ItemModifierGroupDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ItemModifierGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItemModifierGroupDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ItemModifierGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itemmodifiergroup.Table, sqlgraph.NewFieldSpec(itemmodifiergroup.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ItemModifierGroupDeleteOne is the builder for deleting a single ItemModifierGroup entity.
type ItemModifierGroupDeleteOne struct {
	_d *ItemModifierGroupDelete
}

// Where appends a list predicates to the ItemModifierGroupDelete builder.
func (_d *ItemModifierGroupDeleteOne) Where(ps ...predicate.ItemModifierGroup) *ItemModifierGroupDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ItemModifierGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itemmodifiergroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItemModifierGroupDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

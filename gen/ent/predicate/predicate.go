// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ItemModifierGroup is the predicate function for itemmodifiergroup builders.
type ItemModifierGroup func(*sql.Selector)

// ItemSize is the predicate function for itemsize builders.
type ItemSize func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// MenuItem is the predicate function for menuitem builders.
type MenuItem func(*sql.Selector)

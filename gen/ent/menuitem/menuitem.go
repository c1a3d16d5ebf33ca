// Code generated by ent, DO NOT EDIT.

package menuitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the menuitem type in the database.
	Label = "menu_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldMenuName holds the string denoting the menu_name field in the database.
	FieldMenuName = "menu_name"
	// FieldCreatedFrom holds the string denoting the created_from field in the database.
	FieldCreatedFrom = "created_from"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeSizes holds the string denoting the sizes edge name in mutations.
	EdgeSizes = "sizes"
	// EdgeModifierGroups holds the string denoting the modifier_groups edge name in mutations.
	EdgeModifierGroups = "modifier_groups"
	// Table holds the table name of the menuitem in the database.
	Table = "menu_items"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "menu_items"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "extraction_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// SizesTable is the table that holds the sizes relation/edge.
	SizesTable = "item_sizes"
	// SizesInverseTable is the table name for the ItemSize entity.
	// It exists in this package in order to avoid circular dependency with the "itemsize" package.
	SizesInverseTable = "item_sizes"
	// SizesColumn is the table column denoting the sizes relation/edge.
	SizesColumn = "item_id"
	// ModifierGroupsTable is the table that holds the modifier_groups relation/edge.
	ModifierGroupsTable = "item_modifier_groups"
	// ModifierGroupsInverseTable is the table name for the ItemModifierGroup entity.
	// It exists in this package in order to avoid circular dependency with the "itemmodifiergroup" package.
	ModifierGroupsInverseTable = "item_modifier_groups"
	// ModifierGroupsColumn is the table column denoting the modifier_groups relation/edge.
	ModifierGroupsColumn = "item_id"
)

// Columns holds all SQL columns for menuitem fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldName,
	FieldDescription,
	FieldSubcategory,
	FieldMenuName,
	FieldCreatedFrom,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	SubcategoryValidator func(string) error
	// DefaultCreatedFrom holds the default value on creation for the "created_from" field.
	DefaultCreatedFrom string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MenuItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByMenuName orders the results by the menu_name field.
func ByMenuName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMenuName, opts...).ToFunc()
}

// ByCreatedFrom orders the results by the created_from field.
func ByCreatedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedFrom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// BySizesCount orders the results by sizes count.
func BySizesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSizesStep(), opts...)
	}
}

// BySizes orders the results by sizes terms.
func BySizes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSizesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByModifierGroupsCount orders the results by modifier_groups count.
func ByModifierGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newModifierGroupsStep(), opts...)
	}
}

// ByModifierGroups orders the results by modifier_groups terms.
func ByModifierGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModifierGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newSizesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SizesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SizesTable, SizesColumn),
	)
}
func newModifierGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModifierGroupsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ModifierGroupsTable, ModifierGroupsColumn),
	)
}

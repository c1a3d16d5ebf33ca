// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemsize"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
)

// ItemSize is the model entity for the ItemSize schema.
type ItemSize struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID uuid.UUID `json:"item_id,omitempty"`
	// Size holds the value of the "size" field.
	Size string `json:"size,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItemSizeQuery when eager-loading is set.
	Edges        ItemSizeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItemSizeEdges holds the relations/edges for other nodes in the graph.
type ItemSizeEdges struct {
	// Item holds the value of the item edge.
	Item *MenuItem `json:"item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ItemSizeEdges) ItemOrErr() (*MenuItem, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: menuitem.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemSize) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemsize.FieldIsActive:
			values[i] = new(sql.NullBool)
		case itemsize.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case itemsize.FieldSize:
			values[i] = new(sql.NullString)
		case itemsize.FieldID, itemsize.FieldItemID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemSize fields.
func (_m *ItemSize) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemsize.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case itemsize.FieldItemID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value != nil {
				_m.ItemID = *value
			}
		case itemsize.FieldSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.String
			}
		case itemsize.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case itemsize.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemSize.
// This includes values selected through modifiers, order, etc.
func (_m *ItemSize) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItem queries the "item" edge of the ItemSize entity.
func (_m *ItemSize) QueryItem() *MenuItemQuery {
	return NewItemSizeClient(_m.config).QueryItem(_m)
}

// Update returns a builder for updating this ItemSize.
// Note that you need to call ItemSize.Unwrap() before calling this method if this ItemSize
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemSize) Update() *ItemSizeUpdateOne {
	return NewItemSizeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemSize entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemSize) Unwrap() *ItemSize {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemSize is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemSize) String() string {
	var builder strings.Builder
	builder.WriteString("ItemSize(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemID))
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(_m.Size)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// ItemSizes is a parsable slice of ItemSize.
type ItemSizes []*ItemSize

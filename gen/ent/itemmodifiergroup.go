// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
)

// ItemModifierGroup is the model entity for the ItemModifierGroup schema.
type ItemModifierGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID uuid.UUID `json:"item_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Options holds the value of the "options" field.
	Options json.RawMessage `json:"options,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItemModifierGroupQuery when eager-loading is set.
	Edges        ItemModifierGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItemModifierGroupEdges holds the relations/edges for other nodes in the graph.
type ItemModifierGroupEdges struct {
	// Item holds the value of the item edge.
	Item *MenuItem `json:"item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ItemModifierGroupEdges) ItemOrErr() (*MenuItem, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: menuitem.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemModifierGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemmodifiergroup.FieldOptions:
			values[i] = new([]byte)
		case itemmodifiergroup.FieldName:
			values[i] = new(sql.NullString)
		case itemmodifiergroup.FieldID, itemmodifiergroup.FieldItemID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemModifierGroup fields.
func (_m *ItemModifierGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemmodifiergroup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case itemmodifiergroup.FieldItemID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value != nil {
				_m.ItemID = *value
			}
		case itemmodifiergroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case itemmodifiergroup.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemModifierGroup.
// This includes values selected through modifiers, order, etc.
func (_m *ItemModifierGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItem queries the "item" edge of the ItemModifierGroup entity.
func (_m *ItemModifierGroup) QueryItem() *MenuItemQuery {
	return NewItemModifierGroupClient(_m.config).QueryItem(_m)
}

// Update returns a builder for updating this ItemModifierGroup.
// Note that you need to call ItemModifierGroup.Unwrap() before calling this method if this ItemModifierGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemModifierGroup) Update() *ItemModifierGroupUpdateOne {
	return NewItemModifierGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemModifierGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemModifierGroup) Unwrap() *ItemModifierGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemModifierGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemModifierGroup) String() string {
	var builder strings.Builder
	builder.WriteString("ItemModifierGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteByte(')')
	return builder.String()
}

// ItemModifierGroups is a parsable slice of ItemModifierGroup.
type ItemModifierGroups []*ItemModifierGroup

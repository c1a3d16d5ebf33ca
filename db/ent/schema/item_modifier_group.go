package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type ItemModifierGroup struct{ ent.Schema }

func (ItemModifierGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "item_modifier_groups"},
	}
}

func (ItemModifierGroup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("item_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// [{"name": "...", "price": 2.00}, ...]; price omitted when unpriced
		field.JSON("options", json.RawMessage{}).Optional(),
	}
}

func (ItemModifierGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", MenuItem.Type).
			Ref("modifier_groups").
			Field("item_id").
			Unique().
			Required(),
	}
}

func (ItemModifierGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
	}
}

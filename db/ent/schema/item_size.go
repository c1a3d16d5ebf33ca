package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type ItemSize struct{ ent.Schema }

func (ItemSize) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "item_sizes"},
	}
}

func (ItemSize) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("item_id", uuid.UUID{}),
		field.String("size").Default("Regular"),
		field.Float("price").Default(0).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("is_active").Default(true),
	}
}

func (ItemSize) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", MenuItem.Type).
			Ref("sizes").
			Field("item_id").
			Unique().
			Required(),
	}
}

func (ItemSize) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
	}
}

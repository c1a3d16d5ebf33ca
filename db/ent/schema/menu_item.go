package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/db/ent/schema/utils"
)

type MenuItem struct{ ent.Schema }

func (MenuItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "menu_items"},
	}
}

func (MenuItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("subcategory").NotEmpty().
			Validate(utils.EnumValidator(constants.AllCategories()...)),
		field.String("menu_name").Optional().Nillable(),
		field.String("created_from").Default("document_extraction"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (MenuItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("items").
			Field("job_id").
			Unique().
			Required(),
		edge.To("sizes", ItemSize.Type),
		edge.To("modifier_groups", ItemModifierGroup.Type),
	}
}

func (MenuItem) Indexes() []ent.Index {
	return []ent.Index{
		// duplicate filtering queries by job; name collapsing happens in the
		// normalizer, so this index is not unique
		index.Fields("job_id", "name"),
	}
}

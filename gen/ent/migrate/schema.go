// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ItemModifierGroupsColumns holds the columns for the "item_modifier_groups" table.
	ItemModifierGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "item_id", Type: field.TypeUUID},
	}
	// ItemModifierGroupsTable holds the schema information for the "item_modifier_groups" table.
	ItemModifierGroupsTable = &schema.Table{
		Name:       "item_modifier_groups",
		Columns:    ItemModifierGroupsColumns,
		PrimaryKey: []*schema.Column{ItemModifierGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_modifier_groups_menu_items_modifier_groups",
				Columns:    []*schema.Column{ItemModifierGroupsColumns[3]},
				RefColumns: []*schema.Column{MenuItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "itemmodifiergroup_item_id",
				Unique:  false,
				Columns: []*schema.Column{ItemModifierGroupsColumns[3]},
			},
		},
	}
	// ItemSizesColumns holds the columns for the "item_sizes" table.
	ItemSizesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "size", Type: field.TypeString, Default: "Regular"},
		{Name: "price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "item_id", Type: field.TypeUUID},
	}
	// ItemSizesTable holds the schema information for the "item_sizes" table.
	ItemSizesTable = &schema.Table{
		Name:       "item_sizes",
		Columns:    ItemSizesColumns,
		PrimaryKey: []*schema.Column{ItemSizesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_sizes_menu_items_sizes",
				Columns:    []*schema.Column{ItemSizesColumns[4]},
				RefColumns: []*schema.Column{MenuItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "itemsize_item_id",
				Unique:  false,
				Columns: []*schema.Column{ItemSizesColumns[4]},
			},
		},
	}
	// ExtractionJobsColumns holds the columns for the "extraction_jobs" table.
	ExtractionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExtractionJobsTable holds the schema information for the "extraction_jobs" table.
	ExtractionJobsTable = &schema.Table{
		Name:       "extraction_jobs",
		Columns:    ExtractionJobsColumns,
		PrimaryKey: []*schema.Column{ExtractionJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[2], ExtractionJobsColumns[3]},
			},
		},
	}
	// MenuItemsColumns holds the columns for the "menu_items" table.
	MenuItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "menu_name", Type: field.TypeString, Nullable: true},
		{Name: "created_from", Type: field.TypeString, Default: "document_extraction"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// MenuItemsTable holds the schema information for the "menu_items" table.
	MenuItemsTable = &schema.Table{
		Name:       "menu_items",
		Columns:    MenuItemsColumns,
		PrimaryKey: []*schema.Column{MenuItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "menu_items_extraction_jobs_items",
				Columns:    []*schema.Column{MenuItemsColumns[8]},
				RefColumns: []*schema.Column{ExtractionJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "menuitem_job_id_name",
				Unique:  false,
				Columns: []*schema.Column{MenuItemsColumns[8], MenuItemsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ItemModifierGroupsTable,
		ItemSizesTable,
		ExtractionJobsTable,
		MenuItemsTable,
	}
)

func init() {
	ItemModifierGroupsTable.ForeignKeys[0].RefTable = MenuItemsTable
	ItemModifierGroupsTable.Annotation = &entsql.Annotation{
		Table: "item_modifier_groups",
	}
	ItemSizesTable.ForeignKeys[0].RefTable = MenuItemsTable
	ItemSizesTable.Annotation = &entsql.Annotation{
		Table: "item_sizes",
	}
	ExtractionJobsTable.Annotation = &entsql.Annotation{
		Table: "extraction_jobs",
	}
	MenuItemsTable.ForeignKeys[0].RefTable = ExtractionJobsTable
	MenuItemsTable.Annotation = &entsql.Annotation{
		Table: "menu_items",
	}
}

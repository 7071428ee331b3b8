// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogEntriesColumns holds the columns for the "catalog_entries" table.
	CatalogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "allergens", Type: field.TypeJSON, Nullable: true},
		{Name: "current_stock", Type: field.TypeFloat64, Default: 0},
		{Name: "min_stock", Type: field.TypeFloat64, Default: 0},
		{Name: "critical_stock", Type: field.TypeFloat64, Default: 0},
		{Name: "max_stock", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CatalogEntriesTable holds the schema information for the "catalog_entries" table.
	CatalogEntriesTable = &schema.Table{
		Name:       "catalog_entries",
		Columns:    CatalogEntriesColumns,
		PrimaryKey: []*schema.Column{CatalogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "catalogentry_name",
				Unique:  false,
				Columns: []*schema.Column{CatalogEntriesColumns[1]},
			},
		},
	}
	// ImportFilesColumns holds the columns for the "import_files" table.
	ImportFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ImportFilesTable holds the schema information for the "import_files" table.
	ImportFilesTable = &schema.Table{
		Name:       "import_files",
		Columns:    ImportFilesColumns,
		PrimaryKey: []*schema.Column{ImportFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ImportFilesColumns[2]},
			},
		},
	}
	// ImportJobsColumns holds the columns for the "import_jobs" table.
	ImportJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
	}
	// ImportJobsTable holds the schema information for the "import_jobs" table.
	ImportJobsTable = &schema.Table{
		Name:       "import_jobs",
		Columns:    ImportJobsColumns,
		PrimaryKey: []*schema.Column{ImportJobsColumns[0]},
	}
	// RecipeSheetsColumns holds the columns for the "recipe_sheets" table.
	RecipeSheetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "portions", Type: field.TypeInt, Default: 4},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"Entrée", "Plat", "Dessert", "Accompagnement", "Sauce"}, Default: "Plat"},
		{Name: "lines", Type: field.TypeJSON, Nullable: true},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "sale_price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecipeSheetsTable holds the schema information for the "recipe_sheets" table.
	RecipeSheetsTable = &schema.Table{
		Name:       "recipe_sheets",
		Columns:    RecipeSheetsColumns,
		PrimaryKey: []*schema.Column{RecipeSheetsColumns[0]},
	}
	// StockMovementsColumns holds the columns for the "stock_movements" table.
	StockMovementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entry_id", Type: field.TypeUUID},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"IN", "OUT"}},
		{Name: "quantity", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StockMovementsTable holds the schema information for the "stock_movements" table.
	StockMovementsTable = &schema.Table{
		Name:       "stock_movements",
		Columns:    StockMovementsColumns,
		PrimaryKey: []*schema.Column{StockMovementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stockmovement_entry_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StockMovementsColumns[1], StockMovementsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogEntriesTable,
		ImportFilesTable,
		ImportJobsTable,
		RecipeSheetsTable,
		StockMovementsTable,
	}
)

func init() {
	CatalogEntriesTable.Annotation = &entsql.Annotation{
		Table: "catalog_entries",
	}
	ImportFilesTable.Annotation = &entsql.Annotation{
		Table: "import_files",
	}
	ImportJobsTable.Annotation = &entsql.Annotation{
		Table: "import_jobs",
	}
	RecipeSheetsTable.Annotation = &entsql.Annotation{
		Table: "recipe_sheets",
	}
	StockMovementsTable.Annotation = &entsql.Annotation{
		Table: "stock_movements",
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cuisinehq/mercuriale/db/ent/schema"
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/cuisinehq/mercuriale/gen/ent/importfile"
	"github.com/cuisinehq/mercuriale/gen/ent/importjob"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/gen/ent/stockmovement"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	catalogentryFields := schema.CatalogEntry{}.Fields()
	_ = catalogentryFields
	// catalogentryDescName is the schema descriptor for name field.
	catalogentryDescName := catalogentryFields[1].Descriptor()
	// catalogentry.NameValidator is a validator for the "name" field. It is called by the builders before save.
	catalogentry.NameValidator = catalogentryDescName.Validators[0].(func(string) error)
	// catalogentryDescUnit is the schema descriptor for unit field.
	catalogentryDescUnit := catalogentryFields[2].Descriptor()
	// catalogentry.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	catalogentry.UnitValidator = catalogentryDescUnit.Validators[0].(func(string) error)
	// catalogentryDescUnitPrice is the schema descriptor for unit_price field.
	catalogentryDescUnitPrice := catalogentryFields[3].Descriptor()
	// catalogentry.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	catalogentry.UnitPriceValidator = catalogentryDescUnitPrice.Validators[0].(func(float64) error)
	// catalogentryDescCurrentStock is the schema descriptor for current_stock field.
	catalogentryDescCurrentStock := catalogentryFields[5].Descriptor()
	// catalogentry.DefaultCurrentStock holds the default value on creation for the current_stock field.
	catalogentry.DefaultCurrentStock = catalogentryDescCurrentStock.Default.(float64)
	// catalogentry.CurrentStockValidator is a validator for the "current_stock" field. It is called by the builders before save.
	catalogentry.CurrentStockValidator = catalogentryDescCurrentStock.Validators[0].(func(float64) error)
	// catalogentryDescMinStock is the schema descriptor for min_stock field.
	catalogentryDescMinStock := catalogentryFields[6].Descriptor()
	// catalogentry.DefaultMinStock holds the default value on creation for the min_stock field.
	catalogentry.DefaultMinStock = catalogentryDescMinStock.Default.(float64)
	// catalogentry.MinStockValidator is a validator for the "min_stock" field. It is called by the builders before save.
	catalogentry.MinStockValidator = catalogentryDescMinStock.Validators[0].(func(float64) error)
	// catalogentryDescCriticalStock is the schema descriptor for critical_stock field.
	catalogentryDescCriticalStock := catalogentryFields[7].Descriptor()
	// catalogentry.DefaultCriticalStock holds the default value on creation for the critical_stock field.
	catalogentry.DefaultCriticalStock = catalogentryDescCriticalStock.Default.(float64)
	// catalogentry.CriticalStockValidator is a validator for the "critical_stock" field. It is called by the builders before save.
	catalogentry.CriticalStockValidator = catalogentryDescCriticalStock.Validators[0].(func(float64) error)
	// catalogentryDescMaxStock is the schema descriptor for max_stock field.
	catalogentryDescMaxStock := catalogentryFields[8].Descriptor()
	// catalogentry.DefaultMaxStock holds the default value on creation for the max_stock field.
	catalogentry.DefaultMaxStock = catalogentryDescMaxStock.Default.(float64)
	// catalogentry.MaxStockValidator is a validator for the "max_stock" field. It is called by the builders before save.
	catalogentry.MaxStockValidator = catalogentryDescMaxStock.Validators[0].(func(float64) error)
	// catalogentryDescCreatedAt is the schema descriptor for created_at field.
	catalogentryDescCreatedAt := catalogentryFields[9].Descriptor()
	// catalogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	catalogentry.DefaultCreatedAt = catalogentryDescCreatedAt.Default.(func() time.Time)
	// catalogentryDescUpdatedAt is the schema descriptor for updated_at field.
	catalogentryDescUpdatedAt := catalogentryFields[10].Descriptor()
	// catalogentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	catalogentry.DefaultUpdatedAt = catalogentryDescUpdatedAt.Default.(func() time.Time)
	// catalogentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	catalogentry.UpdateDefaultUpdatedAt = catalogentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// catalogentryDescID is the schema descriptor for id field.
	catalogentryDescID := catalogentryFields[0].Descriptor()
	// catalogentry.DefaultID holds the default value on creation for the id field.
	catalogentry.DefaultID = catalogentryDescID.Default.(func() uuid.UUID)
	importfileFields := schema.ImportFile{}.Fields()
	_ = importfileFields
	// importfileDescSourcePath is the schema descriptor for source_path field.
	importfileDescSourcePath := importfileFields[1].Descriptor()
	// importfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	importfile.SourcePathValidator = importfileDescSourcePath.Validators[0].(func(string) error)
	// importfileDescContentHash is the schema descriptor for content_hash field.
	importfileDescContentHash := importfileFields[2].Descriptor()
	// importfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	importfile.ContentHashValidator = importfileDescContentHash.Validators[0].(func([]byte) error)
	// importfileDescFilename is the schema descriptor for filename field.
	importfileDescFilename := importfileFields[3].Descriptor()
	// importfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	importfile.FilenameValidator = importfileDescFilename.Validators[0].(func(string) error)
	// importfileDescFileExt is the schema descriptor for file_ext field.
	importfileDescFileExt := importfileFields[4].Descriptor()
	// importfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	importfile.FileExtValidator = importfileDescFileExt.Validators[0].(func(string) error)
	// importfileDescFileSize is the schema descriptor for file_size field.
	importfileDescFileSize := importfileFields[5].Descriptor()
	// importfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	importfile.FileSizeValidator = importfileDescFileSize.Validators[0].(func(int64) error)
	// importfileDescUploadedAt is the schema descriptor for uploaded_at field.
	importfileDescUploadedAt := importfileFields[6].Descriptor()
	// importfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	importfile.DefaultUploadedAt = importfileDescUploadedAt.Default.(func() time.Time)
	// importfileDescID is the schema descriptor for id field.
	importfileDescID := importfileFields[0].Descriptor()
	// importfile.DefaultID holds the default value on creation for the id field.
	importfile.DefaultID = importfileDescID.Default.(func() uuid.UUID)
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescFormat is the schema descriptor for format field.
	importjobDescFormat := importjobFields[2].Descriptor()
	// importjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	importjob.FormatValidator = importjobDescFormat.Validators[0].(func(string) error)
	// importjobDescMode is the schema descriptor for mode field.
	importjobDescMode := importjobFields[3].Descriptor()
	// importjob.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	importjob.ModeValidator = importjobDescMode.Validators[0].(func(string) error)
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[4].Descriptor()
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescStartedAt is the schema descriptor for started_at field.
	importjobDescStartedAt := importjobFields[5].Descriptor()
	// importjob.DefaultStartedAt holds the default value on creation for the started_at field.
	importjob.DefaultStartedAt = importjobDescStartedAt.Default.(func() time.Time)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	recipesheetFields := schema.RecipeSheet{}.Fields()
	_ = recipesheetFields
	// recipesheetDescName is the schema descriptor for name field.
	recipesheetDescName := recipesheetFields[1].Descriptor()
	// recipesheet.NameValidator is a validator for the "name" field. It is called by the builders before save.
	recipesheet.NameValidator = recipesheetDescName.Validators[0].(func(string) error)
	// recipesheetDescPortions is the schema descriptor for portions field.
	recipesheetDescPortions := recipesheetFields[2].Descriptor()
	// recipesheet.DefaultPortions holds the default value on creation for the portions field.
	recipesheet.DefaultPortions = recipesheetDescPortions.Default.(int)
	// recipesheet.PortionsValidator is a validator for the "portions" field. It is called by the builders before save.
	recipesheet.PortionsValidator = recipesheetDescPortions.Validators[0].(func(int) error)
	// recipesheetDescCost is the schema descriptor for cost field.
	recipesheetDescCost := recipesheetFields[6].Descriptor()
	// recipesheet.DefaultCost holds the default value on creation for the cost field.
	recipesheet.DefaultCost = recipesheetDescCost.Default.(float64)
	// recipesheet.CostValidator is a validator for the "cost" field. It is called by the builders before save.
	recipesheet.CostValidator = recipesheetDescCost.Validators[0].(func(float64) error)
	// recipesheetDescSalePrice is the schema descriptor for sale_price field.
	recipesheetDescSalePrice := recipesheetFields[7].Descriptor()
	// recipesheet.DefaultSalePrice holds the default value on creation for the sale_price field.
	recipesheet.DefaultSalePrice = recipesheetDescSalePrice.Default.(float64)
	// recipesheet.SalePriceValidator is a validator for the "sale_price" field. It is called by the builders before save.
	recipesheet.SalePriceValidator = recipesheetDescSalePrice.Validators[0].(func(float64) error)
	// recipesheetDescCreatedAt is the schema descriptor for created_at field.
	recipesheetDescCreatedAt := recipesheetFields[8].Descriptor()
	// recipesheet.DefaultCreatedAt holds the default value on creation for the created_at field.
	recipesheet.DefaultCreatedAt = recipesheetDescCreatedAt.Default.(func() time.Time)
	// recipesheetDescUpdatedAt is the schema descriptor for updated_at field.
	recipesheetDescUpdatedAt := recipesheetFields[9].Descriptor()
	// recipesheet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recipesheet.DefaultUpdatedAt = recipesheetDescUpdatedAt.Default.(func() time.Time)
	// recipesheet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recipesheet.UpdateDefaultUpdatedAt = recipesheetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recipesheetDescID is the schema descriptor for id field.
	recipesheetDescID := recipesheetFields[0].Descriptor()
	// recipesheet.DefaultID holds the default value on creation for the id field.
	recipesheet.DefaultID = recipesheetDescID.Default.(func() uuid.UUID)
	stockmovementFields := schema.StockMovement{}.Fields()
	_ = stockmovementFields
	// stockmovementDescQuantity is the schema descriptor for quantity field.
	stockmovementDescQuantity := stockmovementFields[3].Descriptor()
	// stockmovement.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	stockmovement.QuantityValidator = stockmovementDescQuantity.Validators[0].(func(float64) error)
	// stockmovementDescReason is the schema descriptor for reason field.
	stockmovementDescReason := stockmovementFields[4].Descriptor()
	// stockmovement.DefaultReason holds the default value on creation for the reason field.
	stockmovement.DefaultReason = stockmovementDescReason.Default.(string)
	// stockmovementDescCreatedAt is the schema descriptor for created_at field.
	stockmovementDescCreatedAt := stockmovementFields[5].Descriptor()
	// stockmovement.DefaultCreatedAt holds the default value on creation for the created_at field.
	stockmovement.DefaultCreatedAt = stockmovementDescCreatedAt.Default.(func() time.Time)
	// stockmovementDescID is the schema descriptor for id field.
	stockmovementDescID := stockmovementFields[0].Descriptor()
	// stockmovement.DefaultID holds the default value on creation for the id field.
	stockmovement.DefaultID = stockmovementDescID.Default.(func() uuid.UUID)
}

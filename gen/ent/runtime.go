// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/db/ent/schema"
	"github.com/platewise/menu-extractor/gen/ent/itemmodifiergroup"
	"github.com/platewise/menu-extractor/gen/ent/itemsize"
	"github.com/platewise/menu-extractor/gen/ent/job"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	itemmodifiergroupFields := schema.ItemModifierGroup{}.Fields()
	_ = itemmodifiergroupFields
	// itemmodifiergroupDescName is the schema descriptor for name field.
	itemmodifiergroupDescName := itemmodifiergroupFields[2].Descriptor()
	// itemmodifiergroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	itemmodifiergroup.NameValidator = itemmodifiergroupDescName.Validators[0].(func(string) error)
	// itemmodifiergroupDescID is the schema descriptor for id field.
	itemmodifiergroupDescID := itemmodifiergroupFields[0].Descriptor()
	// itemmodifiergroup.DefaultID holds the default value on creation for the id field.
	itemmodifiergroup.DefaultID = itemmodifiergroupDescID.Default.(func() uuid.UUID)
	itemsizeFields := schema.ItemSize{}.Fields()
	_ = itemsizeFields
	// itemsizeDescSize is the schema descriptor for size field.
	itemsizeDescSize := itemsizeFields[2].Descriptor()
	// itemsize.DefaultSize holds the default value on creation for the size field.
	itemsize.DefaultSize = itemsizeDescSize.Default.(string)
	// itemsizeDescPrice is the schema descriptor for price field.
	itemsizeDescPrice := itemsizeFields[3].Descriptor()
	// itemsize.DefaultPrice holds the default value on creation for the price field.
	itemsize.DefaultPrice = itemsizeDescPrice.Default.(float64)
	// itemsize.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	itemsize.PriceValidator = itemsizeDescPrice.Validators[0].(func(float64) error)
	// itemsizeDescIsActive is the schema descriptor for is_active field.
	itemsizeDescIsActive := itemsizeFields[4].Descriptor()
	// itemsize.DefaultIsActive holds the default value on creation for the is_active field.
	itemsize.DefaultIsActive = itemsizeDescIsActive.Default.(bool)
	// itemsizeDescID is the schema descriptor for id field.
	itemsizeDescID := itemsizeFields[0].Descriptor()
	// itemsize.DefaultID holds the default value on creation for the id field.
	itemsize.DefaultID = itemsizeDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[1].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[2].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[7].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[8].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	menuitemFields := schema.MenuItem{}.Fields()
	_ = menuitemFields
	// menuitemDescName is the schema descriptor for name field.
	menuitemDescName := menuitemFields[2].Descriptor()
	// menuitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	menuitem.NameValidator = menuitemDescName.Validators[0].(func(string) error)
	// menuitemDescSubcategory is the schema descriptor for subcategory field.
	menuitemDescSubcategory := menuitemFields[4].Descriptor()
	// menuitem.SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	menuitem.SubcategoryValidator = func() func(string) error {
		validators := menuitemDescSubcategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subcategory string) error {
			for _, fn := range fns {
				if err := fn(subcategory); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// menuitemDescCreatedFrom is the schema descriptor for created_from field.
	menuitemDescCreatedFrom := menuitemFields[6].Descriptor()
	// menuitem.DefaultCreatedFrom holds the default value on creation for the created_from field.
	menuitem.DefaultCreatedFrom = menuitemDescCreatedFrom.Default.(string)
	// menuitemDescCreatedAt is the schema descriptor for created_at field.
	menuitemDescCreatedAt := menuitemFields[7].Descriptor()
	// menuitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	menuitem.DefaultCreatedAt = menuitemDescCreatedAt.Default.(func() time.Time)
	// menuitemDescUpdatedAt is the schema descriptor for updated_at field.
	menuitemDescUpdatedAt := menuitemFields[8].Descriptor()
	// menuitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	menuitem.DefaultUpdatedAt = menuitemDescUpdatedAt.Default.(func() time.Time)
	// menuitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	menuitem.UpdateDefaultUpdatedAt = menuitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// menuitemDescID is the schema descriptor for id field.
	menuitemDescID := menuitemFields[0].Descriptor()
	// menuitem.DefaultID holds the default value on creation for the id field.
	menuitem.DefaultID = menuitemDescID.Default.(func() uuid.UUID)
}

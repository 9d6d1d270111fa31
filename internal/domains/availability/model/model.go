package model

import (
	"time"

	"recanto/shared/model"
)

const (
	TableName  = "availability_overrides"
	EntityName = "availability_override"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldDate          = "date"
	FieldAvailable     = "available"
	FieldPriceOverride = "price_override"
)

// AvailabilityOverride marks a single calendar date of a property as blocked
// or repriced. Dates without a row follow the property defaults. One row per
// property and date.
type AvailabilityOverride struct {
	ID            string    `db:"id"`
	PropertyID    string    `db:"property_id"`
	Date          time.Time `db:"date"`
	Available     bool      `db:"available"`
	PriceOverride *int64    `db:"price_override"`
	model.Metadata
}

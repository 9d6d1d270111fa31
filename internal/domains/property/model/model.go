package model

import (
	"github.com/lib/pq"

	"recanto/shared/model"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID            = "id"
	FieldOwnerID       = "owner_id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldCity          = "city"
	FieldState         = "state"
	FieldAddress       = "address"
	FieldCapacity      = "capacity"
	FieldBedrooms      = "bedrooms"
	FieldBathrooms     = "bathrooms"
	FieldPricePerNight = "price_per_night"
	FieldAmenities     = "amenities"
	FieldImages        = "images"
	FieldActive        = "active"
)

// Property is a rental listing. PricePerNight is stored in integer cents.
type Property struct {
	ID            string         `db:"id"`
	OwnerID       string         `db:"owner_id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	City          string         `db:"city"`
	State         string         `db:"state"`
	Address       string         `db:"address"`
	Capacity      int            `db:"capacity"`
	Bedrooms      int            `db:"bedrooms"`
	Bathrooms     int            `db:"bathrooms"`
	PricePerNight int64          `db:"price_per_night"`
	Amenities     pq.StringArray `db:"amenities"`
	Images        pq.StringArray `db:"images"`
	Active        bool           `db:"active"`
	model.Metadata
}

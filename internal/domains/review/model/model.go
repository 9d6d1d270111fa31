package model

import (
	"recanto/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldBookingID  = "booking_id"
	FieldGuestID    = "guest_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldResponse   = "response"
)

// Review is left by a guest after a completed stay. One review per booking;
// Response holds an optional reply from the property owner.
type Review struct {
	ID         string  `db:"id"`
	PropertyID string  `db:"property_id"`
	BookingID  string  `db:"booking_id"`
	GuestID    string  `db:"guest_id"`
	Rating     int     `db:"rating"`
	Comment    string  `db:"comment"`
	Response   *string `db:"response"`
	model.Metadata
}

package model

import (
	"recanto/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldType    = "type"
	FieldTitle   = "title"
	FieldMessage = "message"
	FieldRead    = "read"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingConfirmed = "booking_confirmed"
	TypeBookingCancelled = "booking_cancelled"
	TypeCheckIn          = "check_in"
	TypeCheckOut         = "check_out"
	TypeProblemReported  = "problem_reported"
	TypeDepositRefunded  = "deposit_refunded"
	TypePaymentReceived  = "payment_received"
	TypePremiumUpgraded  = "premium_upgraded"
	TypeReviewReceived   = "review_received"
)

type Notification struct {
	ID      string `db:"id"`
	UserID  string `db:"user_id"`
	Type    string `db:"type"`
	Title   string `db:"title"`
	Message string `db:"message"`
	Read    bool   `db:"read"`
	model.Metadata
}

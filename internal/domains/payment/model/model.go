package model

import (
	"recanto/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldTransactionID = "transaction_id"
)

const (
	TypePremiumUpgrade = "premium_upgrade"
	TypeDeposit        = "deposit"
	TypeFullPayment    = "full_payment"
	TypeRefund         = "refund"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Payment records a money movement. Amount is integer cents. BookingID is
// set for booking-scoped payments only; TransactionID carries the external
// processor reference once the payment completes.
type Payment struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	BookingID     *string `db:"booking_id"`
	Amount        int64   `db:"amount"`
	Type          string  `db:"type"`
	Status        string  `db:"status"`
	TransactionID *string `db:"transaction_id"`
	model.Metadata
}

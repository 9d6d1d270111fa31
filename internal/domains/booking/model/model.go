package model

import (
	"time"

	"recanto/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                     = "id"
	FieldPropertyID             = "property_id"
	FieldGuestID                = "guest_id"
	FieldCheckIn                = "check_in"
	FieldCheckOut               = "check_out"
	FieldNights                 = "nights"
	FieldTotalAmount            = "total_amount"
	FieldDepositAmount          = "deposit_amount"
	FieldStatus                 = "status"
	FieldFullPaymentAmount      = "full_payment_amount"
	FieldFullPaymentPaid        = "full_payment_paid"
	FieldFullPaymentPaidAt      = "full_payment_paid_at"
	FieldDepositPaid            = "deposit_paid"
	FieldDepositRefunded        = "deposit_refunded"
	FieldDepositRefundedAt      = "deposit_refunded_at"
	FieldHasIssues              = "has_issues"
	FieldGuestCheckInConfirmed  = "guest_check_in_confirmed"
	FieldOwnerCheckInConfirmed  = "owner_check_in_confirmed"
	FieldGuestCheckOutConfirmed = "guest_check_out_confirmed"
	FieldOwnerCheckOutConfirmed = "owner_check_out_confirmed"
	FieldProblemDescription     = "problem_description"
)

// Booking holds a stay reservation. Amounts are integer cents; check-in and
// check-out are calendar dates. The two confirmation flag pairs implement the
// two-party handshake: a stage only advances once both guest and owner have
// confirmed it.
type Booking struct {
	ID                     string     `db:"id"`
	PropertyID             string     `db:"property_id"`
	GuestID                string     `db:"guest_id"`
	CheckIn                time.Time  `db:"check_in"`
	CheckOut               time.Time  `db:"check_out"`
	Nights                 int        `db:"nights"`
	TotalAmount            int64      `db:"total_amount"`
	DepositAmount          int64      `db:"deposit_amount"`
	FullPaymentAmount      int64      `db:"full_payment_amount"`
	Status                 string     `db:"status"`
	DepositPaid            bool       `db:"deposit_paid"`
	FullPaymentPaid        bool       `db:"full_payment_paid"`
	FullPaymentPaidAt      *time.Time `db:"full_payment_paid_at"`
	DepositRefunded        bool       `db:"deposit_refunded"`
	DepositRefundedAt      *time.Time `db:"deposit_refunded_at"`
	HasIssues              bool       `db:"has_issues"`
	GuestCheckInConfirmed  bool       `db:"guest_check_in_confirmed"`
	OwnerCheckInConfirmed  bool       `db:"owner_check_in_confirmed"`
	GuestCheckOutConfirmed bool       `db:"guest_check_out_confirmed"`
	OwnerCheckOutConfirmed bool       `db:"owner_check_out_confirmed"`
	ProblemDescription     *string    `db:"problem_description"`
	model.Metadata
}

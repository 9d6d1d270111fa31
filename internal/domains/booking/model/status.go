package model

import (
	"time"
)

const (
	StatusPending          = "pending"
	StatusConfirmed        = "confirmed"
	StatusCheckedIn        = "checked_in"
	StatusCompleted        = "completed"
	StatusCancelledByGuest = "cancelled_by_guest"
	StatusCancelledByOwner = "cancelled_by_owner"
	StatusDisputed         = "disputed"
)

const hoursPerNight = 24

// CancelledStatuses are excluded from availability conflict checks: a
// cancelled stay frees its dates.
func CancelledStatuses() []string {
	return []string{StatusCancelledByGuest, StatusCancelledByOwner}
}

// IsCancelled reports whether the status is one of the cancellation statuses.
func IsCancelled(status string) bool {
	return status == StatusCancelledByGuest || status == StatusCancelledByOwner
}

// IsTerminal reports whether no further transition is allowed from status.
func IsTerminal(status string) bool {
	switch status {
	case StatusCompleted, StatusCancelledByGuest, StatusCancelledByOwner, StatusDisputed:
		return true
	}

	return false
}

// CanConfirmCheckIn reports whether a check-in confirmation is accepted in
// the given status. Check-in confirmations are valid while the stay has not
// started: pending (deposit outstanding) or confirmed.
func CanConfirmCheckIn(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

// CanConfirmCheckOut reports whether a check-out confirmation is accepted in
// the given status. Both parties must have completed check-in first.
func CanConfirmCheckOut(status string) bool {
	return status == StatusCheckedIn
}

// NightsBetween computes the number of nights between two dates, rounding
// partial days up.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}

	hours := int64(diff.Hours())
	nights := hours / hoursPerNight

	if hours%hoursPerNight != 0 {
		nights++
	}

	return int(nights)
}

// TotalAmount is the stay price in cents: nights times the nightly rate.
func TotalAmount(nights int, pricePerNight int64) int64 {
	return int64(nights) * pricePerNight
}

// DepositAmount computes the security deposit in cents, rounding up so the
// platform never undercollects. percent is a whole-number percentage.
func DepositAmount(totalAmount int64, percent int) int64 {
	if percent <= 0 {
		return 0
	}

	return (totalAmount*int64(percent) + 99) / 100
}

// FullPaymentAmount is the remainder due after the deposit; the two always
// sum back to the total.
func FullPaymentAmount(totalAmount, depositAmount int64) int64 {
	return totalAmount - depositAmount
}

// Overlaps reports whether two half-open date ranges [aIn, aOut) and
// [bIn, bOut) intersect. Back-to-back stays sharing a boundary date do not
// overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

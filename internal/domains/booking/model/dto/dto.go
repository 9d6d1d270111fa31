package dto

import (
	"time"

	"github.com/google/uuid"

	"recanto/internal/domains/booking/model"
	"recanto/shared"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
)

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   validate:"required"`
}

// Dates parses the requested stay window. Dates are calendar days in the
// application timezone.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format")
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format")
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(guestID string, checkIn, checkOut time.Time, pricePerNight int64, depositPercent int) model.Booking {
	nights := model.NightsBetween(checkIn, checkOut)
	total := model.TotalAmount(nights, pricePerNight)
	deposit := model.DepositAmount(total, depositPercent)

	return model.Booking{
		ID:                uuid.NewString(),
		PropertyID:        c.PropertyID,
		GuestID:           guestID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Nights:            nights,
		TotalAmount:       total,
		DepositAmount:     deposit,
		FullPaymentAmount: model.FullPaymentAmount(total, deposit),
		Status:            model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

type ReportProblemRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

type BookingResponse struct {
	ID                     string  `json:"id"`
	PropertyID             string  `json:"property_id"`
	GuestID                string  `json:"guest_id"`
	CheckIn                string  `json:"check_in"`
	CheckOut               string  `json:"check_out"`
	Nights                 int     `json:"nights"`
	TotalAmount            int64   `json:"total_amount"`
	DepositAmount          int64   `json:"deposit_amount"`
	FullPaymentAmount      int64   `json:"full_payment_amount"`
	Status                 string  `json:"status"`
	DepositPaid            bool    `json:"deposit_paid"`
	FullPaymentPaid        bool    `json:"full_payment_paid"`
	FullPaymentPaidAt      string  `json:"full_payment_paid_at,omitempty"`
	DepositRefunded        bool    `json:"deposit_refunded"`
	DepositRefundedAt      string  `json:"deposit_refunded_at,omitempty"`
	HasIssues              bool    `json:"has_issues"`
	GuestCheckInConfirmed  bool    `json:"guest_check_in_confirmed"`
	OwnerCheckInConfirmed  bool    `json:"owner_check_in_confirmed"`
	GuestCheckOutConfirmed bool    `json:"guest_check_out_confirmed"`
	OwnerCheckOutConfirmed bool    `json:"owner_check_out_confirmed"`
	ProblemDescription     *string `json:"problem_description,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.GuestID = model.GuestID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights
	r.TotalAmount = model.TotalAmount
	r.DepositAmount = model.DepositAmount
	r.FullPaymentAmount = model.FullPaymentAmount
	r.Status = model.Status
	r.DepositPaid = model.DepositPaid
	r.FullPaymentPaid = model.FullPaymentPaid
	r.DepositRefunded = model.DepositRefunded
	r.HasIssues = model.HasIssues
	r.GuestCheckInConfirmed = model.GuestCheckInConfirmed
	r.OwnerCheckInConfirmed = model.OwnerCheckInConfirmed
	r.GuestCheckOutConfirmed = model.GuestCheckOutConfirmed
	r.OwnerCheckOutConfirmed = model.OwnerCheckOutConfirmed
	r.ProblemDescription = model.ProblemDescription

	if model.FullPaymentPaidAt != nil {
		r.FullPaymentPaidAt = timezone.Format(*model.FullPaymentPaidAt, constant.DateFormat)
	}

	if model.DepositRefundedAt != nil {
		r.DepositRefundedAt = timezone.Format(*model.DepositRefundedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type CreateBookingResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	Nights            int    `json:"nights"`
	TotalAmount       int64  `json:"total_amount"`
	DepositAmount     int64  `json:"deposit_amount"`
	FullPaymentAmount int64  `json:"full_payment_amount"`
}

func (r *CreateBookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Status = model.Status
	r.Nights = model.Nights
	r.TotalAmount = model.TotalAmount
	r.DepositAmount = model.DepositAmount
	r.FullPaymentAmount = model.FullPaymentAmount
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

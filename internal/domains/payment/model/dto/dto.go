package dto

import (
	"github.com/google/uuid"

	"recanto/internal/domains/payment/model"
	"recanto/shared"
	gDto "recanto/shared/dto"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
)

type ConfirmPaymentRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,max=128"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	BookingID     *string `json:"booking_id,omitempty"`
	Amount        int64   `json:"amount"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Type = model.Type
	r.Status = model.Status
	r.TransactionID = model.TransactionID
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

// NewPayment builds a payment row owned by user. bookingID may be nil.
func NewPayment(user, paymentType, status string, amount int64, bookingID *string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		UserID:    user,
		BookingID: bookingID,
		Amount:    amount,
		Type:      paymentType,
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

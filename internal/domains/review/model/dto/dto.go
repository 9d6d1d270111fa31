package dto

import (
	"github.com/google/uuid"

	"recanto/internal/domains/review/model"
	"recanto/shared"
	gDto "recanto/shared/dto"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
)

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"required,max=2000"`
}

func (c *CreateReviewRequest) ToModel(propertyID, guestID string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		BookingID:  c.BookingID,
		GuestID:    guestID,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

type ReviewResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	BookingID  string  `json:"booking_id"`
	GuestID    string  `json:"guest_id"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	Response   *string `json:"response,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.BookingID = model.BookingID
	r.GuestID = model.GuestID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Response = model.Response
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

package dto

import (
	"github.com/google/uuid"

	"recanto/internal/domains/notification/model"
	"recanto/shared"
	gDto "recanto/shared/dto"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
)

// CreateNotificationRequest is built by other domains when a domain event
// happens, never from client input.
type CreateNotificationRequest struct {
	UserID  string
	Type    string
	Title   string
	Message string
}

func (c *CreateNotificationRequest) ToModel() model.Notification {
	return model.Notification{
		ID:      uuid.NewString(),
		UserID:  c.UserID,
		Type:    c.Type,
		Title:   c.Title,
		Message: c.Message,
		Read:    false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.UserID,
			ModifiedBy: c.UserID,
		},
	}
}

type NotificationResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Type = model.Type
	r.Title = model.Title
	r.Message = model.Message
	r.Read = model.Read
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

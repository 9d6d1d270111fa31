package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"recanto/config"
	kafkaMocks "recanto/infras/kafka/mocks"
	"recanto/infras/otel/mocks"
	notificationMocks "recanto/internal/domains/notification/mocks"
	"recanto/internal/domains/notification/model"
	"recanto/internal/domains/notification/model/dto"
	"recanto/internal/domains/notification/service"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
)

const userID = "user-id-123"

func userContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func TestNotificationService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	t.Run("stores the notification", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notification model.Notification) error {
				assert.Equal(t, userID, notification.UserID)
				assert.Equal(t, model.TypeBookingCreated, notification.Type)
				assert.False(t, notification.Read)

				return nil
			})

		err := svc.Notify(context.Background(), dto.CreateNotificationRequest{
			UserID:  userID,
			Type:    model.TypeBookingCreated,
			Title:   "New booking request",
			Message: "Your property was booked",
		})
		assert.NoError(t, err)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(3, nil)

	res, err := svc.UnreadCount(userContext())
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "marks own notification",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Notification{ID: "notification-1", UserID: userID}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, true, fields[model.FieldRead])

						return nil
					})
			},
		},
		{
			name: "notification not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Notification{}, nil)
			},
			wantErr: true,
		},
		{
			name: "cannot mark someone else's notification",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Notification{ID: "notification-1", UserID: "someone-else"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.MarkRead(userContext(), "notification-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Notification{
			{ID: "notification-1", UserID: userID, Type: model.TypeBookingConfirmed, Title: "Booking confirmed"},
		}, nil)

	res, err := svc.GetMine(userContext(), gDto.QueryParams{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, res.Notifications, 1)
	assert.Equal(t, 1, res.TotalData)
}

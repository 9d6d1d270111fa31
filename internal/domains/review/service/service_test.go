package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"recanto/config"
	"recanto/infras/otel/mocks"
	bookingMocks "recanto/internal/domains/booking/mocks"
	bookingModel "recanto/internal/domains/booking/model"
	notificationMocks "recanto/internal/domains/notification/mocks"
	propertyMocks "recanto/internal/domains/property/mocks"
	propertyModel "recanto/internal/domains/property/model"
	reviewMocks "recanto/internal/domains/review/mocks"
	"recanto/internal/domains/review/model"
	"recanto/internal/domains/review/model/dto"
	"recanto/internal/domains/review/service"
	cacheMocks "recanto/shared/cache/mocks"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
)

const (
	guestID    = "guest-id-123"
	ownerID    = "owner-id-456"
	propertyID = "property-id-789"
	bookingID  = "booking-id-321"
)

func guestContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, guestID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewRepo := reviewMocks.NewMockReview(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockReviewRepo, mockBookingRepo, mockPropertyRepo, mockNotification, cfg, mockCache, mockOtel)

	// cache invalidation runs in a detached goroutine
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	completedBooking := func() bookingModel.Booking {
		return bookingModel.Booking{
			ID:         bookingID,
			PropertyID: propertyID,
			GuestID:    guestID,
			Status:     bookingModel.StatusCompleted,
		}
	}

	req := dto.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    5,
		Comment:   "Lovely place, spotless and quiet",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful review",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				mockReviewRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockReviewRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, propertyID, review.PropertyID)
						assert.Equal(t, guestID, review.GuestID)
						assert.Equal(t, 5, review.Rating)

						return nil
					})

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: propertyID, OwnerID: ownerID, Title: "Chalé na Serra"}, nil)

				mockNotification.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "booking not found",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "only the guest can review",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, ownerID),
				constant.ContextKeyUserRole, constant.RoleOwner),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)
			},
			wantErr: true,
		},
		{
			name: "stay not completed",
			ctx:  guestContext(),
			setupMock: func() {
				active := completedBooking()
				active.Status = bookingModel.StatusCheckedIn

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(active, nil)
			},
			wantErr: true,
		},
		{
			name: "booking already reviewed",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				mockReviewRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(tt.ctx, req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingID, res.BookingID)
		})
	}
}

func TestReviewService_GetByProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewRepo := reviewMocks.NewMockReview(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockReviewRepo, mockBookingRepo, mockPropertyRepo, mockNotification, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.NotFound("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockReviewRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockReviewRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Review{
			{ID: "review-1", PropertyID: propertyID, BookingID: bookingID, GuestID: guestID, Rating: 5, Comment: "Great"},
			{ID: "review-2", PropertyID: propertyID, BookingID: "booking-2", GuestID: "guest-2", Rating: 4, Comment: "Nice"},
		}, nil)

	res, err := svc.GetByProperty(context.Background(), propertyID, gDto.QueryParams{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, res.Reviews, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

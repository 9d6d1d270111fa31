package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"recanto/config"
	"recanto/infras/otel/mocks"
	availabilityMocks "recanto/internal/domains/availability/mocks"
	"recanto/internal/domains/availability/model"
	"recanto/internal/domains/availability/model/dto"
	"recanto/internal/domains/availability/service"
	propertyMocks "recanto/internal/domains/property/mocks"
	propertyModel "recanto/internal/domains/property/model"
	"recanto/shared/constant"
)

const (
	ownerID    = "owner-id-456"
	propertyID = "property-id-789"
)

func ownerContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, ownerID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleOwner)
}

func TestAvailabilityService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPropertyRepo, cfg, mockOtel)

	priceOverride := int64(35000)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.SetAvailabilityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "owner blocks and reprices dates",
			ctx:  ownerContext(),
			req: dto.SetAvailabilityRequest{
				Overrides: []dto.OverrideEntry{
					{Date: "2026-12-24", Available: false},
					{Date: "2026-12-31", Available: true, PriceOverride: &priceOverride},
				},
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: propertyID, OwnerID: ownerID}, nil)

				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, models []model.AvailabilityOverride) error {
						assert.Len(t, models, 2)
						assert.False(t, models[0].Available)
						assert.Equal(t, priceOverride, *models[1].PriceOverride)

						return nil
					})
			},
		},
		{
			name: "property not found",
			ctx:  ownerContext(),
			req: dto.SetAvailabilityRequest{
				Overrides: []dto.OverrideEntry{{Date: "2026-12-24"}},
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr: true,
		},
		{
			name: "non-owner cannot set availability",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "someone-else"),
				constant.ContextKeyUserRole, constant.RoleUser),
			req: dto.SetAvailabilityRequest{
				Overrides: []dto.OverrideEntry{{Date: "2026-12-24"}},
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: propertyID, OwnerID: ownerID}, nil)
			},
			wantErr: true,
		},
		{
			name: "duplicate dates rejected",
			ctx:  ownerContext(),
			req: dto.SetAvailabilityRequest{
				Overrides: []dto.OverrideEntry{
					{Date: "2026-12-24"},
					{Date: "2026-12-24"},
				},
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: propertyID, OwnerID: ownerID}, nil)
			},
			wantErr: true,
		},
		{
			name: "malformed date rejected",
			ctx:  ownerContext(),
			req: dto.SetAvailabilityRequest{
				Overrides: []dto.OverrideEntry{{Date: "24/12/2026"}},
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: propertyID, OwnerID: ownerID}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Set(tt.ctx, propertyID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAvailabilityService_HasBlockedDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPropertyRepo, cfg, mockOtel)

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	t.Run("no blocked dates", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		blocked, err := svc.HasBlockedDates(context.Background(), propertyID, checkIn, checkOut)
		assert.NoError(t, err)
		assert.False(t, blocked)
	})

	t.Run("blocked date in range", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		blocked, err := svc.HasBlockedDates(context.Background(), propertyID, checkIn, checkOut)
		assert.NoError(t, err)
		assert.True(t, blocked)
	})
}

func TestAvailabilityService_GetByProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPropertyRepo, cfg, mockOtel)

	t.Run("lists overrides sorted by date", func(t *testing.T) {
		mockPropertyRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.AvailabilityOverride{
				{PropertyID: propertyID, Date: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC), Available: false},
			}, nil)

		res, err := svc.GetByProperty(context.Background(), propertyID, dto.DateRange{})
		assert.NoError(t, err)
		assert.Equal(t, propertyID, res.PropertyID)
		assert.Len(t, res.Overrides, 1)
		assert.Equal(t, "2026-12-24", res.Overrides[0].Date)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockPropertyRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetByProperty(context.Background(), propertyID, dto.DateRange{})
		assert.Error(t, err)
	})
}

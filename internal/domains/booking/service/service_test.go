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
	bookingMocks "recanto/internal/domains/booking/mocks"
	"recanto/internal/domains/booking/model"
	"recanto/internal/domains/booking/model/dto"
	"recanto/internal/domains/booking/service"
	notificationMocks "recanto/internal/domains/notification/mocks"
	propertyMocks "recanto/internal/domains/property/mocks"
	propertyModel "recanto/internal/domains/property/model"
	"recanto/shared/constant"
	"recanto/shared/failure"
	gModel "recanto/shared/model"
	"recanto/shared/timezone"
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

func ownerContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, ownerID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleOwner)
}

func validProperty() propertyModel.Property {
	return propertyModel.Property{
		ID:            propertyID,
		OwnerID:       ownerID,
		Title:         "Chalé na Serra",
		PricePerNight: 25500,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

func validBooking(status string) model.Booking {
	return model.Booking{
		ID:            bookingID,
		PropertyID:    propertyID,
		GuestID:       guestID,
		CheckIn:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		Nights:            5,
		TotalAmount:       127500,
		DepositAmount:     12750,
		FullPaymentAmount: 114750,
		Status:            status,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.DepositPercent = 10

	svc := service.New(mockBookingRepo, mockPropertyRepo, mockAvailability, mockNotification, cfg, mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.CreateBookingResponse)
	}{
		{
			name: "successful booking",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockAvailability.EXPECT().
					HasBlockedDates(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockBookingRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotification.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				assert.Equal(t, 5, res.Nights)
				assert.Equal(t, int64(127500), res.TotalAmount)
				assert.Equal(t, int64(12750), res.DepositAmount)
				assert.Equal(t, int64(114750), res.FullPaymentAmount)
				assert.Equal(t, res.TotalAmount, res.DepositAmount+res.FullPaymentAmount)
				assert.Equal(t, model.StatusPending, res.Status)
			},
		},
		{
			name: "check-out not after check-in",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-06",
				CheckOut:   "2026-09-01",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed date",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "01/09/2026",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "property not found",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive property",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				property := validProperty()
				property.Active = false

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)
			},
			wantErr: true,
		},
		{
			name: "owner booking own property",
			ctx:  ownerContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
		{
			name: "dates blocked by owner",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockAvailability.EXPECT().
					HasBlockedDates(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "overlapping booking",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockAvailability.EXPECT().
					HasBlockedDates(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr: true,
		},
		{
			name: "insert conflict from exclusion constraint",
			ctx:  guestContext(),
			req: dto.CreateBookingRequest{
				PropertyID: propertyID,
				CheckIn:    "2026-09-01",
				CheckOut:   "2026-09-06",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockAvailability.EXPECT().
					HasBlockedDates(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockBookingRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("property is already booked for the selected dates"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.DepositPercent = 10

	svc := service.New(mockBookingRepo, mockPropertyRepo, mockAvailability, mockNotification, cfg, mockOtel)

	tests := []struct {
		name       string
		ctx        context.Context
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "guest confirms first",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusConfirmed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				halfConfirmed := validBooking(model.StatusConfirmed)
				halfConfirmed.GuestCheckInConfirmed = true

				mockBookingRepo.EXPECT().
					ConfirmCheckIn(gomock.Any(), bookingID, guestID, true).
					Return(halfConfirmed, nil)
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "owner completes the handshake",
			ctx:  ownerContext(),
			setupMock: func() {
				pending := validBooking(model.StatusConfirmed)
				pending.GuestCheckInConfirmed = true

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				checkedIn := validBooking(model.StatusCheckedIn)
				checkedIn.GuestCheckInConfirmed = true
				checkedIn.OwnerCheckInConfirmed = true

				mockBookingRepo.EXPECT().
					ConfirmCheckIn(gomock.Any(), bookingID, ownerID, false).
					Return(checkedIn, nil)

				mockNotification.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusCheckedIn,
		},
		{
			name: "stranger cannot confirm",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "someone-else"),
				constant.ContextKeyUserRole, constant.RoleUser),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusConfirmed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
		{
			name: "admin cannot confirm check-in",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
				constant.ContextKeyUserRole, constant.RoleAdmin),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusConfirmed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
		{
			name: "wrong status",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusCompleted), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "status changed concurrently",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusConfirmed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockBookingRepo.EXPECT().
					ConfirmCheckIn(gomock.Any(), bookingID, guestID, true).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckIn(tt.ctx, bookingID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockPropertyRepo, mockAvailability, mockNotification, cfg, mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "owner completes check-out and deposit is released",
			ctx:  ownerContext(),
			setupMock: func() {
				checkedIn := validBooking(model.StatusCheckedIn)
				checkedIn.GuestCheckOutConfirmed = true

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedIn, nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				refundedAt := timezone.Now()
				completed := validBooking(model.StatusCompleted)
				completed.GuestCheckOutConfirmed = true
				completed.OwnerCheckOutConfirmed = true
				completed.DepositRefunded = true
				completed.DepositRefundedAt = &refundedAt

				mockBookingRepo.EXPECT().
					ConfirmCheckOut(gomock.Any(), bookingID, ownerID, false).
					Return(completed, nil)

				// one notification for the counterpart, one for the refund
				mockNotification.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, model.StatusCompleted, res.Status)
				assert.True(t, res.DepositRefunded)
				assert.NotEmpty(t, res.DepositRefundedAt)
			},
		},
		{
			name: "check-out before check-in",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusConfirmed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
		{
			name: "disputed booking cannot check out",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusDisputed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckOut(tt.ctx, bookingID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockPropertyRepo, mockAvailability, mockNotification, cfg, mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
	}{
		{
			name: "guest cancels pending booking",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusPending), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockBookingRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelledByGuest, fields[model.FieldStatus])

						return nil
					})

				mockNotification.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "owner cancels confirmed booking",
			ctx:  ownerContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusConfirmed), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)

				mockBookingRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelledByOwner, fields[model.FieldStatus])

						return nil
					})

				mockNotification.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "completed booking cannot be cancelled",
			ctx:  guestContext(),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(model.StatusCompleted), nil)

				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProperty(), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(tt.ctx, bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_ReportProblem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockPropertyRepo, mockAvailability, mockNotification, cfg, mockOtel)

	req := dto.ReportProblemRequest{Description: "Broken window and missing keys"}

	t.Run("owner reports a problem during the stay", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validBooking(model.StatusCheckedIn), nil)

		mockPropertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		mockBookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusDisputed, fields[model.FieldStatus])
				assert.Equal(t, true, fields[model.FieldHasIssues])
				assert.Equal(t, req.Description, fields[model.FieldProblemDescription])

				return nil
			})

		mockNotification.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ReportProblem(ownerContext(), bookingID, req)
		assert.NoError(t, err)
	})

	t.Run("guest cannot report a problem", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validBooking(model.StatusCheckedIn), nil)

		mockPropertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		err := svc.ReportProblem(guestContext(), bookingID, req)
		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("finalized booking rejects problem reports", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validBooking(model.StatusCancelledByGuest), nil)

		mockPropertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		err := svc.ReportProblem(ownerContext(), bookingID, req)
		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailabilityService(ctrl)
	mockNotification := notificationMocks.NewMockNotificationService(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockPropertyRepo, mockAvailability, mockNotification, cfg, mockOtel)

	t.Run("admin can view any booking", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validBooking(model.StatusConfirmed), nil)

		mockPropertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		ctx := context.WithValue(
			context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
			constant.ContextKeyUserRole, constant.RoleAdmin)

		res, err := svc.Get(ctx, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, bookingID, res.ID)
	})

	t.Run("stranger cannot view a booking", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validBooking(model.StatusConfirmed), nil)

		mockPropertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		ctx := context.WithValue(
			context.WithValue(context.Background(), constant.ContextKeyUserID, "someone-else"),
			constant.ContextKeyUserRole, constant.RoleUser)

		_, err := svc.Get(ctx, bookingID)
		assert.Error(t, err)
	})
}

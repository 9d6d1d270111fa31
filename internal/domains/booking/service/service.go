package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"recanto/config"
	"recanto/infras/otel"
	availabilityService "recanto/internal/domains/availability/service"
	"recanto/internal/domains/booking/model"
	"recanto/internal/domains/booking/model/dto"
	"recanto/internal/domains/booking/repository"
	notificationModel "recanto/internal/domains/notification/model"
	notificationDto "recanto/internal/domains/notification/model/dto"
	notificationService "recanto/internal/domains/notification/service"
	propertyModel "recanto/internal/domains/property/model"
	propertyRepo "recanto/internal/domains/property/repository"
	"recanto/shared"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
	"recanto/shared/timezone"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByProperty(ctx context.Context, propertyID string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	ReportProblem(ctx context.Context, id string, req dto.ReportProblemRequest) error
}

type serviceImpl struct {
	repo         repository.Booking
	propertyRepo propertyRepo.Property
	availability availabilityService.Availability
	notification notificationService.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	propertyRepo propertyRepo.Property,
	availability availabilityService.Availability,
	notification notificationService.Notification,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		availability: availability,
		notification: notification,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user identity")
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(req.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty || !property.Active {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	if property.OwnerID == user {
		return res, failure.BadRequestFromString("cannot book your own property") // nolint:wrapcheck
	}

	blocked, err := s.availability.HasBlockedDates(ctx, property.ID, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	if blocked {
		return res, failure.BadRequestFromString("selected dates are not available") // nolint:wrapcheck
	}

	overlapping, err := s.repo.Count(ctx, overlapFilter(property.ID, checkIn, checkOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if overlapping > 0 {
		return res, failure.Conflict("property is already booked for the selected dates") // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut, property.PricePerNight, s.cfg.Booking.DepositPercent)

	// The exclusion constraint closes the race between the overlap check
	// above and the insert.
	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.notify(ctx, notificationDto.CreateNotificationRequest{
		UserID:  property.OwnerID,
		Type:    notificationModel.TypeBookingCreated,
		Title:   "New booking request",
		Message: fmt.Sprintf("Your property %s was booked from %s to %s", property.Title, req.CheckIn, req.CheckOut),
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, req, filter)
}

func (s *serviceImpl) GetByProperty(ctx context.Context, propertyID string, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if property.OwnerID != user && role != constant.RoleAdmin {
		return res, failure.ResourceRestrictedError
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, _, _, err := s.resolveParticipant(ctx, id, true)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, property, asGuest, err := s.resolveParticipant(ctx, id, false)
	if err != nil {
		return res, err
	}

	if !model.CanConfirmCheckIn(booking.Status) {
		return res, failure.BadRequestFromString("booking cannot be checked in from status " + booking.Status) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updated, err := s.repo.ConfirmCheckIn(ctx, id, user, asGuest)
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm check-in")

		return res, fmt.Errorf("failed to confirm check-in: %w", err)
	}

	if updated.ID == constant.Empty {
		return res, failure.Conflict("booking is no longer in a confirmable state") // nolint:wrapcheck
	}

	if updated.Status == model.StatusCheckedIn {
		s.notifyCounterpart(ctx, updated, property, asGuest, notificationModel.TypeCheckIn,
			"Check-in completed", "Both parties confirmed check-in, the stay has started")
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, property, asGuest, err := s.resolveParticipant(ctx, id, false)
	if err != nil {
		return res, err
	}

	if !model.CanConfirmCheckOut(booking.Status) {
		return res, failure.BadRequestFromString("booking cannot be checked out from status " + booking.Status) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updated, err := s.repo.ConfirmCheckOut(ctx, id, user, asGuest)
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm check-out")

		return res, fmt.Errorf("failed to confirm check-out: %w", err)
	}

	if updated.ID == constant.Empty {
		return res, failure.Conflict("booking is no longer in a confirmable state") // nolint:wrapcheck
	}

	if updated.Status == model.StatusCompleted {
		s.notifyCounterpart(ctx, updated, property, asGuest, notificationModel.TypeCheckOut,
			"Stay completed", "Both parties confirmed check-out")

		s.notify(ctx, notificationDto.CreateNotificationRequest{
			UserID:  updated.GuestID,
			Type:    notificationModel.TypeDepositRefunded,
			Title:   "Deposit refunded",
			Message: "Your security deposit has been released",
		})
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, property, asGuest, err := s.resolveParticipant(ctx, id, true)
	if err != nil {
		return err
	}

	if model.IsTerminal(booking.Status) {
		return failure.BadRequestFromString("booking is already finalized") // nolint:wrapcheck
	}

	status := model.StatusCancelledByOwner
	if asGuest {
		status = model.StatusCancelledByGuest
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = status
	s.notifyCounterpart(ctx, booking, property, asGuest, notificationModel.TypeBookingCancelled,
		"Booking cancelled", fmt.Sprintf("Booking for %s was cancelled", property.Title))

	return nil
}

func (s *serviceImpl) ReportProblem(ctx context.Context, id string, req dto.ReportProblemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReportProblem")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, property, asGuest, err := s.resolveParticipant(ctx, id, true)
	if err != nil {
		return err
	}

	// Only the property owner (or an admin) may attach an issue; guests
	// raise problems with the owner out of band.
	if asGuest {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if model.IsTerminal(booking.Status) {
		return failure.BadRequestFromString("booking is already finalized") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// A reported problem parks the booking in disputed and holds the
	// deposit until resolved out of band.
	updatedFields := map[string]any{
		model.FieldStatus:             model.StatusDisputed,
		model.FieldHasIssues:          true,
		model.FieldProblemDescription: req.Description,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to report booking problem")

		return fmt.Errorf("failed to report booking problem: %w", err)
	}

	booking.Status = model.StatusDisputed
	s.notifyCounterpart(ctx, booking, property, asGuest, notificationModel.TypeProblemReported,
		"Problem reported", fmt.Sprintf("A problem was reported on booking for %s", property.Title))

	return nil
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// resolveParticipant loads the booking and its property and checks the caller
// is the guest or the property owner. allowAdmin additionally admits admins;
// check-in and check-out confirmations stay strictly two-party.
func (s *serviceImpl) resolveParticipant(ctx context.Context, id string, allowAdmin bool) (model.Booking, propertyModel.Property, bool, error) {
	var property propertyModel.Property

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, property, false, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, property, false, failure.NotFound("booking not found")
	}

	property, err = s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return booking, property, false, fmt.Errorf("failed to get property: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch {
	case user == booking.GuestID:
		return booking, property, true, nil
	case user == property.OwnerID:
		return booking, property, false, nil
	case allowAdmin && role == constant.RoleAdmin:
		return booking, property, false, nil
	default:
		return booking, property, false, failure.ResourceRestrictedError
	}
}

func (s *serviceImpl) notify(ctx context.Context, req notificationDto.CreateNotificationRequest) {
	if err := s.notification.Notify(ctx, req); err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("failed to send booking notification")
	}
}

// notifyCounterpart notifies the other party of the booking.
func (s *serviceImpl) notifyCounterpart(ctx context.Context, booking model.Booking, property propertyModel.Property, asGuest bool, notificationType, title, message string) {
	target := booking.GuestID
	if asGuest {
		target = property.OwnerID
	}

	s.notify(ctx, notificationDto.CreateNotificationRequest{
		UserID:  target,
		Type:    notificationType,
		Title:   title,
		Message: message,
	})
}

// overlapFilter matches live bookings whose half-open stay window intersects
// [checkIn, checkOut). Cancelled bookings free their dates.
func overlapFilter(propertyID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_check_in",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_check_out",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotIn,
				Value:    model.CancelledStatuses(),
				Table:    model.TableName,
			},
		},
	}
}

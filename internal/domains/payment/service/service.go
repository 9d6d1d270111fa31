package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"recanto/config"
	"recanto/infras/otel"
	bookingModel "recanto/internal/domains/booking/model"
	bookingRepo "recanto/internal/domains/booking/repository"
	notificationModel "recanto/internal/domains/notification/model"
	notificationDto "recanto/internal/domains/notification/model/dto"
	notificationService "recanto/internal/domains/notification/service"
	"recanto/internal/domains/payment/model"
	"recanto/internal/domains/payment/model/dto"
	"recanto/internal/domains/payment/repository"
	propertyModel "recanto/internal/domains/property/model"
	propertyRepo "recanto/internal/domains/property/repository"
	userModel "recanto/internal/domains/user/model"
	userRepo "recanto/internal/domains/user/repository"
	"recanto/shared"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
	"recanto/shared/timezone"
)

type Payment interface {
	MyPayments(ctx context.Context, req gDto.QueryParams) (dto.GetPaymentsResponse, error)
	Premium(ctx context.Context) (dto.PaymentResponse, error)
	PremiumConfirm(ctx context.Context, req dto.ConfirmPaymentRequest) (dto.PaymentResponse, error)
	ProcessDeposit(ctx context.Context, bookingID string, req dto.ConfirmPaymentRequest) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo         repository.Payment
	userRepo     userRepo.User
	bookingRepo  bookingRepo.Booking
	propertyRepo propertyRepo.Property
	notification notificationService.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	userRepo userRepo.User,
	bookingRepo bookingRepo.Booking,
	propertyRepo propertyRepo.Property,
	notification notificationService.Notification,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		userRepo:     userRepo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		notification: notification,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) MyPayments(ctx context.Context, req gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Premium opens a pending premium upgrade payment. The caller settles it with
// the processor and comes back through PremiumConfirm.
func (s *serviceImpl) Premium(ctx context.Context) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Premium")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user identity")
	}

	account, err := s.userRepo.Get(ctx, shared.FilterByID(user, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if account.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	if account.IsPremium {
		return res, failure.BadRequestFromString("account is already premium") // nolint:wrapcheck
	}

	payment := dto.NewPayment(user, model.TypePremiumUpgrade, model.StatusPending, int64(s.cfg.Payment.PremiumFeeCents), nil)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create premium payment")

		return res, fmt.Errorf("failed to create premium payment: %w", err)
	}

	res.FromModel(payment)

	return res, nil
}

// PremiumConfirm settles the pending upgrade payment and promotes the account
// to a premium owner.
func (s *serviceImpl) PremiumConfirm(ctx context.Context, req dto.ConfirmPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PremiumConfirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.repo.Get(ctx, pendingPremiumFilter(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get premium payment")

		return res, fmt.Errorf("failed to get premium payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("no pending premium payment") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCompleted,
		model.FieldTransactionID: req.TransactionID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(payment.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to complete premium payment")

		return res, fmt.Errorf("failed to complete premium payment: %w", err)
	}

	userFields := map[string]any{
		userModel.FieldRole:         constant.RoleOwner,
		userModel.FieldIsPremium:    true,
		userModel.FieldPremiumSince: timezone.Now(),
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	if err = s.userRepo.Update(ctx, userFields, shared.FilterByID(user, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to upgrade user to premium")

		return res, fmt.Errorf("failed to upgrade user to premium: %w", err)
	}

	s.notify(ctx, notificationDto.CreateNotificationRequest{
		UserID:  user,
		Type:    notificationModel.TypePremiumUpgraded,
		Title:   "Welcome to premium",
		Message: "Your account has been upgraded, you can now list properties",
	})

	payment.Status = model.StatusCompleted
	payment.TransactionID = &req.TransactionID
	res.FromModel(payment)

	return res, nil
}

// ProcessDeposit settles the security deposit of a booking. A paid deposit
// moves a pending booking to confirmed.
func (s *serviceImpl) ProcessDeposit(ctx context.Context, bookingID string, req dto.ConfirmPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessDeposit")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.GuestID != user {
		return res, failure.ResourceRestrictedError
	}

	if bookingModel.IsTerminal(booking.Status) {
		return res, failure.BadRequestFromString("booking is already finalized") // nolint:wrapcheck
	}

	if booking.DepositPaid {
		return res, failure.BadRequestFromString("deposit has already been paid") // nolint:wrapcheck
	}

	payment := dto.NewPayment(user, model.TypeDeposit, model.StatusCompleted, booking.DepositAmount, &booking.ID)
	payment.TransactionID = &req.TransactionID

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to record deposit payment")

		return res, fmt.Errorf("failed to record deposit payment: %w", err)
	}

	bookingFields := map[string]any{
		bookingModel.FieldDepositPaid: true,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if booking.Status == bookingModel.StatusPending {
		bookingFields[bookingModel.FieldStatus] = bookingModel.StatusConfirmed
	}

	if err = s.bookingRepo.Update(ctx, bookingFields, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to confirm booking after deposit")

		return res, fmt.Errorf("failed to confirm booking after deposit: %w", err)
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err == nil && property.ID != constant.Empty {
		s.notify(ctx, notificationDto.CreateNotificationRequest{
			UserID:  property.OwnerID,
			Type:    notificationModel.TypeBookingConfirmed,
			Title:   "Booking confirmed",
			Message: fmt.Sprintf("The deposit for %s was paid, the booking is confirmed", property.Title),
		})
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) notify(ctx context.Context, req notificationDto.CreateNotificationRequest) {
	if err := s.notification.Notify(ctx, req); err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("failed to send payment notification")
	}
}

func pendingPremiumFilter(user string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "payment_type",
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    model.TypePremiumUpgrade,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "payment_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}
}

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
	propertyModel "recanto/internal/domains/property/model"
	propertyRepo "recanto/internal/domains/property/repository"
	"recanto/internal/domains/review/model"
	"recanto/internal/domains/review/model/dto"
	"recanto/internal/domains/review/repository"
	"recanto/shared"
	"recanto/shared/cache"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
)

const (
	cacheGetReviewsByProperty = "review:property"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetByProperty(ctx context.Context, propertyID string, req gDto.QueryParams) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo         repository.Review
	bookingRepo  bookingRepo.Booking
	propertyRepo propertyRepo.Property
	notification notificationService.Notification
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Review,
	bookingRepo bookingRepo.Booking,
	propertyRepo propertyRepo.Property,
	notification notificationService.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		notification: notification,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create accepts a review only from the guest of a completed booking, one
// per booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
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

	if booking.Status != bookingModel.StatusCompleted {
		return res, failure.BadRequestFromString("only completed stays can be reviewed") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, bookingFilter(req.BookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	if exist {
		return res, failure.Conflict("booking has already been reviewed") // nolint:wrapcheck
	}

	review := req.ToModel(booking.PropertyID, user)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetReviewsByProperty, booking.PropertyID))
	}()

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err == nil && property.ID != constant.Empty {
		s.notifyOwner(ctx, property, review)
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetByProperty(ctx context.Context, propertyID string, req gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

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

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetReviewsByProperty, propertyID), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) notifyOwner(ctx context.Context, property propertyModel.Property, review model.Review) {
	err := s.notification.Notify(ctx, notificationDto.CreateNotificationRequest{
		UserID:  property.OwnerID,
		Type:    notificationModel.TypeReviewReceived,
		Title:   "New review",
		Message: fmt.Sprintf("%s received a %d-star review", property.Title, review.Rating),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send review notification")
	}
}

func bookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}
}

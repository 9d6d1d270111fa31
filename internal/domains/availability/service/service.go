package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"recanto/config"
	"recanto/infras/otel"
	"recanto/internal/domains/availability/model"
	"recanto/internal/domains/availability/model/dto"
	"recanto/internal/domains/availability/repository"
	propertyModel "recanto/internal/domains/property/model"
	propertyRepo "recanto/internal/domains/property/repository"
	"recanto/shared"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
)

type Availability interface {
	GetByProperty(ctx context.Context, propertyID string, rng dto.DateRange) (dto.GetAvailabilityResponse, error)
	Set(ctx context.Context, propertyID string, req dto.SetAvailabilityRequest) error
	HasBlockedDates(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error)
}

type serviceImpl struct {
	repo         repository.Availability
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Availability, propertyRepo propertyRepo.Property, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) GetByProperty(ctx context.Context, propertyID string, rng dto.DateRange) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.propertyRepo.Exist(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check property")

		return res, fmt.Errorf("failed to check property: %w", err)
	}

	if !exist {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
		},
	}

	if !rng.From.IsZero() {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "date_from",
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    rng.From,
			Table:    model.TableName,
		})
	}

	if !rng.To.IsZero() {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "date_to",
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    rng.To,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldDate,
		SortDir: "ASC",
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability overrides")

		return res, fmt.Errorf("failed to get availability overrides: %w", err)
	}

	res.FromModels(propertyID, models)

	return res, nil
}

func (s *serviceImpl) Set(ctx context.Context, propertyID string, req dto.SetAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if property.OwnerID != user && role != constant.RoleAdmin {
		return failure.ResourceRestrictedError
	}

	models, err := req.ToModels(propertyID, user)
	if err != nil {
		return err
	}

	if err = s.repo.Upsert(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to upsert availability overrides")

		return fmt.Errorf("failed to upsert availability overrides: %w", err)
	}

	return nil
}

// HasBlockedDates reports whether any date in [checkIn, checkOut) has been
// blocked by the owner. The check-out date itself is not part of the stay.
func (s *serviceImpl) HasBlockedDates(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (blocked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasBlockedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    checkIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
		},
	}

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked dates")

		return false, fmt.Errorf("failed to count blocked dates: %w", err)
	}

	return count > 0, nil
}

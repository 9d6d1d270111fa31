package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"recanto/config"
	"recanto/infras/kafka"
	"recanto/infras/otel"
	"recanto/internal/domains/notification/model"
	"recanto/internal/domains/notification/model/dto"
	"recanto/internal/domains/notification/repository"
	"recanto/shared"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
	"recanto/shared/timezone"
)

type Notification interface {
	Notify(ctx context.Context, req dto.CreateNotificationRequest) error
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetNotificationsResponse, error)
	UnreadCount(ctx context.Context) (dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafka,
	}
}

// Notify stores a notification row and mirrors it onto the event stream.
// Stream delivery is best effort: a broker outage never fails the calling
// operation.
func (s *serviceImpl) Notify(ctx context.Context, req dto.CreateNotificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification := req.ToModel()

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	if s.cfg.External.Kafka.Enable {
		go func() {
			c := context.WithoutCancel(ctx)

			message := kafka.Message{
				Key:   notification.UserID,
				Value: notification,
			}

			if err := s.kafka.SendMessages(c, s.cfg.External.Kafka.Topic, message); err != nil {
				log.Error().Err(err).Str("type", notification.Type).Msg("failed to publish notification event")
			}
		}()
	}

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := s.userFilter(user)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UnreadCount(ctx context.Context) (res dto.UnreadCountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnreadCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := s.userFilter(user)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldRead,
		Operator: gDto.FilterOperatorEq,
		Value:    false,
		Table:    model.TableName,
	})

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return res, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	res.Count = count

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if notification.UserID != user {
		return failure.ResourceRestrictedError
	}

	updatedFields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

func (s *serviceImpl) userFilter(user string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.TableName,
			},
		},
	}
}

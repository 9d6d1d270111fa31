package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"recanto/infras/otel"
	"recanto/infras/postgres"
	"recanto/internal/domains/availability/model"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/logger"
	gRepo "recanto/shared/repository"
)

type Availability interface {
	Insert(ctx context.Context, model model.AvailabilityOverride) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AvailabilityOverride, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AvailabilityOverride, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Upsert(ctx context.Context, models []model.AvailabilityOverride) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AvailabilityOverride]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AvailabilityOverride](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes overrides keyed by (property_id, date). An existing row for
// the same date is replaced rather than duplicated.
func (repo *repositoryImpl) Upsert(ctx context.Context, models []model.AvailabilityOverride) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability_override.Upsert")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`,
		model.TableName, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "),
		model.FieldPropertyID, model.FieldDate,
		model.FieldAvailable, model.FieldAvailable,
		model.FieldPriceOverride, model.FieldPriceOverride)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	for _, mod := range models {
		if _, err = tx.NamedExecContext(ctx, query, mod); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			_ = tx.Rollback()

			return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

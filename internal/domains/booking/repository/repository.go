package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"recanto/infras/otel"
	"recanto/infras/postgres"
	"recanto/internal/domains/booking/model"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
	"recanto/shared/logger"
	gRepo "recanto/shared/repository"
	"recanto/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ConfirmCheckIn(ctx context.Context, id, confirmedBy string, asGuest bool) (model.Booking, error)
	ConfirmCheckOut(ctx context.Context, id, confirmedBy string, asGuest bool) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert translates constraint violations from the overlap exclusion
// constraint into a conflict failure, so two guests racing for the same
// dates get a clean 409 instead of a 500.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := repo.Repository.Insert(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == constant.PqErrorCodeExclusionViolation || pqErr.Code == constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("property is already booked for the selected dates")
		}

		return err
	}

	return nil
}

// ConfirmCheckIn records one party's check-in confirmation and promotes the
// booking to checked_in once both parties have confirmed. The whole handshake
// runs as a single conditional update so concurrent confirmations cannot lose
// a flag. Returns a zero booking when the row is not in a confirmable status.
func (repo *repositoryImpl) ConfirmCheckIn(ctx context.Context, id, confirmedBy string, asGuest bool) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ConfirmCheckIn")
	defer scope.End()

	query := fmt.Sprintf(`
		UPDATE %s SET
			guest_check_in_confirmed = guest_check_in_confirmed OR :as_guest,
			owner_check_in_confirmed = owner_check_in_confirmed OR :as_owner,
			status = CASE
				WHEN (guest_check_in_confirmed OR :as_guest) AND (owner_check_in_confirmed OR :as_owner) THEN '%s'
				ELSE status
			END,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id AND status IN ('%s', '%s')
		RETURNING *`,
		model.TableName, model.StatusCheckedIn, model.StatusPending, model.StatusConfirmed)

	return repo.confirm(ctx, query, id, confirmedBy, asGuest)
}

// ConfirmCheckOut records one party's check-out confirmation. Once both
// parties have confirmed, the booking completes and the deposit is released
// in the same statement.
func (repo *repositoryImpl) ConfirmCheckOut(ctx context.Context, id, confirmedBy string, asGuest bool) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ConfirmCheckOut")
	defer scope.End()

	query := fmt.Sprintf(`
		UPDATE %s SET
			guest_check_out_confirmed = guest_check_out_confirmed OR :as_guest,
			owner_check_out_confirmed = owner_check_out_confirmed OR :as_owner,
			status = CASE
				WHEN (guest_check_out_confirmed OR :as_guest) AND (owner_check_out_confirmed OR :as_owner) THEN '%s'
				ELSE status
			END,
			deposit_refunded = CASE
				WHEN (guest_check_out_confirmed OR :as_guest) AND (owner_check_out_confirmed OR :as_owner) THEN TRUE
				ELSE deposit_refunded
			END,
			deposit_refunded_at = CASE
				WHEN (guest_check_out_confirmed OR :as_guest) AND (owner_check_out_confirmed OR :as_owner) THEN CAST(:modified_at AS timestamptz)
				ELSE deposit_refunded_at
			END,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id AND status = '%s'
		RETURNING *`,
		model.TableName, model.StatusCompleted, model.StatusCheckedIn)

	return repo.confirm(ctx, query, id, confirmedBy, asGuest)
}

func (repo *repositoryImpl) confirm(ctx context.Context, query, id, confirmedBy string, asGuest bool) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.confirm")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          id,
		"as_guest":    asGuest,
		"as_owner":    !asGuest,
		"modified_at": timezone.Now(),
		"modified_by": confirmedBy,
	}

	var booking model.Booking

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to confirm booking stage (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

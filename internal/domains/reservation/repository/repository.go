package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/reservation/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	overlapQuery = `SELECT EXISTS (
		SELECT 1 FROM reservations
		WHERE room_id = $1 AND status = 'confirmed' AND start_date < $3 AND end_date > $2
	)`

	cancelQuery = `UPDATE reservations
		SET status = 'cancelled', modified_at = $2, modified_by = $3
		WHERE id = $1 AND status = 'confirmed'`
)

type Reservation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)

	// HasOverlapTx reports a confirmed reservation of the room intersecting [start, end).
	HasOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time) (bool, error)
	// Cancel flips a confirmed reservation to cancelled and reports whether a row changed.
	Cancel(ctx context.Context, id, user string, now time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) HasOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time) (exist bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasOverlapTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	if err = tx.GetContext(ctx, &exist, overlapQuery, roomID, start, end); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check reservation overlap: %w", err)
	}

	return exist, nil
}

func (r *repositoryImpl) Cancel(ctx context.Context, id, user string, now time.Time) (ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, cancelQuery)

	result, err := r.db.Write.ExecContext(ctx, cancelQuery, id, now, user)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

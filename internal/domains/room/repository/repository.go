package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/room/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	roomColumns = `rooms.id, rooms.number, rooms.type, rooms.nightly_rate,
		rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by`

	// statusQuery derives the room status: an open stay wins over a reservation covering asOf.
	statusQuery = `SELECT ` + roomColumns + `,
		CASE
			WHEN EXISTS (SELECT 1 FROM stays WHERE stays.room_id = rooms.id AND stays.status = 'open') THEN 'occupied'
			WHEN EXISTS (
				SELECT 1 FROM reservations
				WHERE reservations.room_id = rooms.id AND reservations.status = 'confirmed'
				AND reservations.start_date <= :as_of AND reservations.end_date > :as_of
			) THEN 'reserved'
			ELSE 'free'
		END AS status
		FROM rooms`

	availableQuery = `SELECT ` + roomColumns + ` FROM rooms
		WHERE NOT EXISTS (SELECT 1 FROM stays WHERE stays.room_id = rooms.id AND stays.status = 'open')
		AND NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE reservations.room_id = rooms.id AND reservations.status = 'confirmed'
			AND reservations.start_date < :end_date AND reservations.end_date > :start_date
		)
		ORDER BY rooms.number`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetAllWithStatus(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, asOf time.Time) ([]model.RoomWithStatus, error)
	CountWithStatus(ctx context.Context, filter gDto.FilterGroup, asOf time.Time) (int, error)
	GetWithStatus(ctx context.Context, id string, asOf time.Time) (model.RoomWithStatus, error)
	ListAvailable(ctx context.Context, startDate, endDate time.Time) ([]model.Room, error)
	// LockTx returns the room row locked for the rest of tx, or a zero value when it does not exist.
	LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetAllWithStatus(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, asOf time.Time) (res []model.RoomWithStatus, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAllWithStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := r.BuildWhereClause(ctx, filter)
	args["as_of"] = asOf

	ordering := "ORDER BY number ASC"
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	pagination := ""
	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf("SELECT * FROM (%s) AS rooms %s %s %s", statusQuery, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &res, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get rooms with status: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) CountWithStatus(ctx context.Context, filter gDto.FilterGroup, asOf time.Time) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountWithStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := r.BuildWhereClause(ctx, filter)
	args["as_of"] = asOf

	query := fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS rooms %s", statusQuery, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count rooms with status: %w", err)
	}

	return count, nil
}

func (r *repositoryImpl) GetWithStatus(ctx context.Context, id string, asOf time.Time) (res model.RoomWithStatus, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetWithStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := statusQuery + " WHERE rooms.id = :id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &res, map[string]any{"id": id, "as_of": asOf})
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get room with status: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ListAvailable(ctx context.Context, startDate, endDate time.Time) (res []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, availableQuery)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, availableQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &res, map[string]any{"start_date": startDate, "end_date": endDate}); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Room, error) {
	return r.Repository.LockTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

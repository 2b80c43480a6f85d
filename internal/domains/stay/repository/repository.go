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
	"hotelpos/internal/domains/stay/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	openStayQuery = `SELECT EXISTS (SELECT 1 FROM stays WHERE room_id = $1 AND status = 'open')`

	addBalanceQuery = `UPDATE stays
		SET balance = balance + $2, modified_at = NOW(), modified_by = $3
		WHERE id = $1 AND status = 'open'
		RETURNING balance`

	statusQuery = `SELECT status FROM stays WHERE id = $1`

	closeQuery = `UPDATE stays
		SET status = 'closed', balance = $2, checked_out_at = $3, modified_at = $3, modified_by = $4
		WHERE id = $1 AND status = 'open'`
)

type Stay interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Stay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Stay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Stay, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	HasOpenStayTx(ctx context.Context, tx *sqlx.Tx, roomID string) (bool, error)
	// AddBalance increments an open stay in one statement and returns the new balance.
	// It fails with model.ErrNotFound or model.ErrClosed.
	AddBalance(ctx context.Context, id string, amount decimal.Decimal, user string) (decimal.Decimal, error)
	AddBalanceTx(ctx context.Context, tx *sqlx.Tx, id string, amount decimal.Decimal, user string) (decimal.Decimal, error)
	// LockTx returns the stay with its room, locked for the rest of tx, or a zero value.
	LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Stay, error)
	// CloseTx freezes the balance to paid and reports whether the stay was still open.
	CloseTx(ctx context.Context, tx *sqlx.Tx, id string, paid decimal.Decimal, at time.Time, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Stay]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stay {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Stay](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) HasOpenStayTx(ctx context.Context, tx *sqlx.Tx, roomID string) (exist bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stay.HasOpenStayTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = tx.GetContext(ctx, &exist, openStayQuery, roomID); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check open stay: %w", err)
	}

	return exist, nil
}

func (r *repositoryImpl) AddBalance(ctx context.Context, id string, amount decimal.Decimal, user string) (decimal.Decimal, error) {
	return r.addBalance(ctx, r.db.Write, id, amount, user)
}

func (r *repositoryImpl) AddBalanceTx(ctx context.Context, tx *sqlx.Tx, id string, amount decimal.Decimal, user string) (decimal.Decimal, error) {
	return r.addBalance(ctx, tx, id, amount, user)
}

func (r *repositoryImpl) addBalance(ctx context.Context, q sqlx.QueryerContext, id string, amount decimal.Decimal, user string) (balance decimal.Decimal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stay.addBalance")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, addBalanceQuery)

	err = q.QueryRowxContext(ctx, addBalanceQuery, id, amount, user).Scan(&balance)
	if err == nil {
		return balance, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return balance, fmt.Errorf("failed to add stay balance: %w", err)
	}

	var status string

	err = q.QueryRowxContext(ctx, statusQuery, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return balance, model.ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return balance, fmt.Errorf("failed to read stay status: %w", err)
	}

	return balance, model.ErrClosed
}

func (r *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Stay, error) {
	return r.Repository.LockTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) CloseTx(ctx context.Context, tx *sqlx.Tx, id string, paid decimal.Decimal, at time.Time, user string) (closed bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stay.CloseTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := tx.ExecContext(ctx, closeQuery, id, paid, at, user)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to close stay: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

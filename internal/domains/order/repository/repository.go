package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/order/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	settleTransferredQuery = `UPDATE orders
		SET payment_status = 'paid', modified_at = $2, modified_by = $3
		WHERE stay_id = $1 AND payment_status = 'transferred'`

	stayLinesQuery = `SELECT orders.id AS order_id, orders.ordered_at, products.name AS product_name,
		order_lines.quantity, order_lines.unit_price
		FROM orders
		JOIN order_lines ON order_lines.order_id = orders.id
		JOIN products ON products.id = order_lines.product_id
		WHERE orders.stay_id = $1 AND orders.payment_method = 'account_transfer'
		ORDER BY orders.ordered_at, products.name`
)

type Order interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	InsertLinesTx(ctx context.Context, tx *sqlx.Tx, lines []model.Line) error
	GetLines(ctx context.Context, orderID string) ([]model.Line, error)
	InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) error
	// GetPayment returns the payment row of an order, or a zero value.
	GetPayment(ctx context.Context, orderID string) (model.Payment, error)

	// SettleTransferredTx marks every transferred order of a stay paid and returns how many changed.
	SettleTransferredTx(ctx context.Context, tx *sqlx.Tx, stayID string, at time.Time, user string) (int64, error)
	// GetStayLines lists the product lines of every order transferred to a stay, oldest first.
	GetStayLines(ctx context.Context, stayID string) ([]model.StayLine, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	lines    gRepo.Repository[model.Line]
	payments gRepo.Repository[model.Payment]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:      gRepo.NewRepository[model.Line]("order_line", model.LineTableName, model.FieldID, db, otel),
		payments:   gRepo.NewRepository[model.Payment]("payment", model.PaymentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertLinesTx(ctx context.Context, tx *sqlx.Tx, lines []model.Line) error {
	return r.lines.InsertBulkTx(ctx, tx, lines) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLines(ctx context.Context, orderID string) ([]model.Line, error) {
	params := gDto.QueryParams{SortBy: "products.name", SortDir: "ASC"}

	return r.lines.GetAll(ctx, params, shared.FilterByID(orderID, model.FieldOrderID, model.LineTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) error {
	return r.payments.InsertTx(ctx, tx, payment) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPayment(ctx context.Context, orderID string) (model.Payment, error) {
	return r.payments.Get(ctx, shared.FilterByID(orderID, model.FieldOrderID, model.PaymentTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) SettleTransferredTx(ctx context.Context, tx *sqlx.Tx, stayID string, at time.Time, user string) (settled int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.SettleTransferredTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, settleTransferredQuery)

	result, err := tx.ExecContext(ctx, settleTransferredQuery, stayID, at, user)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to settle transferred orders: %w", err)
	}

	settled, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return settled, nil
}

func (r *repositoryImpl) GetStayLines(ctx context.Context, stayID string) (res []model.StayLine, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.GetStayLines")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, stayLinesQuery)

	if err = r.db.Read.SelectContext(ctx, &res, stayLinesQuery, stayID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get stay lines: %w", err)
	}

	return res, nil
}

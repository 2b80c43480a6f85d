package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/report/model"
	"hotelpos/shared/constant"
	"hotelpos/shared/logger"

	"github.com/shopspring/decimal"
)

const (
	stayRevenueQuery = `SELECT COALESCE(SUM(balance), 0) FROM stays
		WHERE status = 'closed' AND checked_out_at >= $1 AND checked_out_at < $2`

	posRevenueQuery = `SELECT COALESCE(SUM(net_total), 0) FROM orders
		WHERE payment_status = 'paid' AND ordered_at >= $1 AND ordered_at < $2`

	paymentBreakdownQuery = `SELECT method, SUM(amount) AS amount FROM payments
		WHERE paid_at >= $1 AND paid_at < $2
		GROUP BY method
		ORDER BY method`

	topProductsQuery = `SELECT products.id AS product_id, products.name,
		SUM(order_lines.quantity) AS quantity,
		SUM(order_lines.quantity * order_lines.unit_price) AS value
		FROM order_lines
		JOIN orders ON orders.id = order_lines.order_id
		JOIN products ON products.id = order_lines.product_id
		WHERE orders.ordered_at >= $1 AND orders.ordered_at < $2
		GROUP BY products.id, products.name
		ORDER BY %s DESC, products.name
		LIMIT $3`
)

type Report interface {
	// StayRevenue sums the frozen balance of stays checked out within [start, until).
	StayRevenue(ctx context.Context, start, until time.Time) (decimal.Decimal, error)
	// POSRevenue sums the net total of paid orders placed within [start, until).
	POSRevenue(ctx context.Context, start, until time.Time) (decimal.Decimal, error)
	PaymentBreakdown(ctx context.Context, start, until time.Time) ([]model.MethodTotal, error)
	TopByQuantity(ctx context.Context, start, until time.Time, limit int) ([]model.ProductTotal, error)
	TopByValue(ctx context.Context, start, until time.Time, limit int) ([]model.ProductTotal, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) StayRevenue(ctx context.Context, start, until time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, "StayRevenue", stayRevenueQuery, start, until)
}

func (r *repositoryImpl) POSRevenue(ctx context.Context, start, until time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, "POSRevenue", posRevenueQuery, start, until)
}

func (r *repositoryImpl) sum(ctx context.Context, name, query string, start, until time.Time) (res decimal.Decimal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report."+name)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &res, query, start, until); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to compute %s: %w", name, err)
	}

	return res, nil
}

func (r *repositoryImpl) PaymentBreakdown(ctx context.Context, start, until time.Time) (res []model.MethodTotal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.PaymentBreakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, paymentBreakdownQuery)

	if err = r.db.Read.SelectContext(ctx, &res, paymentBreakdownQuery, start, until); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to compute payment breakdown: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) TopByQuantity(ctx context.Context, start, until time.Time, limit int) ([]model.ProductTotal, error) {
	return r.top(ctx, "quantity", start, until, limit)
}

func (r *repositoryImpl) TopByValue(ctx context.Context, start, until time.Time, limit int) ([]model.ProductTotal, error) {
	return r.top(ctx, "value", start, until, limit)
}

func (r *repositoryImpl) top(ctx context.Context, orderBy string, start, until time.Time, limit int) (res []model.ProductTotal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.top")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(topProductsQuery, orderBy)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &res, query, start, until, limit); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to rank products by %s: %w", orderBy, err)
	}

	return res, nil
}

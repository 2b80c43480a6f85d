package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/product/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"

	"github.com/jmoiron/sqlx"
)

const byIDsQuery = `SELECT id, name, unit_price, sale_type, category, created_at, modified_at, created_by, modified_by
	FROM products WHERE id IN (?)`

type Product interface {
	Insert(ctx context.Context, model model.Product) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Product, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// GetByIDsTx reads the catalog rows of ids inside tx, keyed by id. Unknown ids are absent.
	GetByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []string) (map[string]model.Product, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Product]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Product {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Product](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []string) (res map[string]model.Product, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".product.GetByIDsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(byIDsQuery, ids)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var products []model.Product
	if err = tx.SelectContext(ctx, &products, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	res = make(map[string]model.Product, len(products))
	for _, product := range products {
		res[product.ID] = product
	}

	return res, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/product/model"
	"hotelpos/internal/domains/product/model/dto"
	"hotelpos/internal/domains/product/repository"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"

	"github.com/rs/zerolog/log"
)

type Product interface {
	Create(ctx context.Context, actor principal.Principal, req dto.CreateProductRequest) (dto.ProductResponse, error)
	// GetAll hides lodging products unless includeLodging is set by an admin.
	GetAll(ctx context.Context, actor principal.Principal, req gDto.QueryParams, filter gDto.FilterGroup, includeLodging bool) (dto.GetProductsResponse, error)
	Get(ctx context.Context, id string) (dto.ProductResponse, error)
	Update(ctx context.Context, actor principal.Principal, id string, req dto.UpdateProductRequest) error
	Delete(ctx context.Context, actor principal.Principal, id string) error
}

type serviceImpl struct {
	repo repository.Product
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Product, cfg *config.Config, otel otel.Otel) Product {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, actor principal.Principal, req dto.CreateProductRequest) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".product.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	product := req.ToModel(actor.Username)

	if err = s.repo.Insert(ctx, product); err != nil {
		log.Error().Err(err).Msg("failed to create product")

		return res, fmt.Errorf("failed to create product: %w", err)
	}

	res.FromModel(product)

	return res, nil
}

func (s *serviceImpl) GetAll(
	ctx context.Context,
	actor principal.Principal,
	req gDto.QueryParams,
	filter gDto.FilterGroup,
	includeLodging bool,
) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".product.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !includeLodging || !actor.HasRole(constant.RoleAdmin) {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldSaleType,
			Value:    model.SaleTypeLodging,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, fmt.Errorf("failed to count products: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get products")

		return res, fmt.Errorf("failed to get products: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".product.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	product, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return res, failure.NotFound("product not found") // nolint:wrapcheck
	}

	res.FromModel(product)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, actor principal.Principal, id string, req dto.UpdateProductRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".product.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if product exists")

		return fmt.Errorf("failed to check if product exists: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor.Username), filter); err != nil {
		log.Error().Err(err).Msg("failed to update product")

		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, actor principal.Principal, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".product.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if product exists")

		return fmt.Errorf("failed to check if product exists: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return failure.IntegrityViolation("product is referenced by orders") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete product")

		return fmt.Errorf("failed to delete product: %w", err)
	}

	log.Info().Str("product_id", id).Str("actor", actor.Username).Msg("product deleted")

	return nil
}

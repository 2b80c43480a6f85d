package product

import (
	"net/http"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/product/model"
	"hotelpos/internal/domains/product/model/dto"
	"hotelpos/internal/domains/product/service"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/principal"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const queryParamIncludeLodging = "include_lodging"

var sortableFields = []string{model.FieldName, model.FieldUnitPrice, model.FieldCategory, model.FieldSaleType}

type Handler struct {
	service service.Product
	otel    otel.Otel
}

func New(service service.Product, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/products", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProduct)
		routerGroup.Get("/", handler.GetProducts)

		byID := routerGroup.With(middleware.UUIDParam(constant.RequestParamID))
		byID.Get("/{id}", handler.GetProductByID)
		byID.Patch("/{id}", handler.UpdateProduct)
		byID.Delete("/{id}", handler.DeleteProduct)
	})
}

// CreateProduct adds a catalog entry.
// @Summary Create a product
// @Tags Product
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} response.Data[dto.ProductResponse]
// @Failure 400 {object} response.Error
// @Router /v1/products [post]
// @Security BearerAuth
func (handler *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProduct")
	defer scope.End()

	req := dto.CreateProductRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	product, err := handler.service.Create(ctx, actor, req)
	if err != nil {
		response.Fail(w, scope, err, "create product")

		return
	}

	scope.AddEvent("Product created successfully by user " + actor.Username)

	response.WithJSON(w, http.StatusCreated, product)
}

// GetProducts lists the catalog. Lodging products are only listed for admins
// asking for them with include_lodging=true.
// @Summary Get all products
// @Tags Product
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param sale_type query string false "Filter by sale type"
// @Param include_lodging query boolean false "Include lodging products (admin)"
// @Success 200 {object} response.Data[dto.GetProductsResponse]
// @Router /v1/products [get]
// @Security BearerAuth
func (handler *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(sortableFields...)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldName,
		Operator: gDto.FilterOperatorLike,
		Value:    query.Get(model.FieldName),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldCategory,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldCategory),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldSaleType,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldSaleType),
		Table:    model.TableName,
	})

	includeLodging := false
	if include := shared.ConvertStringToBool(query.Get(queryParamIncludeLodging)); include != nil {
		includeLodging = *include
	}

	products, err := handler.service.GetAll(ctx, principal.FromContext(ctx), queryParams, filterGroup, includeLodging)
	if err != nil {
		response.Fail(w, scope, err, "get products")

		return
	}

	response.WithJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a product.
// @Summary Get a product by ID
// @Tags Product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Data[dto.ProductResponse]
// @Failure 404 {object} response.Error
// @Router /v1/products/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductByID")
	defer scope.End()

	product, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "get product")

		return
	}

	response.WithJSON(w, http.StatusOK, product)
}

// UpdateProduct changes a product. Past order lines keep the price they were sold at.
// @Summary Update a product
// @Tags Product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Product fields"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/products/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProduct")
	defer scope.End()

	req := dto.UpdateProductRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	if err := handler.service.Update(ctx, actor, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		response.Fail(w, scope, err, "update product")

		return
	}

	scope.AddEvent("Product updated successfully by user " + actor.Username)

	response.WithMessage(w, http.StatusOK, "Product updated successfully")
}

// DeleteProduct removes a product that was never sold.
// @Summary Delete a product
// @Tags Product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/products/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProduct")
	defer scope.End()

	actor := principal.FromContext(ctx)

	if err := handler.service.Delete(ctx, actor, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "delete product")

		return
	}

	scope.AddEvent("Product deleted successfully by user " + actor.Username)

	response.WithMessage(w, http.StatusOK, "Product deleted successfully")
}

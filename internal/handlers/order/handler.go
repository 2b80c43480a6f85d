package order

import (
	"fmt"
	"net/http"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/order/model"
	"hotelpos/internal/domains/order/model/dto"
	"hotelpos/internal/domains/order/service"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/principal"
	"hotelpos/shared/timezone"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

var sortableFields = []string{model.FieldOrderedAt, model.FieldNetTotal}

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitOrder)
		routerGroup.Get("/", handler.GetOrders)

		byID := routerGroup.With(middleware.UUIDParam(constant.RequestParamID))
		byID.Get("/{id}/receipt", handler.GetReceipt)
		byID.Get("/{id}/ticket", handler.GetTicket)
	})
}

// SubmitOrder records a POS sale with its payment.
// @Summary Submit an order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.SubmitOrderRequest true "Cart"
// @Success 201 {object} response.Data[dto.SubmitOrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/orders [post]
// @Security BearerAuth
func (handler *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitOrder")
	defer scope.End()

	req := dto.SubmitOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	order, err := handler.service.Submit(ctx, actor, req)
	if err != nil {
		response.Fail(w, scope, err, "submit order")

		return
	}

	scope.AddEvent("Order submitted by user " + actor.Username)

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders lists orders, newest first unless sorted otherwise.
// @Summary Get all orders
// @Tags Order
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param payment_method query string false "cash, card, mobile or account_transfer"
// @Param payment_status query string false "paid or transferred"
// @Param stay_id query string false "Orders transferred to a stay"
// @Param start_date query string false "First day (yyyy-mm-dd)"
// @Param end_date query string false "Last day (yyyy-mm-dd)"
// @Success 200 {object} response.Data[dto.GetOrdersResponse]
// @Failure 400 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(sortableFields...)

	if queryParams.SortBy == "" {
		queryParams.SortBy, queryParams.SortDir = model.FieldOrderedAt, gDto.SortDirDesc
	}

	queryParams.QualifySortBy(model.TableName)

	filterGroup, err := handler.filter(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "get orders")

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

func (handler *Handler) filter(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldPaymentMethod, model.FieldPaymentStatus, model.FieldStayID} {
		filterGroup.AppendIfPresent(gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    query.Get(field),
			Table:    model.TableName,
		})
	}

	startDate, err := shared.ParseDayParam(constant.RequestParamStartDate, query.Get(constant.RequestParamStartDate))
	if err != nil {
		return filterGroup, err
	}

	endDate, err := shared.ParseDayParam(constant.RequestParamEndDate, query.Get(constant.RequestParamEndDate))
	if err != nil {
		return filterGroup, err
	}

	if !startDate.IsZero() {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "ordered_from",
			Field:    model.FieldOrderedAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    timezone.StartOfDay(startDate),
			Table:    model.TableName,
		})
	}

	if !endDate.IsZero() {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "ordered_until",
			Field:    model.FieldOrderedAt,
			Operator: gDto.FilterOperatorLess,
			Value:    timezone.NextDay(endDate),
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

// GetReceipt returns an order with its payment and lines.
// @Summary Get an order receipt
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.ReceiptResponse]
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/receipt [get]
// @Security BearerAuth
func (handler *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipt")
	defer scope.End()

	receipt, err := handler.service.GetReceipt(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "get receipt")

		return
	}

	response.WithJSON(w, http.StatusOK, receipt)
}

// GetTicket renders the 80mm receipt ticket as PDF.
// @Summary Download the order ticket
// @Tags Order
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/ticket [get]
// @Security BearerAuth
func (handler *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	content, err := handler.service.Ticket(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "render ticket")

		return
	}

	response.WithFile(w, constant.ContentTypePDF, fmt.Sprintf("ticket-%s.pdf", id), content)
}

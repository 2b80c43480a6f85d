package stay

import (
	"fmt"
	"net/http"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/stay/model"
	"hotelpos/internal/domains/stay/model/dto"
	"hotelpos/internal/domains/stay/service"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/principal"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

var sortableFields = []string{model.FieldCheckedInAt, model.FieldGuestName, model.FieldBalance}

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stays", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CheckIn)
		routerGroup.Get("/", handler.GetActiveStays)

		byID := routerGroup.With(middleware.UUIDParam(constant.RequestParamID))
		byID.Get("/{id}", handler.GetStayByID)
		byID.Post("/{id}/charges", handler.ApplyCharge)
		byID.Get("/{id}/bill", handler.ComputeBill)
		byID.Get("/{id}/invoice", handler.Invoice)
		byID.Post("/{id}/checkout", handler.Checkout)
	})
}

// CheckIn opens a stay on a room.
// @Summary Check a guest in
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in"
// @Success 201 {object} response.Data[dto.StayResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	stay, err := handler.service.CheckIn(ctx, actor, req)
	if err != nil {
		response.Fail(w, scope, err, "check in")

		return
	}

	scope.AddEvent("Guest checked in by user " + actor.Username)

	response.WithJSON(w, http.StatusCreated, stay)
}

// GetActiveStays lists the open stays.
// @Summary Get open stays
// @Tags Stay
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetStaysResponse]
// @Router /v1/stays [get]
// @Security BearerAuth
func (handler *Handler) GetActiveStays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveStays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(sortableFields...)
	queryParams.QualifySortBy(model.TableName)

	stays, err := handler.service.GetActive(ctx, queryParams)
	if err != nil {
		response.Fail(w, scope, err, "get open stays")

		return
	}

	response.WithJSON(w, http.StatusOK, stays)
}

// GetStayByID returns a stay with the POS lines charged to it.
// @Summary Get a stay by ID
// @Tags Stay
// @Produce json
// @Param id path string true "Stay ID"
// @Success 200 {object} response.Data[dto.StayResponse]
// @Failure 404 {object} response.Error
// @Router /v1/stays/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStayByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStayByID")
	defer scope.End()

	stay, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "get stay")

		return
	}

	response.WithJSON(w, http.StatusOK, stay)
}

// ApplyCharge adds an amount to the folio balance.
// @Summary Charge a stay
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param request body dto.ChargeRequest true "Charge"
// @Success 200 {object} response.Data[dto.ChargeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) ApplyCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyCharge")
	defer scope.End()

	req := dto.ChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	res, err := handler.service.ApplyCharge(ctx, principal.FromContext(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		response.Fail(w, scope, err, "apply charge")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ComputeBill prices the open stay as of now or the as_of query value.
// @Summary Compute the bill of a stay
// @Tags Stay
// @Produce json
// @Param id path string true "Stay ID"
// @Param as_of query string false "RFC 3339 instant or yyyy-mm-dd"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays/{id}/bill [get]
// @Security BearerAuth
func (handler *Handler) ComputeBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ComputeBill")
	defer scope.End()

	asOf, err := shared.ParseTimeParam(constant.RequestParamAsOf, r.URL.Query().Get(constant.RequestParamAsOf))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bill, err := handler.service.ComputeBill(ctx, chi.URLParam(r, constant.RequestParamID), asOf)
	if err != nil {
		response.Fail(w, scope, err, "compute bill")

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

// Invoice renders the folio invoice as PDF.
// @Summary Download the stay invoice
// @Tags Stay
// @Produce application/pdf
// @Param id path string true "Stay ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Error
// @Router /v1/stays/{id}/invoice [get]
// @Security BearerAuth
func (handler *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Invoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	content, err := handler.service.Invoice(ctx, principal.FromContext(ctx), id)
	if err != nil {
		response.Fail(w, scope, err, "render invoice")

		return
	}

	response.WithFile(w, constant.ContentTypePDF, fmt.Sprintf("invoice-%s.pdf", id), content)
}

// Checkout closes the stay and settles the charges transferred to it.
// @Summary Check a guest out
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param request body dto.CheckoutRequest true "Payment"
// @Success 200 {object} response.Data[dto.CheckoutResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	req := dto.CheckoutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	res, err := handler.service.Checkout(ctx, actor, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		response.Fail(w, scope, err, "check out")

		return
	}

	scope.AddEvent("Guest checked out by user " + actor.Username)

	response.WithJSON(w, http.StatusOK, res)
}

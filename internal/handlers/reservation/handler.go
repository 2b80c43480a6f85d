package reservation

import (
	"net/http"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/reservation/model"
	"hotelpos/internal/domains/reservation/model/dto"
	"hotelpos/internal/domains/reservation/service"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/principal"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

var sortableFields = []string{model.FieldStartDate, model.FieldEndDate, model.FieldGuestName, constant.FieldCreatedAt}

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)

		byID := routerGroup.With(middleware.UUIDParam(constant.RequestParamID))
		byID.Get("/{id}", handler.GetReservationByID)
		byID.Post("/{id}/cancel", handler.CancelReservation)
	})
}

// CreateReservation books a room for a range of nights.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	reservation, err := handler.service.Create(ctx, actor, req)
	if err != nil {
		response.Fail(w, scope, err, "create reservation")

		return
	}

	scope.AddEvent("Reservation created by user " + actor.Username)

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations lists reservations.
// @Summary Get all reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "confirmed or cancelled"
// @Param room_id query string false "Filter by room"
// @Param guest_name query string false "Filter by guest"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(sortableFields...)
	queryParams.QualifySortBy(model.TableName)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldStatus),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldRoomID,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldRoomID),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldGuestName,
		Operator: gDto.FilterOperatorLike,
		Value:    query.Get(model.FieldGuestName),
		Table:    model.TableName,
	})

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "get reservations")

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	reservation, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "get reservation")

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// CancelReservation releases the booked nights.
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	actor := principal.FromContext(ctx)

	if err := handler.service.Cancel(ctx, actor, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "cancel reservation")

		return
	}

	scope.AddEvent("Reservation cancelled by user " + actor.Username)

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}

package room

import (
	"net/http"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/room/model"
	"hotelpos/internal/domains/room/model/dto"
	"hotelpos/internal/domains/room/service"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/principal"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

var sortableFields = []string{model.FieldNumber, model.FieldType, model.FieldNightlyRate, model.FieldStatus}

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)

		byID := routerGroup.With(middleware.UUIDParam(constant.RequestParamID))
		byID.Get("/{id}", handler.GetRoomByID)
		byID.Patch("/{id}", handler.UpdateRoom)
		byID.Put("/{id}/status", handler.SetRoomStatus)
		byID.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	room, err := handler.service.Create(ctx, actor, req)
	if err != nil {
		response.Fail(w, scope, err, "create room")

		return
	}

	scope.AddEvent("Room created successfully by user " + actor.Username)

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms lists rooms with the status derived for today.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param status query string false "Filter by derived status"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(sortableFields...)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldType,
		Operator: gDto.FilterOperatorLike,
		Value:    r.URL.Query().Get(model.FieldType),
		Table:    model.TableName,
	})
	filterGroup.AppendIfPresent(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    r.URL.Query().Get(model.FieldStatus),
		Table:    model.TableName,
	})

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "get rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists rooms with no stay or reservation overlapping the range.
// @Summary Check availability
// @Tags Room
// @Produce json
// @Param start_date query string true "First night (yyyy-mm-dd)"
// @Param end_date query string true "Departure day (yyyy-mm-dd)"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	startDate, err := shared.ParseDayParam(constant.RequestParamStartDate, r.URL.Query().Get(constant.RequestParamStartDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	endDate, err := shared.ParseDayParam(constant.RequestParamEndDate, r.URL.Query().Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.ListAvailable(ctx, startDate, endDate)
	if err != nil {
		response.Fail(w, scope, err, "list available rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "get room by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Room fields"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	actor := principal.FromContext(ctx)

	if err := handler.service.Update(ctx, actor, id, req); err != nil {
		response.Fail(w, scope, err, "update room")

		return
	}

	scope.AddEvent("Room updated successfully by user " + actor.Username)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// SetRoomStatus confirms a requested status against the derived one.
// @Summary Set room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.SetStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRoomStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.SetStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "validate request body")

		return
	}

	if err := handler.service.SetStatus(ctx, principal.FromContext(ctx), id, req.Status); err != nil {
		response.Fail(w, scope, err, "set room status")

		return
	}

	response.WithMessage(w, http.StatusOK, "Room status is "+req.Status)
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	actor := principal.FromContext(ctx)

	if err := handler.service.Delete(ctx, actor, id); err != nil {
		response.Fail(w, scope, err, "delete room")

		return
	}

	scope.AddEvent("Room deleted successfully by user " + actor.Username)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/room/model"
	"hotelpos/internal/domains/room/model/dto"
	"hotelpos/internal/domains/room/repository"
	"hotelpos/shared"
	"hotelpos/shared/cache"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"
	"hotelpos/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = model.CachePrefix + ":get"
	cacheGetAllRoom = model.CachePrefix + ":gets"
	cacheCountRoom  = model.CachePrefix + ":count"
)

// statusFlows names the operation that moves a room into each status.
var statusFlows = map[string]string{
	model.StatusOccupied: "check in a guest",
	model.StatusReserved: "create a reservation",
	model.StatusFree:     "check out the stay or cancel the reservation",
}

type Room interface {
	Create(ctx context.Context, actor principal.Principal, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	ListAvailable(ctx context.Context, startDate, endDate time.Time) (dto.AvailableRoomsResponse, error)
	SetStatus(ctx context.Context, actor principal.Principal, id, status string) error
	Update(ctx context.Context, actor principal.Principal, id string, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, actor principal.Principal, id string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, actor principal.Principal, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureNumberFree(ctx, req.Number, constant.Empty); err != nil {
		return res, err
	}

	room := req.ToModel(actor.Username)

	if err = s.repo.Insert(ctx, room); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("room number already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(room)
	res.Status = model.StatusFree

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.StartOfDay(timezone.Now())
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllRoom, today.Format(constant.DayFormat)), req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.count(ctx, filter, today)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAllWithStatus(ctx, req, filter, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup, today time.Time) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheCountRoom, today.Format(constant.DayFormat)), gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.CountWithStatus(ctx, filter, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.StartOfDay(timezone.Now())
	cacheKey := shared.BuildCacheKey(cacheGetRoom, today.Format(constant.DayFormat), id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.GetWithStatus(ctx, id, today)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromStatusModel(room)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) ListAvailable(ctx context.Context, startDate, endDate time.Time) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	startDate = timezone.StartOfDay(startDate)
	endDate = timezone.StartOfDay(endDate)

	if !startDate.Before(endDate) {
		return res, failure.InvalidDateRange
	}

	rooms, err := s.repo.ListAvailable(ctx, startDate, endDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to list available rooms")

		return res, fmt.Errorf("failed to list available rooms: %w", err)
	}

	res.FromModels(rooms, startDate.Format(constant.DayFormat), endDate.Format(constant.DayFormat))

	return res, nil
}

// SetStatus accepts a requested status only when it already matches the derived one.
func (s *serviceImpl) SetStatus(ctx context.Context, actor principal.Principal, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, ok := statusFlows[status]
	if !ok {
		return failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", status)) // nolint:wrapcheck
	}

	room, err := s.repo.GetWithStatus(ctx, id, timezone.StartOfDay(timezone.Now()))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != status {
		log.Warn().
			Str("room", room.Number).
			Str("current", room.Status).
			Str("requested", status).
			Str("actor", actor.Username).
			Msg("rejected manual room status change")

		return failure.Conflict(fmt.Sprintf("room %s is %s; to make it %s, %s", room.Number, room.Status, status, flow)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, actor principal.Principal, id string, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if req.Number != nil && *req.Number != current.Number {
		if err = s.ensureNumberFree(ctx, *req.Number, id); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor.Username), filter); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("room number already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, actor principal.Principal, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.GetWithStatus(ctx, id, timezone.StartOfDay(timezone.Now()))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status == model.StatusOccupied {
		return failure.IntegrityViolation("room has an open stay") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return failure.IntegrityViolation("room is referenced by stays or reservations") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	log.Info().Str("room", room.Number).Str("actor", actor.Username).Msg("room deleted")

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) ensureNumberFree(ctx context.Context, number, exceptID string) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldNumber, Value: number, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if exceptID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldID, Value: exceptID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save room cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()
}

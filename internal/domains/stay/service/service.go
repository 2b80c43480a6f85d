package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	docModel "hotelpos/internal/domains/document/model"
	docService "hotelpos/internal/domains/document/service"
	eventModel "hotelpos/internal/domains/event/model"
	eventService "hotelpos/internal/domains/event/service"
	orderModel "hotelpos/internal/domains/order/model"
	orderRepo "hotelpos/internal/domains/order/repository"
	reportModel "hotelpos/internal/domains/report/model"
	roomModel "hotelpos/internal/domains/room/model"
	roomRepo "hotelpos/internal/domains/room/repository"
	"hotelpos/internal/domains/stay/model"
	"hotelpos/internal/domains/stay/model/dto"
	"hotelpos/internal/domains/stay/repository"
	"hotelpos/shared"
	"hotelpos/shared/cache"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"
	"hotelpos/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetStay       = model.CachePrefix + ":get"
	cacheGetActiveStay = model.CachePrefix + ":gets"
	cacheCountStay     = model.CachePrefix + ":count"
)

type Stay interface {
	CheckIn(ctx context.Context, actor principal.Principal, req dto.CheckInRequest) (dto.StayResponse, error)
	ApplyCharge(ctx context.Context, actor principal.Principal, id string, req dto.ChargeRequest) (dto.ChargeResponse, error)
	ComputeBill(ctx context.Context, id string, asOf time.Time) (dto.BillResponse, error)
	Checkout(ctx context.Context, actor principal.Principal, id string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	GetActive(ctx context.Context, params gDto.QueryParams) (dto.GetStaysResponse, error)
	Get(ctx context.Context, id string) (dto.StayResponse, error)
	Invoice(ctx context.Context, actor principal.Principal, id string) ([]byte, error)
}

type serviceImpl struct {
	repo       repository.Stay
	roomRepo   roomRepo.Room
	orderRepo  orderRepo.Order
	transactor postgres.Transactor
	renderer   docService.Renderer
	publisher  eventService.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Stay,
	roomRepo roomRepo.Room,
	orderRepo orderRepo.Order,
	transactor postgres.Transactor,
	renderer docService.Renderer,
	publisher eventService.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stay {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		orderRepo:  orderRepo,
		transactor: transactor,
		renderer:   renderer,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, actor principal.Principal, req dto.CheckInRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	stay, err := req.ToModel(now, actor.Username)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid expected checkout: %v", err)) // nolint:wrapcheck
	}

	if stay.ExpectedCheckout != nil && stay.ExpectedCheckout.Before(timezone.StartOfDay(now)) {
		return res, failure.BadRequestFromString("expected checkout cannot be in the past") // nolint:wrapcheck
	}

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, stay.RoomID)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		occupied, err := s.repo.HasOpenStayTx(ctx, tx, room.ID)
		if err != nil {
			return err
		}

		if occupied {
			return failure.Conflict("room already occupied") // nolint:wrapcheck
		}

		stay.RoomNumber = room.Number
		stay.RoomType = room.Type
		stay.NightlyRate = room.NightlyRate

		return s.repo.InsertTx(ctx, tx, stay)
	})
	if err != nil {
		if failure.Is(err) {
			return res, err
		}

		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("room already occupied") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("room_id", stay.RoomID).Msg("failed to check in")

		return res, fmt.Errorf("failed to check in: %w", err)
	}

	log.Info().
		Str("stay_id", stay.ID).
		Str("room", stay.RoomNumber).
		Str("actor", actor.Username).
		Msg("guest checked in")

	s.invalidate(ctx, roomModel.CachePrefix)

	res.FromModel(stay)

	return res, nil
}

func (s *serviceImpl) ApplyCharge(ctx context.Context, actor principal.Principal, id string, req dto.ChargeRequest) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.ApplyCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Amount.IsPositive() {
		return res, failure.BadRequestFromString("charge amount must be positive") // nolint:wrapcheck
	}

	balance, err := s.repo.AddBalance(ctx, id, req.Amount, actor.Username)

	switch {
	case errors.Is(err, model.ErrNotFound):
		return res, failure.NotFound("stay not found") // nolint:wrapcheck
	case errors.Is(err, model.ErrClosed):
		return res, failure.Conflict("stay already closed") // nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Str("stay_id", id).Msg("failed to apply charge")

		return res, fmt.Errorf("failed to apply charge: %w", err)
	}

	log.Info().
		Str("stay_id", id).
		Str("amount", req.Amount.String()).
		Str("actor", actor.Username).
		Msg("charge applied")

	s.invalidate(ctx)

	return dto.ChargeResponse{StayID: id, Balance: balance}, nil
}

func (s *serviceImpl) ComputeBill(ctx context.Context, id string, asOf time.Time) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.ComputeBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !stay.IsOpen() {
		return res, failure.Conflict("stay already closed") // nolint:wrapcheck
	}

	if asOf.IsZero() {
		asOf = timezone.Now()
	}

	res.FromModel(stay.ID, stay.ComputeBill(asOf))

	return res, nil
}

func (s *serviceImpl) Checkout(ctx context.Context, actor principal.Principal, id string, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PaidAmount.IsNegative() {
		return res, failure.BadRequestFromString("paid amount cannot be negative") // nolint:wrapcheck
	}

	var (
		stay    model.Stay
		bill    model.Bill
		settled int64
	)

	now := timezone.Now()

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		stay, err = s.repo.LockTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if stay.ID == constant.Empty {
			return failure.NotFound("stay not found") // nolint:wrapcheck
		}

		if !stay.IsOpen() {
			return failure.Conflict("stay already closed") // nolint:wrapcheck
		}

		bill = stay.ComputeBill(now)

		closed, err := s.repo.CloseTx(ctx, tx, id, req.PaidAmount, now, actor.Username)
		if err != nil {
			return err
		}

		if !closed {
			return failure.Conflict("stay already closed") // nolint:wrapcheck
		}

		settled, err = s.orderRepo.SettleTransferredTx(ctx, tx, id, now, actor.Username)

		return err
	})
	if err != nil {
		if failure.Is(err) {
			return res, err
		}

		log.Error().Err(err).Str("stay_id", id).Msg("failed to check out")

		return res, fmt.Errorf("failed to check out: %w", err)
	}

	if !req.PaidAmount.Equal(bill.Total) {
		log.Warn().
			Str("stay_id", id).
			Str("paid", req.PaidAmount.String()).
			Str("billed", bill.Total.String()).
			Msg("checkout amount differs from computed bill")
	}

	log.Info().
		Str("stay_id", id).
		Str("room", stay.RoomNumber).
		Int64("settled_orders", settled).
		Str("actor", actor.Username).
		Msg("guest checked out")

	s.invalidate(ctx, roomModel.CachePrefix, reportModel.CachePrefix)

	stay.Status = model.StatusClosed
	stay.CheckedOutAt = &now
	stay.Balance = req.PaidAmount
	s.publish(ctx, actor, stay)

	res = dto.CheckoutResponse{
		StayID:       id,
		CheckedOutAt: timezone.Format(now, constant.DateFormat),
		Paid:         req.PaidAmount,
		Settled:      settled,
	}
	res.Bill.FromModel(id, bill)

	return res, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, params gDto.QueryParams) (res dto.GetStaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(model.StatusOpen, model.FieldStatus, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetActiveStay, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for active stays")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	stays, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active stays")

		return res, fmt.Errorf("failed to get active stays: %w", err)
	}

	res.FromModels(stays, total, params.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStay, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stays")

		return res, fmt.Errorf("failed to count stays: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStay, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	stay, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	lines, err := s.orderRepo.GetStayLines(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("stay_id", id).Msg("failed to get stay lines")

		return res, fmt.Errorf("failed to get stay lines: %w", err)
	}

	res.FromModel(stay)
	res.WithLines(lines)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Invoice(ctx context.Context, actor principal.Principal, id string) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stay.Invoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.orderRepo.GetStayLines(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("stay_id", id).Msg("failed to get stay lines")

		return nil, fmt.Errorf("failed to get stay lines: %w", err)
	}

	res, err = s.renderer.Invoice(ctx, toInvoice(stay, lines, timezone.Now(), actor.Username))
	if err != nil {
		log.Error().Err(err).Str("stay_id", id).Msg("failed to render invoice")

		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Stay, error) {
	stay, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("stay_id", id).Msg("failed to get stay")

		return stay, fmt.Errorf("failed to get stay: %w", err)
	}

	if stay.ID == constant.Empty {
		return stay, failure.NotFound("stay not found") // nolint:wrapcheck
	}

	return stay, nil
}

// publish sends the final invoice of a closed stay once the checkout has committed.
func (s *serviceImpl) publish(ctx context.Context, actor principal.Principal, stay model.Stay) {
	go func() {
		c := context.WithoutCancel(ctx)

		lines, err := s.orderRepo.GetStayLines(c, stay.ID)
		if err != nil {
			log.Warn().Err(err).Str("stay_id", stay.ID).Msg("checkout event not published")

			return
		}

		event := eventModel.StayCheckedOut{
			StayID:       stay.ID,
			CheckedOutAt: *stay.CheckedOutAt,
			Actor:        actor.Username,
			Invoice:      toInvoice(stay, lines, *stay.CheckedOutAt, actor.Username),
		}

		if err := s.publisher.StayCheckedOut(c, event); err != nil {
			log.Warn().Err(err).Str("stay_id", stay.ID).Msg("checkout event not published")
		}
	}()
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save stay cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

// toInvoice bills an open stay as of asOf. A closed stay is billed up to its checkout,
// with services summed from its transferred lines and the frozen balance reported as paid.
func toInvoice(stay model.Stay, lines []orderModel.StayLine, asOf time.Time, issuedBy string) docModel.Invoice {
	invoice := docModel.Invoice{
		StayID:      stay.ID,
		GuestName:   stay.GuestName,
		RoomNumber:  stay.RoomNumber,
		RoomType:    stay.RoomType,
		CheckedInAt: stay.CheckedInAt,
		IssuedBy:    issuedBy,
		Lines:       make([]docModel.Line, len(lines)),
	}

	services := decimal.Zero

	for i, line := range lines {
		invoice.Lines[i] = docModel.Line{
			Name:      line.ProductName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
			OrderedAt: line.OrderedAt,
		}
		services = services.Add(line.Subtotal())
	}

	if !stay.IsOpen() && stay.CheckedOutAt != nil {
		paid := stay.Balance

		invoice.Paid = &paid
		asOf = *stay.CheckedOutAt
		stay.Balance = services
	}

	bill := stay.ComputeBill(asOf)

	invoice.AsOf = bill.AsOf
	invoice.Nights = bill.Nights
	invoice.NightlyRate = bill.NightlyRate
	invoice.RoomCost = bill.RoomCost
	invoice.Services = bill.Services
	invoice.Total = bill.Total

	return invoice
}

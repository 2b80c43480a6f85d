package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	docModel "hotelpos/internal/domains/document/model"
	docService "hotelpos/internal/domains/document/service"
	eventModel "hotelpos/internal/domains/event/model"
	eventService "hotelpos/internal/domains/event/service"
	"hotelpos/internal/domains/order/model"
	"hotelpos/internal/domains/order/model/dto"
	"hotelpos/internal/domains/order/repository"
	productRepo "hotelpos/internal/domains/product/repository"
	reportModel "hotelpos/internal/domains/report/model"
	stayModel "hotelpos/internal/domains/stay/model"
	stayRepo "hotelpos/internal/domains/stay/repository"
	"hotelpos/shared"
	"hotelpos/shared/cache"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/principal"
	"hotelpos/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Order interface {
	Submit(ctx context.Context, actor principal.Principal, req dto.SubmitOrderRequest) (dto.SubmitOrderResponse, error)
	GetReceipt(ctx context.Context, id string) (dto.ReceiptResponse, error)
	Ticket(ctx context.Context, id string) ([]byte, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
}

type serviceImpl struct {
	repo        repository.Order
	productRepo productRepo.Product
	stayRepo    stayRepo.Stay
	transactor  postgres.Transactor
	renderer    docService.Renderer
	publisher   eventService.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Order,
	productRepo productRepo.Product,
	stayRepo stayRepo.Stay,
	transactor postgres.Transactor,
	renderer docService.Renderer,
	publisher eventService.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:        repo,
		productRepo: productRepo,
		stayRepo:    stayRepo,
		transactor:  transactor,
		renderer:    renderer,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, actor principal.Principal, req dto.SubmitOrderRequest) (res dto.SubmitOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateCart(&req); err != nil {
		return res, err
	}

	now := timezone.Now()

	order := model.Order{
		ID:            uuid.NewString(),
		OperatorID:    actor.UserID,
		OperatorName:  actor.Username,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: model.StatusPaid,
		OrderedAt:     now,
	}
	order.Stamp(now, actor.Username)

	if order.IsTransfer() {
		order.StayID = &req.StayID
		order.PaymentStatus = model.StatusTransferred
	}

	var lines []model.Line

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		products, err := s.productRepo.GetByIDsTx(ctx, tx, req.ProductIDs())
		if err != nil {
			return err
		}

		lines = make([]model.Line, len(req.Lines))
		for i, item := range req.Lines {
			product, ok := products[item.ProductID]
			if !ok {
				return failure.NotFound(fmt.Sprintf("product %s not found", item.ProductID)) // nolint:wrapcheck
			}

			if !product.SellableAtPOS() {
				return failure.BadRequestFromString(fmt.Sprintf("%s cannot be sold at the point of sale", product.Name)) // nolint:wrapcheck
			}

			lines[i] = model.Line{
				ID:          uuid.NewString(),
				OrderID:     order.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.UnitPrice,
			}
			lines[i].Stamp(now, actor.Username)

			order.NetTotal = order.NetTotal.Add(lines[i].Subtotal())
		}

		if order.IsTransfer() {
			if err := s.chargeStay(ctx, tx, &order, actor.Username); err != nil {
				return err
			}
		}

		if err := s.repo.InsertTx(ctx, tx, order); err != nil {
			return err
		}

		if err := s.repo.InsertLinesTx(ctx, tx, lines); err != nil {
			return err
		}

		payment := model.Payment{
			ID:      uuid.NewString(),
			OrderID: order.ID,
			Amount:  order.NetTotal,
			Method:  order.PaymentMethod,
			PaidAt:  now,
		}
		payment.Stamp(now, actor.Username)

		return s.repo.InsertPaymentTx(ctx, tx, payment)
	})
	if err != nil {
		if failure.Is(err) {
			return res, err
		}

		log.Error().Err(err).Str("payment_method", req.PaymentMethod).Msg("failed to submit order")

		return res, fmt.Errorf("failed to submit order: %w", err)
	}

	log.Info().
		Str("order_id", order.ID).
		Str("total", order.NetTotal.String()).
		Str("payment_method", order.PaymentMethod).
		Str("actor", actor.Username).
		Msg("order submitted")

	s.invalidate(ctx, order.IsTransfer())
	s.publish(ctx, eventModel.OrderSubmitted{
		OrderID: order.ID,
		Actor:   actor.Username,
		Ticket:  toTicket(order, lines),
	})

	return dto.SubmitOrderResponse{
		ID:            order.ID,
		NetTotal:      order.NetTotal,
		PaymentStatus: order.PaymentStatus,
	}, nil
}

func validateCart(req *dto.SubmitOrderRequest) error {
	if len(req.Lines) == 0 {
		return failure.BadRequestFromString("cart is empty") // nolint:wrapcheck
	}

	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return failure.BadRequestFromString("quantity must be at least 1") // nolint:wrapcheck
		}
	}

	if !slices.Contains(model.Methods, req.PaymentMethod) {
		return failure.BadRequestFromString(fmt.Sprintf("unknown payment method %q", req.PaymentMethod)) // nolint:wrapcheck
	}

	if req.PaymentMethod != model.MethodAccountTransfer {
		req.StayID = constant.Empty

		return nil
	}

	if req.StayID == constant.Empty {
		return failure.BadRequestFromString("stay_id is required for account transfer") // nolint:wrapcheck
	}

	return nil
}

// chargeStay adds the order total to the open stay it is transferred to.
func (s *serviceImpl) chargeStay(ctx context.Context, tx *sqlx.Tx, order *model.Order, user string) error {
	stay, err := s.stayRepo.LockTx(ctx, tx, *order.StayID)
	if err != nil {
		return err
	}

	if stay.ID == constant.Empty {
		return failure.NotFound("stay not found") // nolint:wrapcheck
	}

	if !stay.IsOpen() {
		return failure.Conflict("stay already closed") // nolint:wrapcheck
	}

	_, err = s.stayRepo.AddBalanceTx(ctx, tx, stay.ID, order.NetTotal, user)

	switch {
	case errors.Is(err, stayModel.ErrNotFound):
		return failure.NotFound("stay not found") // nolint:wrapcheck
	case errors.Is(err, stayModel.ErrClosed):
		return failure.Conflict("stay already closed") // nolint:wrapcheck
	case err != nil:
		return err
	}

	order.GuestName = &stay.GuestName
	order.RoomNumber = &stay.RoomNumber

	return nil
}

func (s *serviceImpl) GetReceipt(ctx context.Context, id string) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.GetReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, payment, lines, err := s.receipt(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(order, payment, lines)

	return res, nil
}

func (s *serviceImpl) Ticket(ctx context.Context, id string) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Ticket")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, _, lines, err := s.receipt(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err = s.renderer.Ticket(ctx, toTicket(order, lines))
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to render ticket")

		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) receipt(ctx context.Context, id string) (order model.Order, payment model.Payment, lines []model.Line, err error) {
	order, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get order")

		return order, payment, nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return order, payment, nil, failure.NotFound("order not found") // nolint:wrapcheck
	}

	payment, err = s.repo.GetPayment(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get order payment")

		return order, payment, nil, fmt.Errorf("failed to get order payment: %w", err)
	}

	lines, err = s.repo.GetLines(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get order lines")

		return order, payment, nil, fmt.Errorf("failed to get order lines: %w", err)
	}

	return order, payment, lines, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(orders, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, transfer bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, reportModel.CachePrefix)

		if transfer {
			shared.InvalidateCaches(c, s.cache, stayModel.CachePrefix)
		}
	}()
}

func (s *serviceImpl) publish(ctx context.Context, event eventModel.OrderSubmitted) {
	go func() {
		if err := s.publisher.OrderSubmitted(context.WithoutCancel(ctx), event); err != nil {
			log.Warn().Err(err).Str("order_id", event.OrderID).Msg("order event not published")
		}
	}()
}

func toTicket(order model.Order, lines []model.Line) docModel.Ticket {
	ticket := docModel.Ticket{
		OrderID:       order.ID,
		OrderedAt:     order.OrderedAt,
		Operator:      order.OperatorName,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Total:         order.NetTotal,
		Lines:         make([]docModel.Line, len(lines)),
	}

	if order.GuestName != nil {
		ticket.GuestName = *order.GuestName
	}

	if order.RoomNumber != nil {
		ticket.RoomNumber = *order.RoomNumber
	}

	for i, line := range lines {
		ticket.Lines[i] = docModel.Line{
			Name:      line.ProductName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
			OrderedAt: order.OrderedAt,
		}
	}

	return ticket
}

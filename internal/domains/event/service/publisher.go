package service

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelpos/config"
	"hotelpos/infras/kafka"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/event/model"
	"hotelpos/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher emits domain events after the originating transaction has committed.
type Publisher interface {
	StayCheckedOut(ctx context.Context, event model.StayCheckedOut) error
	OrderSubmitted(ctx context.Context, event model.OrderSubmitted) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) StayCheckedOut(ctx context.Context, event model.StayCheckedOut) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".StayCheckedOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	event.Type = model.TypeStayCheckedOut

	return p.publish(ctx, p.cfg.Kafka.Topics.StayCheckedOut, event.StayID, event)
}

func (p *publisherImpl) OrderSubmitted(ctx context.Context, event model.OrderSubmitted) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".OrderSubmitted")
	defer scope.End()
	defer scope.TraceIfError(err)

	event.Type = model.TypeOrderSubmitted

	return p.publish(ctx, p.cfg.Kafka.Topics.OrderSubmitted, event.OrderID, event)
}

func (p *publisherImpl) publish(ctx context.Context, topic, key string, value any) error {
	if !p.cfg.Kafka.Enable {
		log.Debug().Str("topic", topic).Str("key", key).Msg("kafka disabled, event dropped")

		return nil
	}

	if err := p.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: value}); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish event")

		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	return nil
}

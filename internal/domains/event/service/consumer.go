package service

import (
	"context"
	"fmt"
	"time"

	"hotelpos/config"
	"hotelpos/infras/kafka"
	"hotelpos/infras/otel"
	docService "hotelpos/internal/domains/document/service"
	"hotelpos/internal/domains/event/model"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// Consumer archives the documents attached to published events.
type Consumer struct {
	client   kafka.Client
	archiver docService.Archiver
	cfg      *config.Config
	otel     otel.Otel
}

const flushTimeout = 5 * time.Second

func NewConsumer(client kafka.Client, archiver docService.Archiver, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client:   client,
		archiver: archiver,
		cfg:      cfg,
		otel:     otel,
	}
}

// Run consumes both topics until ctx is cancelled, then flushes pending spans.
func (c *Consumer) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.StayCheckedOut, c.HandleStayCheckedOut)

		return nil
	})

	group.Go(func() error {
		c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.OrderSubmitted, c.HandleOrderSubmitted)

		return nil
	})

	log.Info().
		Str("group", c.cfg.Kafka.ConsumerGroup).
		Strs("topics", []string{c.cfg.Kafka.Topics.StayCheckedOut, c.cfg.Kafka.Topics.OrderSubmitted}).
		Msg("archive consumer started")

	err := group.Wait()

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()

	if flushErr := c.otel.Shutdown(flushCtx); flushErr != nil {
		log.Warn().Err(flushErr).Msg("failed to flush traces")
	}

	if err != nil {
		return fmt.Errorf("archive consumer stopped: %w", err)
	}

	return nil
}

func (c *Consumer) HandleStayCheckedOut(ctx context.Context, msg kafkaGo.Message) error {
	event, err := kafka.Decode[model.StayCheckedOut](msg)
	if err != nil {
		// malformed payloads are committed and skipped
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping malformed stay event")

		return nil
	}

	if _, err = c.archiver.ArchiveInvoice(ctx, event.Invoice); err != nil {
		return fmt.Errorf("failed to archive invoice of stay %s: %w", event.StayID, err)
	}

	return nil
}

func (c *Consumer) HandleOrderSubmitted(ctx context.Context, msg kafkaGo.Message) error {
	event, err := kafka.Decode[model.OrderSubmitted](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping malformed order event")

		return nil
	}

	if _, err = c.archiver.ArchiveTicket(ctx, event.Ticket); err != nil {
		return fmt.Errorf("failed to archive ticket of order %s: %w", event.OrderID, err)
	}

	return nil
}

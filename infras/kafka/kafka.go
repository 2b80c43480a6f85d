// Package kafka wraps segmentio/kafka-go with JSON payloads, one cached writer per topic
// and consumer-group readers that commit only after a message is handled.
package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hotelpos/config"
	"hotelpos/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	handleAttempts = 3
	handleBackoff  = time.Second
	headerContent  = "content-type"
)

type Message struct {
	Key   string
	Value any
}

// Encode marshals Value to JSON and keys the message so one stay or order always lands on
// the same partition.
func (m Message) Encode() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("encode message %s: %w", m.Key, err)
	}

	return kafkaGo.Message{
		Key:     []byte(m.Key),
		Value:   value,
		Headers: []kafkaGo.Header{{Key: headerContent, Value: []byte(constant.ContentTypeJSON)}},
	}, nil
}

func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("decode message from %s at offset %d: %w", msg.Topic, msg.Offset, err)
	}

	return value, nil
}

// Handler processes one message. A nil return commits the offset.
type Handler func(ctx context.Context, message kafkaGo.Message) error

// WithRetry calls handler up to attempts times, waiting backoff times the attempt number
// between calls. It gives up early when ctx is done.
func WithRetry(handler Handler, attempts int, backoff time.Duration) Handler {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		var err error

		for attempt := 1; attempt <= attempts; attempt++ {
			if err = handler(ctx, msg); err == nil {
				return nil
			}

			if attempt == attempts {
				break
			}

			log.Warn().Err(err).Str("topic", msg.Topic).Int("attempt", attempt).Msg("retrying kafka message")

			select {
			case <-ctx.Done():
				return errors.Join(err, ctx.Err())
			case <-time.After(backoff * time.Duration(attempt)):
			}
		}

		return err
	}
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler)
	Close() error
}

type kafkaClientImpl struct {
	brokers   []string
	group     string
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	var mechanism sasl.Mechanism
	if auth := cfg.Kafka.SASL; auth.Username != "" {
		mechanism = plain.Mechanism{Username: auth.Username, Password: auth.Password}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("sasl", mechanism != nil).Msg("kafka client ready")

	return &kafkaClientImpl{
		brokers:   cfg.Kafka.Brokers,
		group:     cfg.Kafka.ConsumerGroup,
		dialer:    &kafkaGo.Dialer{DualStack: true, SASLMechanism: mechanism},
		transport: &kafkaGo.Transport{SASL: mechanism},
		writers:   map[string]*kafkaGo.Writer{},
	}
}

func (k *kafkaClientImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	writer, ok := k.writers[topic]
	if !ok {
		writer = &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(k.brokers...),
			Topic:                  topic,
			Transport:              k.transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafkaGo.RequireOne,
		}
		k.writers[topic] = writer
	}

	return writer
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	encoded := make([]kafkaGo.Message, len(messages))

	for i, message := range messages {
		if encoded[i], err = message.Encode(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to encode kafka message")

			return err
		}
	}

	if err = k.writer(topic).WriteMessages(ctx, encoded...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to write kafka messages")

		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(encoded)).Msg("kafka messages written")

	return nil
}

// Consume blocks until ctx is done. A message whose handler still fails after retries is
// left uncommitted and logged; the group redelivers it after a rebalance or restart.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) {
	if topic == "" {
		log.Error().Msg("kafka consumer started without a topic")

		return
	}

	if consumerGroup == "" {
		consumerGroup = k.group
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.brokers,
		Topic:       topic,
		GroupID:     consumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to close kafka reader")
		}
	}()

	handle := WithRetry(handler, handleAttempts, handleBackoff)

	for {
		msg, err := reader.FetchMessage(ctx)
		if ctx.Err() != nil {
			log.Info().Str("topic", topic).Msg("kafka consumer stopped")

			return
		}

		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to fetch kafka message")

			continue
		}

		logger := log.With().Str("topic", topic).Str("key", string(msg.Key)).Int64("offset", msg.Offset).Logger()

		if err := handle(ctx, msg); err != nil {
			logger.Error().Err(err).Msg("giving up on kafka message")

			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error().Err(err).Msg("failed to commit kafka message")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	errs := make([]error, 0, len(k.writers))

	for topic, writer := range k.writers {
		if err := writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close writer %s: %w", topic, err))
		}
	}

	clear(k.writers)

	return errors.Join(errs...)
}

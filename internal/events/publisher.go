package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// OrderCreatedEvent is emitted after a checkout transaction commits.
// The total is a decimal string to avoid binary float representation on
// the wire.
type OrderCreatedEvent struct {
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	Total      string    `json:"total"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
	EventTime  time.Time `json:"event_time"`
}

// Publisher defines the interface for emitting order events.
type Publisher interface {
	// PublishOrderCreated emits an order-created event.
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error

	// Close releases resources held by the publisher.
	Close() error
}

// kafkaPublisher implements Publisher on top of a Kafka topic.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   zerolog.Logger
}

// NewKafkaPublisher creates a Publisher backed by a Kafka sync producer.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return newKafkaPublisher(producer, topic, logger), nil
}

// newKafkaPublisher wires an existing producer; split out so tests can
// inject a mock producer.
func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger zerolog.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With().Str("component", "order-events").Logger(),
	}
}

// PublishOrderCreated emits an order-created event keyed by order ID.
func (p *kafkaPublisher) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event.EventTime = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", event.OrderID)),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error().
			Err(err).
			Int64("order_id", event.OrderID).
			Msg("failed to publish order event")
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.logger.Info().
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Int64("order_id", event.OrderID).
		Msg("order event published")

	return nil
}

// Close shuts down the underlying producer.
func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// nopPublisher discards all events. Used when event publishing is disabled.
type nopPublisher struct{}

// NewNopPublisher creates a Publisher that discards all events.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishOrderCreated(context.Context, OrderCreatedEvent) error { return nil }

func (nopPublisher) Close() error { return nil }

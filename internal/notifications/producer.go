package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"seatgrid/internal/reservations"
	"seatgrid/internal/shared/config"
	"seatgrid/pkg/logger"
)

const (
	EventTypeHoldCreated  = "hold.created"
	EventTypeHoldReleased = "hold.released"
)

// HoldEvent is the broker message for a hold lifecycle transition. Messages
// are keyed by hold id so one hold's events land on one partition in order.
type HoldEvent struct {
	Type          string    `json:"type"`
	HoldID        string    `json:"hold_id"`
	EventID       string    `json:"event_id,omitempty"`
	HolderID      string    `json:"holder_id,omitempty"`
	SeatIDs       []string  `json:"seat_ids,omitempty"`
	SeatsReleased int64     `json:"seats_released,omitempty"`
	ExpiresAt     time.Time `json:"expires_at,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// KafkaProducer publishes hold lifecycle events to the configured topic.
// Implements reservations.Publisher.
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

func NewKafkaProducer(cfg *config.Config) (*KafkaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = cfg.Kafka.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(cfg.Kafka.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		topic:    cfg.Kafka.HoldsTopic,
		log:      logger.GetDefault(),
	}, nil
}

func (p *KafkaProducer) PublishHoldCreated(ctx context.Context, hold reservations.HoldResponse) error {
	return p.publish(ctx, HoldEvent{
		Type:       EventTypeHoldCreated,
		HoldID:     hold.HoldID,
		EventID:    hold.EventID,
		HolderID:   hold.HolderID,
		SeatIDs:    hold.SeatIDs,
		ExpiresAt:  hold.ExpiresAt,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *KafkaProducer) PublishHoldReleased(ctx context.Context, holdID string, seatsReleased int64) error {
	return p.publish(ctx, HoldEvent{
		Type:          EventTypeHoldReleased,
		HoldID:        holdID,
		SeatsReleased: seatsReleased,
		OccurredAt:    time.Now().UTC(),
	})
}

func (p *KafkaProducer) publish(ctx context.Context, event HoldEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hold event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.HoldID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.log.Debug("hold event published",
		"type", event.Type,
		"hold_id", event.HoldID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}

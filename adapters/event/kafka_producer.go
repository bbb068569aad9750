package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/internal/config"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

const (
	TopicContentEvents = "content.events"

	EventProfileSynced  = "profile.synced"
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"
)

type ContentEventPayload struct {
	EventType  string    `json:"event_type"`
	ResourceID string    `json:"resource_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ContentEventPublisher interface {
	// PublishAsync fires the event without blocking the caller. Failures are
	// logged; a dead broker never fails a content write.
	PublishAsync(eventType, resourceID string)
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		logger:              log,
	}, nil
}

func (c *KafkaProducerClient) PublishAsync(eventType, resourceID string) {
	payload := ContentEventPayload{
		EventType:  eventType,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}

	go func() {
		raw, err := json.Marshal(payload)
		if err != nil {
			c.logger.Error("failed to marshal content event", err, zap.String("event_type", eventType))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err = c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
			Key:   []byte(eventType),
			Value: raw,
		})
		if err != nil {
			c.logger.Error("failed to publish content event", err, zap.String("event_type", eventType))
		}
	}()
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producer")
}

// NopPublisher is used when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishAsync(string, string) {}

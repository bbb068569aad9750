package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	renderUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/render"
	"github.com/sharafhazem/portfolio-ops/internal/config"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

func main() {
	fmt.Println("Starting Portfolio Ops Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	// Redis render cache
	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()
	renderCache := persistence.NewRenderCache(redisClient, appLogger)

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)

	// Worker Use Case
	rebuildCacheUC := renderUC.NewRebuildCacheUseCase(profileRepo, projectRepo, renderCache)

	// Kafka Consumer
	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "render-cache-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contentConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for resource: %s", payload.EventType, payload.ResourceID)

		err = rebuildCacheUC.Execute(ctx, payload)
		if err != nil {
			log.Printf("ERROR: Failed to process event %s: %v", payload.EventType, err)
			continue
		}

		commitMessage(contentConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}

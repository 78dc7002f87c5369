// The worker tails the appointment event channel and logs every change.
// It is the consuming side of the broker the API publishes to, useful for
// audit trails and for verifying the event stream in deployments.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinickit/agenda-api/internal/config"
	"github.com/clinickit/agenda-api/pkg/logger"
	"github.com/clinickit/agenda-api/pkg/messaging"
	redisbroker "github.com/clinickit/agenda-api/pkg/messaging/redis"
)

const eventChannel = "agenda.appointments"

func main() {
	_ = godotenv.Load()

	appLogger := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal(err, "failed to load configuration")
	}
	if cfg.Redis.URL == "" {
		appLogger.Fatal(nil, "redis url is required for the worker")
	}

	broker, err := redisbroker.NewRedisBroker(redisbroker.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   3,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     5,
		MinIdleConns: 1,
	}, appLogger.Zerolog())
	if err != nil {
		appLogger.Fatal(err, "failed to connect to redis")
	}
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := broker.Subscribe(ctx, eventChannel)
	if err != nil {
		appLogger.Fatal(err, "failed to subscribe")
	}

	appLogger.Info("worker listening", "channel", eventChannel)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			appLogger.Info("worker shutting down")
			return
		case payload, ok := <-messages:
			if !ok {
				appLogger.Warn("event channel closed")
				return
			}
			var event messaging.Event
			if err := json.Unmarshal(payload, &event); err != nil {
				appLogger.Error(err, "malformed event")
				continue
			}
			appLogger.Zerolog().Info().
				Str("type", event.Type).
				Str("resource", event.Resource).
				Str("resource_id", event.ResourceID).
				Interface("payload", event.Payload).
				Msg("appointment event")
		}
	}
}

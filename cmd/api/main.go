package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinickit/agenda-api/internal/config"
	appointmentHandler "github.com/clinickit/agenda-api/internal/handler/appointment"
	healthHandler "github.com/clinickit/agenda-api/internal/handler/health"
	"github.com/clinickit/agenda-api/internal/middleware"
	"github.com/clinickit/agenda-api/internal/repository"
	"github.com/clinickit/agenda-api/internal/repository/memory"
	"github.com/clinickit/agenda-api/internal/repository/postgres"
	"github.com/clinickit/agenda-api/internal/router"
	appointmentService "github.com/clinickit/agenda-api/internal/service/appointment"
	"github.com/clinickit/agenda-api/pkg/logger"
	"github.com/clinickit/agenda-api/pkg/messaging"
	redisbroker "github.com/clinickit/agenda-api/pkg/messaging/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appLogger := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal(err, "failed to load configuration")
	}

	// The store adapter is chosen exactly once here; nothing downstream
	// branches on which implementation is active.
	repo := newStore(cfg, appLogger)

	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redisbroker.NewRedisBroker(redisbroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, appLogger.Zerolog())
		if err != nil {
			appLogger.Error(err, "redis unavailable, events disabled")
			broker = nil
		} else {
			defer broker.Close()
		}
	}

	appointmentSvc := appointmentService.NewService(repo, cfg.Store.CacheTTL, broker, appLogger.Zerolog())

	var auth *middleware.AuthMiddleware
	if cfg.Auth.JWTSecret != "" {
		auth = middleware.NewAuthMiddleware(cfg.Auth.JWTSecret)
	}

	r := router.NewRouter(
		auth,
		appointmentHandler.NewHandler(appointmentSvc),
		healthHandler.NewHandler(repo),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			RequestTimeout: cfg.Server.RequestTimeout,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "agenda",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error(err, "forced shutdown")
	}
}

func newStore(cfg *config.Config, appLogger *logger.Logger) repository.AppointmentRepository {
	switch cfg.Store.Mode {
	case "memory":
		appLogger.Info("using in-memory store")
		return memory.NewSeededRepository(time.Now())
	case "postgres":
		db, err := postgres.NewDB(cfg.Database)
		if err != nil {
			appLogger.Fatal(err, "failed to connect to database")
		}
		return postgres.NewAppointmentRepository(db)
	default: // auto
		db, err := postgres.NewDB(cfg.Database)
		if err != nil {
			appLogger.Warn("database unreachable, falling back to in-memory store")
			return memory.NewSeededRepository(time.Now())
		}
		return postgres.NewAppointmentRepository(db)
	}
}

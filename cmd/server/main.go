package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cjalex1313/trex-gym/internal/api"
	"github.com/cjalex1313/trex-gym/internal/api/handler"
	"github.com/cjalex1313/trex-gym/internal/core/service"
	"github.com/cjalex1313/trex-gym/internal/infrastructure/config"
	mongodb "github.com/cjalex1313/trex-gym/internal/infrastructure/db/mongo"
	redisdb "github.com/cjalex1313/trex-gym/internal/infrastructure/db/redis"
	"github.com/cjalex1313/trex-gym/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Level: "info"})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = redisClient.Close()
	}()

	credentialRepo := mongodb.NewCredentialRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	subscriptionRepo := mongodb.NewSubscriptionRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	tokenService := service.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AdminExpiry,
		cfg.Auth.ClientExpiry,
		cfg.Auth.RefreshExpiry,
	)
	authService := service.NewAuthService(credentialRepo, tokenService, log)
	clientService := service.NewClientService(clientRepo, log)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, clientRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, subscriptionRepo, clientRepo, log)

	loginLimiter := redisdb.NewLoginLimiter(
		redisClient,
		int64(cfg.Auth.RateLimit),
		service.ParseExpiry(cfg.Auth.RateWindow, time.Minute),
	)

	e := api.NewRouter(api.Dependencies{
		Logger:        log,
		Verifier:      tokenService,
		LoginLimiter:  loginLimiter,
		Auth:          handler.NewAuthHandler(authService),
		Clients:       handler.NewClientHandler(clientService),
		Subscriptions: handler.NewSubscriptionHandler(subscriptionService),
		Payments:      handler.NewPaymentHandler(paymentService),
		Health:        handler.NewHealthHandler(mongoClient, redisClient),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

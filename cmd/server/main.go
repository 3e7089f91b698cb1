package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charactervault/character-api/internal/api"
	"github.com/charactervault/character-api/internal/core/service"
	"github.com/charactervault/character-api/internal/infrastructure/config"
	mongodb "github.com/charactervault/character-api/internal/infrastructure/db/mongo"
	redisdb "github.com/charactervault/character-api/internal/infrastructure/db/redis"
	"github.com/charactervault/character-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	redisCfg := redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	rdb, err := redisCfg.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	characterRepo := mongodb.NewCharacterRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	auth := service.NewAuthService(userRepo, tokens, throttle, log)
	characters := service.NewCharacterService(characterRepo, log)
	userAdmin := service.NewUserAdminService(userRepo, log)

	e := api.NewRouter(api.Services{
		Tokens:     tokens,
		Auth:       auth,
		Characters: characters,
		UserAdmin:  userAdmin,
	}, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}

package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/dwiprasetyo/auth-session-service/config"
	"github.com/dwiprasetyo/auth-session-service/db"
	"github.com/dwiprasetyo/auth-session-service/internal/auth/handler"
	"github.com/dwiprasetyo/auth-session-service/internal/auth/hash"
	repo "github.com/dwiprasetyo/auth-session-service/internal/auth/repository/postgres"
	"github.com/dwiprasetyo/auth-session-service/internal/auth/service"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer dbPool.Close()

	authRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin)
	authService := service.NewAuthService(authRepo, authRepo, hash.NewBcryptHasher(), tokenService, cfg, log)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth service listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stderr
	logger := zerolog.New(out).Level(level).With().Timestamp().Str("service", "auth").Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out})
	}
	return logger
}

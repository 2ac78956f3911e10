package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/config"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/database"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/handlers"
	customMiddleware "github.com/Team-Hexagon-607-2/fast-grocer-server/middleware"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/routes"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/utils"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to database")
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			logger.Error().Err(err).Msg("closing database")
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("creating indexes")
	}
	logger.Info().Str("db", cfg.DBName).Msg("connected to mongodb")

	h := &handlers.Handler{
		Users:     stores.NewUserStore(db.DB),
		Catalog:   stores.NewCatalogStore(db.DB),
		Orders:    stores.NewOrderStore(db.DB),
		Wishlist:  stores.NewWishlistStore(db.DB),
		Reviews:   stores.NewReviewStore(db.DB),
		Coupons:   stores.NewCouponStore(db.DB),
		Payments:  utils.NewPaymentProcessor(cfg.StripeSecretKey),
		JWTSecret: cfg.JWTSecret,
		Log:       logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			evt := logger.Info()
			if v.Error != nil {
				evt = logger.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
	}))
	e.Use(customMiddleware.Metrics())

	routes.SetupRoutes(e, h)

	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	logger.Info().Str("port", cfg.Port).Msg("fast grocer server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

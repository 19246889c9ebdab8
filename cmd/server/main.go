package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mhdksr/commerce_backend/internal/config"
	"github.com/mhdksr/commerce_backend/internal/db"
	"github.com/mhdksr/commerce_backend/internal/es"
	"github.com/mhdksr/commerce_backend/internal/httpserver"
	"github.com/mhdksr/commerce_backend/internal/logging"
	"github.com/mhdksr/commerce_backend/internal/middleware"
	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/repo"
	"github.com/mhdksr/commerce_backend/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmptyBytes(cfg.RefreshSecret, "REFRESH_SECRET")

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	gormRepo := &repo.GormRepo{DB: database}

	catalogHandler := &httpserver.CatalogHTTP{
		Svc:      &service.CatalogService{Repo: gormRepo},
		Producer: producer,
		ESIndex:  cfg.ESIndex,
	}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		catalogHandler.ES = esClient
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{DB: database, JWTSecret: cfg.JWTSecret, RefreshSecret: cfg.RefreshSecret, Producer: producer},
		CatalogHandler: catalogHandler,
		AddressHandler: &httpserver.AddressHTTP{Svc: &service.AddressService{Repo: gormRepo}},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: gormRepo}, Producer: producer},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}, Producer: producer},
		AuthMW:         middleware.NewAuthMiddleware(cfg.JWTSecret),
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		logger.Info("starting server", "addr", addr, "service", cfg.ServiceName)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}

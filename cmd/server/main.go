package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/techmarket/storefront/internal/cache"
	"github.com/techmarket/storefront/internal/config"
	"github.com/techmarket/storefront/internal/events"
	"github.com/techmarket/storefront/internal/httpserver"
	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/middleware/requestlog"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
	"github.com/techmarket/storefront/internal/search"
	"github.com/techmarket/storefront/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Warn("kafka disabled, no brokers configured")
	}

	statsCache := cache.New(cfg.RedisAddr)
	if statsCache == nil {
		logger.Warn("redis disabled, stats caching off")
	}

	var index *search.Index
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(search.Config{
			URL:      cfg.ESURL,
			User:     cfg.ESUser,
			Password: cfg.ESPassword,
		})
		if err != nil {
			logger.Error("elasticsearch init failed", "error", err)
			os.Exit(1)
		}
		index = search.NewIndex(esClient, cfg.ESIndex)
	} else {
		logger.Warn("elasticsearch disabled, product search off")
	}

	store := &repo.GormRepo{DB: db}

	authSvc := &service.AuthService{
		Repo:          store,
		JWTSecret:     cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		Producer:      producer,
	}
	cartSvc := &service.CartService{Repo: store}
	orderSvc := &service.OrderService{Repo: store, Producer: producer}
	favoriteSvc := &service.FavoriteService{Repo: store}
	catalogSvc := &service.CatalogService{Repo: store, Index: index}
	statsSvc := &service.StatsService{Repo: store, Cache: statsCache}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{cfg.ClientURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowCredentials: cfg.ClientURL != "*",
		}),
		requestlog.New(logger),
	)

	httpserver.Register(e, &httpserver.Deps{
		Auth:     &httpserver.AuthHTTP{Svc: authSvc},
		Cart:     &httpserver.CartHTTP{Svc: cartSvc},
		Order:    &httpserver.OrderHTTP{Svc: orderSvc},
		Favorite: &httpserver.FavoriteHTTP{Svc: favoriteSvc},
		Product:  &httpserver.ProductHTTP{Svc: catalogSvc, Index: index},
		Image:    &httpserver.ImageHTTP{Svc: catalogSvc, UploadDir: cfg.UploadDir},
		Stats:    &httpserver.StatsHTTP{Svc: statsSvc},

		JWTSecret: cfg.JWTAccessSecret,
		UploadDir: cfg.UploadDir,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	if err := statsCache.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	logger.Info("shutdown complete")
}

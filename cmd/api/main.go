package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"products-api/app"
	"products-api/app/categories"
	"products-api/app/products"
	_ "products-api/docs"
	"products-api/internal/config"
	"products-api/internal/database"
	"products-api/models"
)

// @title        Products API
// @version      1.0
// @description  REST API for products and categories with pagination and seeded demo data.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	if err := database.Seed(db, &logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	productsHandler := products.NewProductsHandler(models.NewProductsRepository(db))
	categoriesHandler := categories.NewCategoryHandler(models.NewCategoriesRepository(db))

	r := app.NewRouter(productsHandler, categoriesHandler, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}

		shutdownCompleted <- struct{}{}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server failed")
	}
	<-shutdownCompleted
	logger.Info().Msg("server stopped")
}

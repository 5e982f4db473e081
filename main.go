package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"real-estate-api/config"
	"real-estate-api/middleware"
	"real-estate-api/routes"
	"real-estate-api/seed"
	"real-estate-api/utils"
)

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: "2006-01-02 15:04:05"})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

func setupRouter(db *gorm.DB, redisClient *redis.Client, tokens *utils.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Recover)
	routes.Routes(router, db, redisClient, tokens)
	return router
}

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		slog.Error("Failed to connect to the database", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to database", "driver", cfg.Database.Driver)

	redisClient := config.InitRedis(cfg)

	if err := seed.Run(context.Background(), db, seed.Options{
		FilePath:          cfg.Seed.FilePath,
		FallbackImage:     cfg.Seed.FallbackImage,
		WebRoot:           cfg.Seed.WebRoot,
		ValidateImages:    cfg.Seed.ValidateImages,
		MaxParallelChecks: cfg.Seed.MaxParallelChecks,
		HeadTimeout:       time.Duration(cfg.Seed.HeadTimeoutSeconds) * time.Second,
	}); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	tokens := utils.NewTokenManager(cfg)
	router := setupRouter(db, redisClient, tokens)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		slog.Info("Server running", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Error during server shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("Server gracefully stopped")
}

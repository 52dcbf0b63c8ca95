package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/carsapi/carsapi-go/internal/config"
	"github.com/carsapi/carsapi-go/internal/handler"
	"github.com/carsapi/carsapi-go/internal/repository"
	"github.com/carsapi/carsapi-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := repository.Migrate(context.Background(), db, cfg.DatabaseDriver); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	denylist, closeDenylist, err := newDenylist(cfg.RedisURL)
	if err != nil {
		slog.Error("token denylist unavailable", "error", err)
		os.Exit(1)
	}
	defer closeDenylist()

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry(), denylist)

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokenService)
	authHandler := handler.NewAuthHandler(authService)

	carRepo := repository.NewCarRepository(db)
	carService := service.NewCarService(carRepo)
	carHandler := handler.NewCarHandler(carService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(authHandler, carHandler, tokenService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newDenylist connects to Redis when a URL is configured. Without one, revoked
// tokens are only tracked in this process.
func newDenylist(redisURL string) (repository.TokenDenylist, func(), error) {
	if redisURL == "" {
		slog.Warn("REDIS_URL not set, using in-memory token denylist")
		return repository.NewMemoryDenylist(), func() {}, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	slog.Info("connected to redis", "addr", opt.Addr, "db", opt.DB)
	return repository.NewRedisDenylist(client), func() { client.Close() }, nil
}

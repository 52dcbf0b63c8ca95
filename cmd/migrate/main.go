// Command migrate applies the embedded schema migrations and optionally seeds
// sample data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/carsapi/carsapi-go/internal/config"
	"github.com/carsapi/carsapi-go/internal/repository"
	"github.com/carsapi/carsapi-go/internal/service"
)

func main() {
	var seed bool
	flag.BoolVar(&seed, "seed", false, "insert sample cars and a demo user after migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, seed); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, seed bool) error {
	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db, cfg.DatabaseDriver); err != nil {
		return err
	}
	slog.Info("migrations up to date", "driver", cfg.DatabaseDriver)

	if !seed {
		return nil
	}

	// The demo user's token is never used, so the denylist is process-local.
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry(), repository.NewMemoryDenylist())
	auth := service.NewAuthService(repository.NewUserRepository(db), tokens)
	seeder := service.NewSeeder(repository.NewCarRepository(db), auth)

	result, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}
	slog.Info("seed complete", "cars_inserted", result.CarsInserted)

	if result.DemoPassword != "" {
		fmt.Printf("Demo user created:\n  email:    %s\n  password: %s\n", result.DemoEmail, result.DemoPassword)
	}
	return nil
}

package service

import (
	"context"
	"testing"

	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/repository"
)

func TestSeed(t *testing.T) {
	auth, db := newTestAuthService(t)
	cars := repository.NewCarRepository(db)
	seeder := NewSeeder(cars, auth)
	ctx := context.Background()

	result, err := seeder.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed() unexpected error: %v", err)
	}
	if result.CarsInserted != len(SampleCars) {
		t.Errorf("CarsInserted = %d, want %d", result.CarsInserted, len(SampleCars))
	}
	if result.DemoEmail != DemoUserEmail {
		t.Errorf("DemoEmail = %q, want %q", result.DemoEmail, DemoUserEmail)
	}
	if len(result.DemoPassword) != demoPasswordLength {
		t.Errorf("DemoPassword length = %d, want %d", len(result.DemoPassword), demoPasswordLength)
	}

	token, err := auth.Login(ctx, model.LoginRequest{Email: DemoUserEmail, Password: result.DemoPassword})
	if err != nil {
		t.Fatalf("Login() with demo password unexpected error: %v", err)
	}
	if token.AccessToken == "" {
		t.Error("Login() returned empty token")
	}

	listed, err := cars.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(listed) != len(SampleCars) {
		t.Fatalf("List() = %d cars, want %d", len(listed), len(SampleCars))
	}
	if listed[0].Name != SampleCars[0].Name {
		t.Errorf("first car = %q, want %q", listed[0].Name, SampleCars[0].Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	auth, db := newTestAuthService(t)
	cars := repository.NewCarRepository(db)
	seeder := NewSeeder(cars, auth)
	ctx := context.Background()

	if _, err := seeder.Seed(ctx); err != nil {
		t.Fatalf("first Seed() unexpected error: %v", err)
	}

	result, err := seeder.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed() unexpected error: %v", err)
	}
	if result.CarsInserted != 0 {
		t.Errorf("CarsInserted = %d, want 0", result.CarsInserted)
	}
	if result.DemoPassword != "" {
		t.Error("second Seed() reported a new demo password")
	}

	listed, err := cars.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(listed) != len(SampleCars) {
		t.Errorf("List() = %d cars, want %d", len(listed), len(SampleCars))
	}

	var users int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 1 {
		t.Errorf("users = %d, want 1", users)
	}
}

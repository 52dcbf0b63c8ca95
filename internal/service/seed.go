package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carsapi/carsapi-go/internal/crypto"
	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/repository"
)

const (
	DemoUserName  = "Demo User"
	DemoUserEmail = "demo@carsapi.local"

	demoPasswordLength = 16
)

// SampleCars is the catalogue inserted into an empty cars table.
var SampleCars = []model.Car{
	{Name: "Toyota Corolla", Description: "Compact sedan with a 1.8L hybrid powertrain."},
	{Name: "Ford Mustang", Description: "Rear-wheel drive coupe with a 5.0L V8."},
	{Name: "Tesla Model 3", Description: "All-electric midsize sedan."},
	{Name: "Volkswagen Golf", Description: "Five-door hatchback with a turbocharged 1.5L engine."},
	{Name: "Honda Civic", Description: "Compact car available as sedan or hatchback."},
	{Name: "Mazda MX-5", Description: "Two-seat roadster with a soft top."},
}

// SeedResult reports what Seed changed. DemoPassword is only set when the demo
// user was created in this run.
type SeedResult struct {
	CarsInserted int
	DemoEmail    string
	DemoPassword string
}

// Seeder fills an empty database with sample data.
type Seeder struct {
	cars *repository.CarRepository
	auth *AuthService
}

// NewSeeder creates a new Seeder.
func NewSeeder(cars *repository.CarRepository, auth *AuthService) *Seeder {
	return &Seeder{cars: cars, auth: auth}
}

// Seed inserts SampleCars when no car exists and registers the demo user with a
// generated password unless it is already present. Running it twice changes nothing.
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	existing, err := s.cars.List(ctx)
	if err != nil {
		return result, fmt.Errorf("list cars: %w", err)
	}
	if len(existing) == 0 {
		for _, sample := range SampleCars {
			car := sample
			if err := s.cars.Create(ctx, &car); err != nil {
				return result, fmt.Errorf("create car %q: %w", car.Name, err)
			}
			result.CarsInserted++
		}
	}

	password, err := crypto.GeneratePassword(demoPasswordLength)
	if err != nil {
		return result, fmt.Errorf("generate demo password: %w", err)
	}

	_, err = s.auth.Register(ctx, model.RegisterRequest{
		Name:                 DemoUserName,
		Email:                DemoUserEmail,
		Password:             password,
		PasswordConfirmation: password,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && len(verr.Fields["email"]) > 0 {
			return result, nil
		}
		return result, fmt.Errorf("register demo user: %w", err)
	}

	result.DemoEmail = DemoUserEmail
	result.DemoPassword = password
	return result, nil
}

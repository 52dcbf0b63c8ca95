package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/repository"
)

var ErrCarNotFound = errors.New("car not found")

// CarService exposes read access to the car catalogue.
type CarService struct {
	repo *repository.CarRepository
}

// NewCarService creates a new CarService.
func NewCarService(repo *repository.CarRepository) *CarService {
	return &CarService{repo: repo}
}

// ListCars returns every car, unfiltered and unpaginated.
func (s *CarService) ListCars(ctx context.Context) ([]model.Car, error) {
	cars, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return cars, nil
}

// GetCar returns the car with the given ID. IDs that cannot exist yield ErrCarNotFound.
func (s *CarService) GetCar(ctx context.Context, id int64) (model.Car, error) {
	if id <= 0 {
		return model.Car{}, ErrCarNotFound
	}

	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.Car{}, ErrCarNotFound
		}
		return model.Car{}, fmt.Errorf("get car %d: %w", id, err)
	}
	return *car, nil
}

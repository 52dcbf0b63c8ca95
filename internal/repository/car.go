package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carsapi/carsapi-go/internal/model"
)

var ErrCarNotFound = errors.New("car not found")

// CarRepository handles car persistence operations.
type CarRepository struct {
	db *sql.DB
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create inserts a car. Only seeding and tests write cars; the HTTP API is read-only.
func (r *CarRepository) Create(ctx context.Context, car *model.Car) error {
	query := `INSERT INTO cars (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`

	ts := now()
	result, err := r.db.ExecContext(ctx, query, car.Name, car.Description, ts, ts)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	car.ID = id
	car.CreatedAt = ts
	car.UpdatedAt = ts
	return nil
}

// List retrieves every car ordered by ID. The result is never nil.
func (r *CarRepository) List(ctx context.Context) ([]model.Car, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM cars ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []model.Car{}
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}

	return cars, rows.Err()
}

// GetByID retrieves a car by its ID.
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM cars WHERE id = ?`

	car := &model.Car{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&car.ID, &car.Name, &car.Description, &car.CreatedAt, &car.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	return car, nil
}

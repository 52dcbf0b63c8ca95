package model

import "time"

// Car is a catalogue record. The API only ever reads cars.
type Car struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CarListResponse wraps the full car listing.
type CarListResponse struct {
	Message string `json:"message"`
	Data    []Car  `json:"data"`
}

// CarResponse wraps a single car.
type CarResponse struct {
	Message string `json:"message"`
	Data    Car    `json:"data"`
}

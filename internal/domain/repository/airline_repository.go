package repository

import (
	"context"

	"airline-service/internal/domain/entity"
)

// AirlineRepository defines the interface for airline operations.
// Airlines are always returned with their airports loaded.
type AirlineRepository interface {
	FindAll(ctx context.Context) ([]entity.Airline, error)
	// FindByID returns nil, nil when no airline matches.
	FindByID(ctx context.Context, id uint) (*entity.Airline, error)
	// Save inserts or updates the airline and replaces its stored airport
	// set with airline.Airports. Generated fields are written back.
	Save(ctx context.Context, airline *entity.Airline) error
	Remove(ctx context.Context, airline *entity.Airline) error
}

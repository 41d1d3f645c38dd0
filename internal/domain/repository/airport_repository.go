package repository

import (
	"context"

	"airline-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport operations
type AirportRepository interface {
	FindAll(ctx context.Context) ([]entity.Airport, error)
	// FindByID returns nil, nil when no airport matches.
	FindByID(ctx context.Context, id uint) (*entity.Airport, error)
	// FindByIDs returns the airports matching ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Airport, error)
	Save(ctx context.Context, airport *entity.Airport) error
	Remove(ctx context.Context, airport *entity.Airport) error
}

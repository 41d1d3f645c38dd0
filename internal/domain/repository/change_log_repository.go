package repository

import (
	"context"

	"airline-service/internal/domain/entity"
)

// ChangeLogRepository defines the interface for the mutation audit trail
type ChangeLogRepository interface {
	Record(ctx context.Context, entry *entity.ChangeLog) error
	FindByEntity(ctx context.Context, kind string, entityID uint, limit int) ([]*entity.ChangeLog, error)
}

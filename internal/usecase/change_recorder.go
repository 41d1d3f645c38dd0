package usecase

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"airline-service/internal/domain/entity"
	"airline-service/internal/domain/repository"
	"airline-service/pkg/logger"
	"airline-service/pkg/utils"
)

const historyLimit = 50

// ChangeRecorder writes the audit trail of successful mutations. A failed
// write is logged and never fails the caller.
type ChangeRecorder struct {
	changeLogRepo repository.ChangeLogRepository
	clock         clock.Clock
	logger        logger.Logger
}

// NewChangeRecorder creates a new change recorder
func NewChangeRecorder(changeLogRepo repository.ChangeLogRepository, clk clock.Clock, logger logger.Logger) *ChangeRecorder {
	return &ChangeRecorder{
		changeLogRepo: changeLogRepo,
		clock:         clk,
		logger:        logger,
	}
}

// Record stores one change log entry
func (c *ChangeRecorder) Record(ctx context.Context, kind string, entityID uint, action string, details map[string]interface{}) {
	entry := &entity.ChangeLog{
		Entity:    kind,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
		CreatedAt: c.clock.Now(),
	}

	if err := c.changeLogRepo.Record(ctx, entry); err != nil {
		c.logger.Error("Failed to record change",
			"entity", kind,
			"entityID", entityID,
			"action", action,
			"error", err)
	}
}

// History returns the latest changes of one airline or airport
func (c *ChangeRecorder) History(ctx context.Context, kind, id string) ([]*entity.ChangeLog, error) {
	switch kind {
	case entity.KindAirline, entity.KindAirport:
	default:
		return nil, errors.NotValidf("entity kind %q", kind)
	}

	entityID, ok := utils.ParseID(id)
	if !ok {
		return nil, errors.NotFoundf("%s with id %q", kind, id)
	}

	entries, err := c.changeLogRepo.FindByEntity(ctx, kind, entityID, historyLimit)
	if err != nil {
		return nil, errors.Annotatef(err, "reading history of %s %d", kind, entityID)
	}
	return entries, nil
}

package usecase

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"airline-service/internal/domain/entity"
	"airline-service/internal/domain/repository"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
	"airline-service/pkg/utils"
)

// AirlineService validates and manipulates airlines
type AirlineService struct {
	airlineRepo repository.AirlineRepository
	changes     *ChangeRecorder
	clock       clock.Clock
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewAirlineService creates a new airline service
func NewAirlineService(
	airlineRepo repository.AirlineRepository,
	changes *ChangeRecorder,
	clk clock.Clock,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *AirlineService {
	return &AirlineService{
		airlineRepo: airlineRepo,
		changes:     changes,
		clock:       clk,
		metrics:     metrics,
		logger:      logger,
	}
}

// FindAll returns every airline with its airports
func (s *AirlineService) FindAll(ctx context.Context) ([]entity.Airline, error) {
	airlines, err := s.airlineRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "listing airlines")
	}
	return airlines, nil
}

// FindOne returns the airline with the given id and its airports. The error
// satisfies errors.NotFound when there is none.
func (s *AirlineService) FindOne(ctx context.Context, id string) (*entity.Airline, error) {
	return findAirline(ctx, s.airlineRepo, id)
}

// Create validates and stores a new airline. Airports are associated
// through AirlineAirportService, not here.
func (s *AirlineService) Create(ctx context.Context, airline entity.Airline) (*entity.Airline, error) {
	if err := validateFoundingDate(airline.FoundingDate, s.clock.Now()); err != nil {
		return nil, err
	}

	airline.ID = 0
	airline.Airports = nil
	if err := s.airlineRepo.Save(ctx, &airline); err != nil {
		return nil, errors.Annotatef(err, "creating airline %q", airline.Name)
	}

	s.logger.Info("Airline created", "airlineID", airline.ID, "name", airline.Name)
	s.metrics.ObserveOperation(entity.KindAirline, entity.ActionCreate)
	s.changes.Record(ctx, entity.KindAirline, airline.ID, entity.ActionCreate, map[string]interface{}{
		"name": airline.Name,
	})
	return &airline, nil
}

// Update merges patch onto the stored airline. The airport set is kept.
func (s *AirlineService) Update(ctx context.Context, id string, patch entity.AirlinePatch) (*entity.Airline, error) {
	airline, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if patch.FoundingDate != nil {
		if err := validateFoundingDate(*patch.FoundingDate, s.clock.Now()); err != nil {
			return nil, err
		}
	}

	airline.Apply(patch)
	if err := s.airlineRepo.Save(ctx, airline); err != nil {
		return nil, errors.Annotatef(err, "updating airline %d", airline.ID)
	}

	s.logger.Info("Airline updated", "airlineID", airline.ID)
	s.metrics.ObserveOperation(entity.KindAirline, entity.ActionUpdate)
	s.changes.Record(ctx, entity.KindAirline, airline.ID, entity.ActionUpdate, nil)
	return airline, nil
}

// Delete removes the airline and its airport associations
func (s *AirlineService) Delete(ctx context.Context, id string) error {
	airline, err := s.FindOne(ctx, id)
	if err != nil {
		return errors.Trace(err)
	}

	if err := s.airlineRepo.Remove(ctx, airline); err != nil {
		return errors.Annotatef(err, "deleting airline %d", airline.ID)
	}

	s.logger.Info("Airline deleted", "airlineID", airline.ID, "name", airline.Name)
	s.metrics.ObserveOperation(entity.KindAirline, entity.ActionDelete)
	s.changes.Record(ctx, entity.KindAirline, airline.ID, entity.ActionDelete, map[string]interface{}{
		"name": airline.Name,
	})
	return nil
}

// findAirline loads an airline with its airports, or fails with NotFound.
func findAirline(ctx context.Context, airlineRepo repository.AirlineRepository, id string) (*entity.Airline, error) {
	airlineID, ok := utils.ParseID(id)
	if !ok {
		return nil, errors.NotFoundf("airline with id %q", id)
	}

	airline, err := airlineRepo.FindByID(ctx, airlineID)
	if err != nil {
		return nil, errors.Annotatef(err, "finding airline %d", airlineID)
	}
	if airline == nil {
		return nil, errors.NotFoundf("airline with id %q", id)
	}
	return airline, nil
}

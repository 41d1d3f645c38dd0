package usecase

import (
	"context"

	"github.com/juju/errors"

	"airline-service/internal/domain/entity"
	"airline-service/internal/domain/repository"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
	"airline-service/pkg/utils"
)

// AirportService validates and manipulates airports
type AirportService struct {
	airportRepo repository.AirportRepository
	changes     *ChangeRecorder
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewAirportService creates a new airport service
func NewAirportService(
	airportRepo repository.AirportRepository,
	changes *ChangeRecorder,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *AirportService {
	return &AirportService{
		airportRepo: airportRepo,
		changes:     changes,
		metrics:     metrics,
		logger:      logger,
	}
}

// FindAll returns every airport
func (s *AirportService) FindAll(ctx context.Context) ([]entity.Airport, error) {
	airports, err := s.airportRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "listing airports")
	}
	return airports, nil
}

// FindOne returns the airport with the given id. The error satisfies
// errors.NotFound when there is none.
func (s *AirportService) FindOne(ctx context.Context, id string) (*entity.Airport, error) {
	airportID, ok := utils.ParseID(id)
	if !ok {
		return nil, errors.NotFoundf("airport with id %q", id)
	}

	airport, err := s.airportRepo.FindByID(ctx, airportID)
	if err != nil {
		return nil, errors.Annotatef(err, "finding airport %d", airportID)
	}
	if airport == nil {
		return nil, errors.NotFoundf("airport with id %q", id)
	}
	return airport, nil
}

// Create validates and stores a new airport
func (s *AirportService) Create(ctx context.Context, airport entity.Airport) (*entity.Airport, error) {
	if err := validateAirportCode(airport.Code); err != nil {
		return nil, err
	}

	airport.ID = 0
	if err := s.airportRepo.Save(ctx, &airport); err != nil {
		return nil, errors.Annotatef(err, "creating airport %q", airport.Code)
	}

	s.logger.Info("Airport created", "airportID", airport.ID, "code", airport.Code)
	s.metrics.ObserveOperation(entity.KindAirport, entity.ActionCreate)
	s.changes.Record(ctx, entity.KindAirport, airport.ID, entity.ActionCreate, map[string]interface{}{
		"code": airport.Code,
	})
	return &airport, nil
}

// Update merges patch onto the stored airport
func (s *AirportService) Update(ctx context.Context, id string, patch entity.AirportPatch) (*entity.Airport, error) {
	airport, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if patch.Code != nil {
		if err := validateAirportCode(*patch.Code); err != nil {
			return nil, err
		}
	}

	airport.Apply(patch)
	if err := s.airportRepo.Save(ctx, airport); err != nil {
		return nil, errors.Annotatef(err, "updating airport %d", airport.ID)
	}

	s.logger.Info("Airport updated", "airportID", airport.ID)
	s.metrics.ObserveOperation(entity.KindAirport, entity.ActionUpdate)
	s.changes.Record(ctx, entity.KindAirport, airport.ID, entity.ActionUpdate, nil)
	return airport, nil
}

// Delete removes the airport and its airline associations
func (s *AirportService) Delete(ctx context.Context, id string) error {
	airport, err := s.FindOne(ctx, id)
	if err != nil {
		return errors.Trace(err)
	}

	if err := s.airportRepo.Remove(ctx, airport); err != nil {
		return errors.Annotatef(err, "deleting airport %d", airport.ID)
	}

	s.logger.Info("Airport deleted", "airportID", airport.ID, "code", airport.Code)
	s.metrics.ObserveOperation(entity.KindAirport, entity.ActionDelete)
	s.changes.Record(ctx, entity.KindAirport, airport.ID, entity.ActionDelete, map[string]interface{}{
		"code": airport.Code,
	})
	return nil
}

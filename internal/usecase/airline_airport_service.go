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

// AirlineAirportService manages the many-to-many relation between airlines
// and airports. Identifiers arrive in their external string form.
type AirlineAirportService struct {
	airlineRepo repository.AirlineRepository
	airportRepo repository.AirportRepository
	changes     *ChangeRecorder
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewAirlineAirportService creates a new association service
func NewAirlineAirportService(
	airlineRepo repository.AirlineRepository,
	airportRepo repository.AirportRepository,
	changes *ChangeRecorder,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *AirlineAirportService {
	return &AirlineAirportService{
		airlineRepo: airlineRepo,
		airportRepo: airportRepo,
		changes:     changes,
		metrics:     metrics,
		logger:      logger,
	}
}

// AddAirportToAirline associates an airport with an airline. Adding an
// airport that is already associated leaves the airline unchanged.
func (s *AirlineAirportService) AddAirportToAirline(ctx context.Context, airlineID, airportID string) (*entity.Airline, error) {
	airline, err := findAirline(ctx, s.airlineRepo, airlineID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	id, ok := utils.ParseID(airportID)
	if !ok {
		return nil, errors.NotFoundf("airport with id %q", airportID)
	}
	airport, err := s.airportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Annotatef(err, "finding airport %d", id)
	}
	if airport == nil {
		return nil, errors.NotFoundf("airport with id %q", airportID)
	}

	if airline.HasAirport(airport.ID) {
		s.logger.Debug("Airport already associated", "airlineID", airline.ID, "airportID", airport.ID)
		return airline, nil
	}

	airline.Airports = append(airline.Airports, *airport)
	if err := s.airlineRepo.Save(ctx, airline); err != nil {
		return nil, errors.Annotatef(err, "adding airport %d to airline %d", airport.ID, airline.ID)
	}

	s.logger.Info("Airport added to airline", "airlineID", airline.ID, "airportID", airport.ID)
	s.metrics.ObserveOperation(entity.KindAirline, entity.ActionAssociate)
	s.changes.Record(ctx, entity.KindAirline, airline.ID, entity.ActionAssociate, map[string]interface{}{
		"airportId": airport.ID,
	})
	return airline, nil
}

// FindAirportsFromAirline returns the airports of an airline
func (s *AirlineAirportService) FindAirportsFromAirline(ctx context.Context, airlineID string) ([]entity.Airport, error) {
	airline, err := findAirline(ctx, s.airlineRepo, airlineID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return airline.Airports, nil
}

// FindAirportFromAirline returns one airport of an airline. The error
// satisfies errors.NotFound when the airline does not exist or the airport
// is not associated with it.
func (s *AirlineAirportService) FindAirportFromAirline(ctx context.Context, airlineID, airportID string) (*entity.Airport, error) {
	airline, err := findAirline(ctx, s.airlineRepo, airlineID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	id, ok := utils.ParseID(airportID)
	if !ok {
		return nil, errors.NotFoundf("airport %q associated with airline %d", airportID, airline.ID)
	}
	airport := airline.FindAirport(id)
	if airport == nil {
		return nil, errors.NotFoundf("airport %d associated with airline %d", id, airline.ID)
	}
	return airport, nil
}

// UpdateAirportsFromAirline replaces the whole airport set of an airline.
// Every id must resolve; otherwise nothing is changed.
func (s *AirlineAirportService) UpdateAirportsFromAirline(ctx context.Context, airlineID string, airportIDs []string) (*entity.Airline, error) {
	airline, err := findAirline(ctx, s.airlineRepo, airlineID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	ids := make([]uint, 0, len(airportIDs))
	seen := make(map[uint]bool, len(airportIDs))
	for _, raw := range airportIDs {
		id, ok := utils.ParseID(raw)
		if !ok {
			return nil, errors.NotFoundf("one or more airports")
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	airports, err := s.airportRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Annotatef(err, "resolving airports for airline %d", airline.ID)
	}
	if len(airports) != len(ids) {
		return nil, errors.NotFoundf("one or more airports")
	}

	airline.Airports = airports
	if err := s.airlineRepo.Save(ctx, airline); err != nil {
		return nil, errors.Annotatef(err, "replacing airports of airline %d", airline.ID)
	}

	s.logger.Info("Airline airports replaced", "airlineID", airline.ID, "count", len(airports))
	s.metrics.ObserveOperation(entity.KindAirline, entity.ActionReplaceAirports)
	s.changes.Record(ctx, entity.KindAirline, airline.ID, entity.ActionReplaceAirports, map[string]interface{}{
		"airportIds": ids,
	})
	return airline, nil
}

// DeleteAirportFromAirline removes an airport from an airline. Removing an
// airport that is not associated is not an error.
func (s *AirlineAirportService) DeleteAirportFromAirline(ctx context.Context, airlineID, airportID string) error {
	airline, err := findAirline(ctx, s.airlineRepo, airlineID)
	if err != nil {
		return errors.Trace(err)
	}

	id, ok := utils.ParseID(airportID)
	if !ok || !airline.RemoveAirport(id) {
		s.logger.Debug("Airport not associated, nothing to remove", "airlineID", airline.ID, "airportID", airportID)
		return nil
	}

	if err := s.airlineRepo.Save(ctx, airline); err != nil {
		return errors.Annotatef(err, "removing airport %d from airline %d", id, airline.ID)
	}

	s.logger.Info("Airport removed from airline", "airlineID", airline.ID, "airportID", id)
	s.metrics.ObserveOperation(entity.KindAirline, entity.ActionDissociate)
	s.changes.Record(ctx, entity.KindAirline, airline.ID, entity.ActionDissociate, map[string]interface{}{
		"airportId": id,
	})
	return nil
}

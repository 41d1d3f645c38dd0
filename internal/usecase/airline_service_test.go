package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-service/internal/domain/entity"
	"airline-service/pkg/logger"
)

func airlineFixtures() []entity.Airline {
	return []entity.Airline{
		{
			ID:           1,
			Name:         "Aerolinea 1",
			FoundingDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Description:  "Descripcion 1",
			WebsiteURL:   "https://aerolinea1.com",
			Airports:     []entity.Airport{airportFixtures()[0]},
		},
		{
			ID:           2,
			Name:         "Aerolinea 2",
			FoundingDate: time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC),
			Description:  "Descripcion 2",
			WebsiteURL:   "https://aerolinea2.com",
		},
	}
}

func newTestAirlineService(repo *fakeAirlineRepo, changes *fakeChangeLogRepo) *AirlineService {
	return NewAirlineService(repo, newTestRecorder(changes), testclock.NewClock(now), nil, logger.NewNopLogger())
}

func TestAirlineService_FindAll(t *testing.T) {
	service := newTestAirlineService(newFakeAirlineRepo(airlineFixtures()...), &fakeChangeLogRepo{})

	airlines, err := service.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, airlines, 2)
	assert.Len(t, airlines[0].Airports, 1, "airports are loaded")
}

func TestAirlineService_FindOne(t *testing.T) {
	service := newTestAirlineService(newFakeAirlineRepo(airlineFixtures()...), &fakeChangeLogRepo{})

	airline, err := service.FindOne(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "Aerolinea 1", airline.Name)
	assert.Equal(t, "ABC", airline.Airports[0].Code)
}

func TestAirlineService_FindOne_NotFound(t *testing.T) {
	service := newTestAirlineService(newFakeAirlineRepo(airlineFixtures()...), &fakeChangeLogRepo{})

	_, err := service.FindOne(context.Background(), "999")

	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestAirlineService_Create_PastDate(t *testing.T) {
	repo := newFakeAirlineRepo()
	changes := &fakeChangeLogRepo{}
	service := newTestAirlineService(repo, changes)

	created, err := service.Create(context.Background(), entity.Airline{
		Name:         "Nueva",
		FoundingDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, []string{"airline.create"}, changes.actions())
}

func TestAirlineService_Create_Now(t *testing.T) {
	service := newTestAirlineService(newFakeAirlineRepo(), &fakeChangeLogRepo{})

	_, err := service.Create(context.Background(), entity.Airline{Name: "Hoy", FoundingDate: now})

	assert.NoError(t, err)
}

func TestAirlineService_Create_FutureDate(t *testing.T) {
	for _, future := range []time.Time{
		now.Add(1000000000 * time.Millisecond),
		now.Add(time.Nanosecond),
		now.AddDate(1, 0, 0),
	} {
		repo := newFakeAirlineRepo()
		service := newTestAirlineService(repo, &fakeChangeLogRepo{})

		_, err := service.Create(context.Background(), entity.Airline{Name: "Futura", FoundingDate: future})

		assert.True(t, errors.Is(err, errors.NotValid), "date %s: %v", future, err)
		assert.Zero(t, repo.saves)
	}
}

func TestAirlineService_Create_DropsAirports(t *testing.T) {
	repo := newFakeAirlineRepo()
	service := newTestAirlineService(repo, &fakeChangeLogRepo{})

	created, err := service.Create(context.Background(), entity.Airline{
		Name:     "Nueva",
		Airports: []entity.Airport{{ID: 9}},
	})

	require.NoError(t, err)
	assert.Empty(t, created.Airports)
}

func TestAirlineService_Update_Success(t *testing.T) {
	repo := newFakeAirlineRepo(airlineFixtures()...)
	changes := &fakeChangeLogRepo{}
	service := newTestAirlineService(repo, changes)

	name := "Aerolinea Actualizada"
	founded := time.Date(1995, 5, 5, 0, 0, 0, 0, time.UTC)
	updated, err := service.Update(context.Background(), "1", entity.AirlinePatch{Name: &name, FoundingDate: &founded})

	require.NoError(t, err)
	assert.Equal(t, "Aerolinea Actualizada", updated.Name)
	assert.Equal(t, founded, updated.FoundingDate)
	assert.Equal(t, "Descripcion 1", updated.Description)
	assert.Len(t, repo.rows[1].Airports, 1, "airport set is kept")
	assert.Equal(t, []string{"airline.update"}, changes.actions())
}

func TestAirlineService_Update_FutureDate(t *testing.T) {
	repo := newFakeAirlineRepo(airlineFixtures()...)
	service := newTestAirlineService(repo, &fakeChangeLogRepo{})

	future := now.Add(24 * time.Hour)
	_, err := service.Update(context.Background(), "1", entity.AirlinePatch{FoundingDate: &future})

	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Zero(t, repo.saves)
}

func TestAirlineService_Update_NotFound(t *testing.T) {
	service := newTestAirlineService(newFakeAirlineRepo(), &fakeChangeLogRepo{})

	name := "x"
	_, err := service.Update(context.Background(), "1", entity.AirlinePatch{Name: &name})

	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestAirlineService_Delete(t *testing.T) {
	repo := newFakeAirlineRepo(airlineFixtures()...)
	changes := &fakeChangeLogRepo{}
	service := newTestAirlineService(repo, changes)

	require.NoError(t, service.Delete(context.Background(), "2"))

	assert.NotContains(t, repo.rows, uint(2))
	assert.Equal(t, []string{"airline.delete"}, changes.actions())

	err := service.Delete(context.Background(), "2")
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.Equal(t, 1, repo.removes)
}

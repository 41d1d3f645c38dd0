package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-service/internal/domain/entity"
)

func TestGormAirportRepository_SaveAndFind(t *testing.T) {
	repo := NewGormAirportRepository(newTestDB(t))
	ctx := context.Background()

	airport := &entity.Airport{Name: "El Dorado", Code: "BOG", Country: "Colombia", City: "Bogota"}
	require.NoError(t, repo.Save(ctx, airport))
	require.NotZero(t, airport.ID)
	assert.False(t, airport.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, airport.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "BOG", found.Code)
	assert.Equal(t, "Bogota", found.City)
}

func TestGormAirportRepository_FindByID_Missing(t *testing.T) {
	repo := NewGormAirportRepository(newTestDB(t))

	found, err := repo.FindByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGormAirportRepository_Save_Updates(t *testing.T) {
	repo := NewGormAirportRepository(newTestDB(t))
	ctx := context.Background()

	airport := &entity.Airport{Name: "El Dorado", Code: "BOG"}
	require.NoError(t, repo.Save(ctx, airport))

	airport.Name = "El Dorado International"
	require.NoError(t, repo.Save(ctx, airport))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "El Dorado International", all[0].Name)
}

func TestGormAirportRepository_FindByIDs(t *testing.T) {
	repo := NewGormAirportRepository(newTestDB(t))
	ctx := context.Background()

	for _, code := range []string{"BOG", "MDE", "CLO"} {
		require.NoError(t, repo.Save(ctx, &entity.Airport{Name: code, Code: code}))
	}

	found, err := repo.FindByIDs(ctx, []uint{1, 3, 99})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "BOG", found[0].Code)
	assert.Equal(t, "CLO", found[1].Code)

	none, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormAirportRepository_Remove_DropsAssociations(t *testing.T) {
	db := newTestDB(t)
	airports := NewGormAirportRepository(db)
	airlines := NewGormAirlineRepository(db)
	ctx := context.Background()

	bog := &entity.Airport{Name: "El Dorado", Code: "BOG"}
	require.NoError(t, airports.Save(ctx, bog))
	airline := &entity.Airline{Name: "Avianca", Airports: []entity.Airport{*bog}}
	require.NoError(t, airlines.Save(ctx, airline))

	require.NoError(t, airports.Remove(ctx, bog))

	found, err := airports.FindByID(ctx, bog.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var links int64
	require.NoError(t, db.Table("airline_airports").Count(&links).Error)
	assert.Zero(t, links)

	reloaded, err := airlines.FindByID(ctx, airline.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Empty(t, reloaded.Airports)
}

package repository

import (
	"context"
	"time"

	"airline-service/internal/domain/entity"
	"airline-service/internal/domain/repository"

	"github.com/juju/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"column:name;not null"`
	Code      string     `gorm:"column:code;type:varchar(3);not null;uniqueIndex"`
	Country   string     `gorm:"column:country"`
	City      string     `gorm:"column:city"`
	Airlines  []Airlines `gorm:"many2many:airline_airports;joinForeignKey:AirportID;joinReferences:AirlineID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

// FindAll returns every airport ordered by id
func (r *GormAirportRepository) FindAll(ctx context.Context) ([]entity.Airport, error) {
	var rows []Airports
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toAirportEntities(rows), nil
}

// FindByID finds an airport by id
func (r *GormAirportRepository) FindByID(ctx context.Context, id uint) (*entity.Airport, error) {
	var row Airports
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	airport := toAirportEntity(row)
	return &airport, nil
}

// FindByIDs finds all airports whose id is in ids (batch operation)
func (r *GormAirportRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Airport, error) {
	if len(ids) == 0 {
		return []entity.Airport{}, nil
	}

	var rows []Airports
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toAirportEntities(rows), nil
}

// Save inserts a new airport or updates an existing one
func (r *GormAirportRepository) Save(ctx context.Context, airport *entity.Airport) error {
	row := fromAirportEntity(*airport)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.AlreadyExistsf("airport with code %q", airport.Code)
		}
		return err
	}

	*airport = toAirportEntity(row)
	return nil
}

// Remove deletes an airport together with its airline associations
func (r *GormAirportRepository) Remove(ctx context.Context, airport *entity.Airport) error {
	row := Airports{ID: airport.ID}
	return r.db.WithContext(ctx).Select("Airlines").Delete(&row).Error
}

// Convert GORM model to domain entity
func toAirportEntity(row Airports) entity.Airport {
	return entity.Airport{
		ID:        row.ID,
		Name:      row.Name,
		Code:      row.Code,
		Country:   row.Country,
		City:      row.City,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toAirportEntities(rows []Airports) []entity.Airport {
	airports := make([]entity.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, toAirportEntity(row))
	}
	return airports
}

func fromAirportEntity(airport entity.Airport) Airports {
	return Airports{
		ID:        airport.ID,
		Name:      airport.Name,
		Code:      airport.Code,
		Country:   airport.Country,
		City:      airport.City,
		CreatedAt: airport.CreatedAt,
		UpdatedAt: airport.UpdatedAt,
	}
}

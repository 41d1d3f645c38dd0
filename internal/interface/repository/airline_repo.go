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

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID           uint       `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	FoundingDate time.Time  `gorm:"column:founding_date"`
	Description  string     `gorm:"column:description"`
	WebsiteURL   string     `gorm:"column:website_url"`
	Airports     []Airports `gorm:"many2many:airline_airports;joinForeignKey:AirlineID;joinReferences:AirportID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "airlines"
}

// FindAll returns every airline with its airports
func (r *GormAirlineRepository) FindAll(ctx context.Context) ([]entity.Airline, error) {
	var rows []Airlines
	err := r.db.WithContext(ctx).
		Preload("Airports", func(db *gorm.DB) *gorm.DB { return db.Order("airports.id") }).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	airlines := make([]entity.Airline, 0, len(rows))
	for _, row := range rows {
		airlines = append(airlines, toAirlineEntity(row))
	}
	return airlines, nil
}

// FindByID finds an airline by id with its airports
func (r *GormAirlineRepository) FindByID(ctx context.Context, id uint) (*entity.Airline, error) {
	var row Airlines
	result := r.db.WithContext(ctx).
		Preload("Airports", func(db *gorm.DB) *gorm.DB { return db.Order("airports.id") }).
		Where("id = ?", id).
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	airline := toAirlineEntity(row)
	return &airline, nil
}

// Save writes the airline row and its airport set in one transaction
func (r *GormAirlineRepository) Save(ctx context.Context, airline *entity.Airline) error {
	row := fromAirlineEntity(*airline)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
			return err
		}

		association := tx.Model(&row).Omit("Airports.*").Association("Airports")
		if len(row.Airports) == 0 {
			return association.Clear()
		}
		return association.Replace(row.Airports)
	})
	if err != nil {
		return err
	}

	*airline = toAirlineEntity(row)
	return nil
}

// Remove deletes an airline together with its airport associations
func (r *GormAirlineRepository) Remove(ctx context.Context, airline *entity.Airline) error {
	row := Airlines{ID: airline.ID}
	return r.db.WithContext(ctx).Select("Airports").Delete(&row).Error
}

// Convert GORM model to domain entity
func toAirlineEntity(row Airlines) entity.Airline {
	return entity.Airline{
		ID:           row.ID,
		Name:         row.Name,
		FoundingDate: row.FoundingDate,
		Description:  row.Description,
		WebsiteURL:   row.WebsiteURL,
		Airports:     toAirportEntities(row.Airports),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func fromAirlineEntity(airline entity.Airline) Airlines {
	airports := make([]Airports, 0, len(airline.Airports))
	for _, airport := range airline.Airports {
		airports = append(airports, fromAirportEntity(airport))
	}

	return Airlines{
		ID:           airline.ID,
		Name:         airline.Name,
		FoundingDate: airline.FoundingDate,
		Description:  airline.Description,
		WebsiteURL:   airline.WebsiteURL,
		Airports:     airports,
		CreatedAt:    airline.CreatedAt,
		UpdatedAt:    airline.UpdatedAt,
	}
}

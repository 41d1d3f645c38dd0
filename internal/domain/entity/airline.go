package entity

import (
	"time"
)

// Airline represents an airline entity
type Airline struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	FoundingDate time.Time `json:"foundingDate"`
	Description  string    `json:"description"`
	WebsiteURL   string    `json:"websiteUrl"`
	Airports     []Airport `json:"airports"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AirlinePatch carries the fields of an airline update. Nil fields are left
// untouched.
type AirlinePatch struct {
	Name         *string
	FoundingDate *time.Time
	Description  *string
	WebsiteURL   *string
}

// Apply copies every field set in p onto the airline.
func (a *Airline) Apply(p AirlinePatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.FoundingDate != nil {
		a.FoundingDate = *p.FoundingDate
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.WebsiteURL != nil {
		a.WebsiteURL = *p.WebsiteURL
	}
}

// HasAirport reports whether an airport with the given id is associated.
func (a *Airline) HasAirport(airportID uint) bool {
	return a.FindAirport(airportID) != nil
}

// FindAirport returns the associated airport with the given id, or nil.
func (a *Airline) FindAirport(airportID uint) *Airport {
	for i := range a.Airports {
		if a.Airports[i].ID == airportID {
			return &a.Airports[i]
		}
	}
	return nil
}

// RemoveAirport drops every association with the given airport id. It
// reports whether anything was removed.
func (a *Airline) RemoveAirport(airportID uint) bool {
	kept := make([]Airport, 0, len(a.Airports))
	for _, airport := range a.Airports {
		if airport.ID != airportID {
			kept = append(kept, airport)
		}
	}
	removed := len(kept) != len(a.Airports)
	a.Airports = kept
	return removed
}

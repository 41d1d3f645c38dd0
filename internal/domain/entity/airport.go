package entity

import (
	"time"
)

// Airport represents a physical airport
type Airport struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AirportPatch carries the fields of an airport update. Nil fields are left
// untouched.
type AirportPatch struct {
	Name    *string
	Code    *string
	Country *string
	City    *string
}

// Apply copies every field set in p onto the airport.
func (a *Airport) Apply(p AirportPatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Code != nil {
		a.Code = *p.Code
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	if p.City != nil {
		a.City = *p.City
	}
}

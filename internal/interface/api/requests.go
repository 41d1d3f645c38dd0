package api

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/juju/errors"

	"airline-service/internal/domain/entity"
	"airline-service/pkg/utils"
)

// AirlineRequest is the body of airline create and update calls. Absent
// fields are left untouched on update.
type AirlineRequest struct {
	Name         *string `json:"name"`
	FoundingDate *string `json:"foundingDate"`
	Description  *string `json:"description"`
	WebsiteURL   *string `json:"websiteUrl"`
}

func (req AirlineRequest) validateCreate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return errors.NewNotValid(err, "airline")
	}
	return nil
}

// Patch converts the request into an airline patch
func (req AirlineRequest) Patch() (entity.AirlinePatch, error) {
	patch := entity.AirlinePatch{
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
	}
	if req.FoundingDate != nil {
		date, err := utils.ParseDate(*req.FoundingDate)
		if err != nil {
			return entity.AirlinePatch{}, errors.Trace(err)
		}
		patch.FoundingDate = &date
	}
	return patch, nil
}

// Airline converts the request into a new airline
func (req AirlineRequest) Airline() (entity.Airline, error) {
	if err := req.validateCreate(); err != nil {
		return entity.Airline{}, err
	}
	patch, err := req.Patch()
	if err != nil {
		return entity.Airline{}, err
	}

	var airline entity.Airline
	airline.Apply(patch)
	return airline, nil
}

// AirportRequest is the body of airport create and update calls
type AirportRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Country *string `json:"country"`
	City    *string `json:"city"`
}

// Patch converts the request into an airport patch
func (req AirportRequest) Patch() entity.AirportPatch {
	return entity.AirportPatch{
		Name:    req.Name,
		Code:    req.Code,
		Country: req.Country,
		City:    req.City,
	}
}

// Airport converts the request into a new airport. The code is checked by
// the service.
func (req AirportRequest) Airport() (entity.Airport, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return entity.Airport{}, errors.NewNotValid(err, "airport")
	}

	var airport entity.Airport
	airport.Apply(req.Patch())
	return airport, nil
}

// AirportRef names an airport by id in a replace request. Both numeric and
// string ids are accepted.
type AirportRef struct {
	ID json.RawMessage `json:"id"`
}

func (ref AirportRef) key() string {
	var s string
	if err := json.Unmarshal(ref.ID, &s); err == nil {
		return s
	}
	return string(ref.ID)
}

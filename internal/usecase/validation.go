package usecase

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/juju/errors"

	"airline-service/pkg/utils"
)

var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// validateAirportCode requires exactly three uppercase ASCII letters.
func validateAirportCode(code string) error {
	err := validation.Validate(code,
		validation.Required.Error("is required"),
		validation.Match(airportCodePattern).Error("must be exactly 3 uppercase letters"),
	)
	if err != nil {
		return errors.NewNotValid(err, fmt.Sprintf("airport code %q", code))
	}
	return nil
}

// validateFoundingDate rejects dates after now. A zero date is accepted.
func validateFoundingDate(date, now time.Time) error {
	err := validation.Validate(date,
		validation.Max(now).Error("must not be in the future"),
	)
	if err != nil {
		return errors.NewNotValid(err, fmt.Sprintf("founding date %s", date.Format(utils.DATE_LAYOUT)))
	}
	return nil
}

package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
)

// ParseID converts an external identifier to a numeric id. ok is false when
// s is not a positive integer.
func ParseID(s string) (id uint, ok bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ParseDate parses a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
// Dates without a time are taken as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DATE_LAYOUT, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(DATETIME_LAYOUT, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NotValidf("date %q", s)
}

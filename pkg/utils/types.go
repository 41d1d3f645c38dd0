package utils

// Date layouts accepted for calendar dates
const (
	DATE_LAYOUT     = "2006-01-02"
	DATETIME_LAYOUT = "2006-01-02T15:04:05Z07:00"
)

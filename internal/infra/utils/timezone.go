package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	_, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return nil
}

// LoadLocationOrUTC resolves the timezone, falling back to UTC when it is unknown.
func LoadLocationOrUTC(timezone string) *time.Location {
	location, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		return time.UTC
	}
	return location
}

// ParseDate accepts either a bare calendar date or a full RFC3339 timestamp.
// Bare dates are placed at midnight in the given location.
func ParseDate(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	if parsed, err := time.ParseInLocation(DateLayout, value, location); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", value, err)
	}
	return parsed.In(location), nil
}

func FormatDate(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(DateLayout)
}

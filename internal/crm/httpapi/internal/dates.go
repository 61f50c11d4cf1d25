package internal

import (
	"time"

	"brokerage-crm/internal/infra/utils"
)

// ParseDay reads a YYYY-MM-DD date or an RFC3339 timestamp in location.
func ParseDay(value string, location *time.Location) (utils.Time, error) {
	parsed, err := utils.ParseDate(value, location)
	if err != nil {
		return utils.Time{}, err
	}
	return utils.Time{Time: parsed}, nil
}

// ParseOptionalDay is ParseDay with the empty string meaning no date.
func ParseOptionalDay(value string, location *time.Location) (*utils.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := ParseDay(value, location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func FormatOptionalDay(value *utils.Time, location *time.Location) string {
	if value == nil || value.IsZero() {
		return ""
	}
	return utils.FormatDate(value.Time, location)
}

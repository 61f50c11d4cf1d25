package usecases

import (
	"time"

	"brokerage-crm/internal/infra/utils"
)

// Clock returns the current time in the configured business timezone.
type Clock func() time.Time

func NewClock(timezone string) Clock {
	location := utils.LoadLocationOrUTC(timezone)
	return func() time.Time {
		return time.Now().In(location)
	}
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

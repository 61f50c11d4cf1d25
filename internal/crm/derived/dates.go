package derived

import (
	"time"

	"brokerage-crm/internal/infra/utils"
)

// clock pins "today" for one evaluation. Every date is truncated to local
// midnight in the location of now before it is compared.
type clock struct {
	loc       *time.Location
	today     time.Time
	yesterday time.Time
	tomorrow  time.Time
}

func newClock(now time.Time) clock {
	loc := now.Location()
	today := startOfDay(now, loc)
	return clock{
		loc:       loc,
		today:     today,
		yesterday: today.AddDate(0, 0, -1),
		tomorrow:  today.AddDate(0, 0, 1),
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (c clock) day(t utils.Time) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	return startOfDay(t.Time, c.loc), true
}

func (c clock) optionalDay(t *utils.Time) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	return c.day(*t)
}

func (c clock) isToday(t utils.Time) bool {
	d, ok := c.day(t)
	return ok && d.Equal(c.today)
}

func (c clock) isYesterday(t utils.Time) bool {
	d, ok := c.day(t)
	return ok && d.Equal(c.yesterday)
}

func (c clock) isAfterToday(t utils.Time) bool {
	d, ok := c.day(t)
	return ok && d.After(c.today)
}

func (c clock) isBeforeToday(t utils.Time) bool {
	d, ok := c.day(t)
	return ok && d.Before(c.today)
}

// notBeforeToday is the "date ≥ today" check of the contract filters.
func (c clock) notBeforeToday(t *utils.Time) bool {
	d, ok := c.optionalDay(t)
	return ok && !d.Before(c.today)
}

// dayPassed reports today ≥ t + 1 day.
func (c clock) dayPassed(t *utils.Time) bool {
	d, ok := c.optionalDay(t)
	return ok && !c.today.Before(d.AddDate(0, 0, 1))
}

// inMonth reports whether t falls in the calendar month offset months away
// from the current one.
func (c clock) inMonth(t *utils.Time, offset int) bool {
	d, ok := c.optionalDay(t)
	if !ok {
		return false
	}
	return monthIndex(d) == monthIndex(c.today)+offset
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

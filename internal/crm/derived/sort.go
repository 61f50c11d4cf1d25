package derived

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

// timeKey is an optional instant; absent keys always sort last.
type timeKey struct {
	at    time.Time
	valid bool
}

func earlier(k timeKey, t time.Time) timeKey {
	if !k.valid || t.Before(k.at) {
		return timeKey{at: t, valid: true}
	}
	return k
}

func later(k timeKey, t time.Time) timeKey {
	if !k.valid || t.After(k.at) {
		return timeKey{at: t, valid: true}
	}
	return k
}

// SortCustomers applies the order attached to filter. Filters without one
// keep the input order.
func SortCustomers(customers []domain.Customer, meetings []domain.Meeting, activities []domain.Activity, filter domain.CustomerFilter, now time.Time) []domain.Customer {
	result := slices.Clone(customers)
	if result == nil {
		result = []domain.Customer{}
	}

	key, descending, ok := customerSortKey(filter, newRelated(meetings, activities), newClock(now))
	if !ok {
		return result
	}

	keys := make(map[domain.ID]timeKey, len(result))
	for _, customer := range result {
		keys[customer.ID] = key(customer.ID)
	}

	slices.SortStableFunc(result, func(a, b domain.Customer) int {
		return compareTimeKeys(keys[a.ID], keys[b.ID], descending)
	})
	return result
}

func customerSortKey(filter domain.CustomerFilter, r related, c clock) (func(domain.ID) timeKey, bool, bool) {
	switch filter {
	case domain.CustomerFilterTodayMeeting:
		return func(id domain.ID) timeKey {
			var k timeKey
			for _, m := range r.meetings[id] {
				if c.isToday(m.Date) {
					k = earlier(k, m.Date.Time)
				}
			}
			return k
		}, false, true
	case domain.CustomerFilterMeetingScheduled:
		return func(id domain.ID) timeKey {
			var k timeKey
			for _, m := range r.meetings[id] {
				if c.isAfterToday(m.Date) {
					k = earlier(k, m.Date.Time)
				}
			}
			return k
		}, false, true
	case domain.CustomerFilterTodayContact, domain.CustomerFilterYesterdayContact:
		matches := c.isToday
		if filter == domain.CustomerFilterYesterdayContact {
			matches = c.isYesterday
		}
		return func(id domain.ID) timeKey {
			var k timeKey
			for _, a := range r.activities[id] {
				if matches(a.Date) {
					k = later(k, a.Date.Time)
				}
			}
			return k
		}, true, true
	case domain.CustomerFilterToContact:
		return func(id domain.ID) timeKey {
			var k timeKey
			for _, a := range r.activities[id] {
				if !a.Date.IsZero() {
					k = later(k, a.Date.Time)
				}
			}
			return k
		}, false, true
	}
	return nil, false, false
}

func compareTimeKeys(a, b timeKey, descending bool) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return 1
	case !b.valid:
		return -1
	}
	result := a.at.Compare(b.at)
	if descending {
		return -result
	}
	return result
}

// FieldFunc reads the value of a column from a record. The boolean is
// false when the record has no such column.
type FieldFunc[T any] func(item T, key string) (any, bool)

// SortBy orders items by the column named in state. Missing values sort
// after defined ones in both directions and equal values keep their input
// order. types declares column types where a schema exists.
func SortBy[T any](items []T, state domain.SortState, types map[string]domain.ColumnType, field FieldFunc[T]) []T {
	result := slices.Clone(items)
	if result == nil {
		result = []T{}
	}
	if state.IsZero() {
		return result
	}

	kind := columnKindOf(state.Key, types)
	keys := make([]sortValue, len(result))
	for i, item := range result {
		v, ok := field(item, state.Key)
		if !ok {
			continue
		}
		keys[i] = newSortValue(v, kind)
	}

	order := make([]int, len(result))
	for i := range order {
		order[i] = i
	}
	descending := state.Direction == domain.SortDescending
	slices.SortStableFunc(order, func(a, b int) int {
		return compareSortValues(keys[a], keys[b], descending)
	})

	sorted := make([]T, len(result))
	for i, idx := range order {
		sorted[i] = result[idx]
	}
	return sorted
}

type columnKind int

const (
	columnText columnKind = iota
	columnNumber
	columnDate
)

// columnKindOf uses the declared type when there is one and falls back to
// the naming convention for dates.
func columnKindOf(key string, types map[string]domain.ColumnType) columnKind {
	switch types[key] {
	case domain.ColumnTypeDate:
		return columnDate
	case domain.ColumnTypeNumber:
		return columnNumber
	}
	if IsDateKey(key) {
		return columnDate
	}
	return columnText
}

// IsDateKey reports whether a column name marks a date by convention.
func IsDateKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "date") ||
		strings.HasSuffix(key, "At") ||
		strings.HasSuffix(key, "_at")
}

type valueKind int

const (
	valueMissing valueKind = iota
	valueNumber
	valueTime
	valueText
)

type sortValue struct {
	kind   valueKind
	number float64
	at     time.Time
	text   string
}

func newSortValue(v any, kind columnKind) sortValue {
	if v == nil {
		return sortValue{}
	}

	switch kind {
	case columnDate:
		if t, ok := toTime(v); ok {
			return sortValue{kind: valueTime, at: t}
		}
		return sortValue{}
	case columnNumber:
		if n, ok := toNumber(v, true); ok {
			return sortValue{kind: valueNumber, number: n}
		}
		if domain.IsBlank(v) {
			return sortValue{}
		}
	default:
		if n, ok := toNumber(v, false); ok {
			return sortValue{kind: valueNumber, number: n}
		}
	}

	return sortValue{kind: valueText, text: strings.ToLower(toText(v))}
}

func compareSortValues(a, b sortValue, descending bool) int {
	switch {
	case a.kind == valueMissing && b.kind == valueMissing:
		return 0
	case a.kind == valueMissing:
		return 1
	case b.kind == valueMissing:
		return -1
	}

	var result int
	switch {
	case a.kind != b.kind:
		result = cmp.Compare(a.kind, b.kind)
	case a.kind == valueNumber:
		result = cmp.Compare(a.number, b.number)
	case a.kind == valueTime:
		result = a.at.Compare(b.at)
	default:
		result = strings.Compare(a.text, b.text)
	}

	if descending {
		return -result
	}
	return result
}

func toNumber(v any, parseText bool) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		if !parseText {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		return f, err == nil
	}
	return 0, false
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case utils.Time:
		return t.Time, !t.IsZero()
	case *utils.Time:
		if t == nil {
			return time.Time{}, false
		}
		return t.Time, !t.IsZero()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		parsed, err := utils.ParseDate(s, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

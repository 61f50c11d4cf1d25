package domain

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAscending || d == SortDescending
}

// SortState is the active column sort of a table view. The zero value
// means no column sort.
type SortState struct {
	Key       string        `json:"key" msgpack:"key"`
	Direction SortDirection `json:"direction" msgpack:"direction"`
}

func (s SortState) IsZero() bool {
	return s.Key == ""
}

// Toggle selects key. Picking the active key flips the direction, any
// other key starts descending.
func (s SortState) Toggle(key string) SortState {
	if key == "" {
		return SortState{}
	}
	if s.Key != key {
		return SortState{Key: key, Direction: SortDescending}
	}
	if s.Direction == SortDescending {
		return SortState{Key: key, Direction: SortAscending}
	}
	return SortState{Key: key, Direction: SortDescending}
}

package domain

import (
	"fmt"
	"strings"
)

type ViewMode string

const (
	ViewModeList          ViewMode = "list"
	ViewModeCreate        ViewMode = "create"
	ViewModeEdit          ViewMode = "edit"
	ViewModeDetail        ViewMode = "detail"
	ViewModeConfirmDelete ViewMode = "confirmDelete"
)

func (m ViewMode) Valid() bool {
	switch m {
	case ViewModeList, ViewModeCreate, ViewModeEdit, ViewModeDetail, ViewModeConfirmDelete:
		return true
	}
	return false
}

// needsSelection reports whether the mode acts on a selected record.
func (m ViewMode) needsSelection() bool {
	return m == ViewModeEdit || m == ViewModeDetail || m == ViewModeConfirmDelete
}

type EntityKind string

const (
	EntityCustomer EntityKind = "customer"
	EntityMeeting  EntityKind = "meeting"
	EntityActivity EntityKind = "activity"
	EntityContract EntityKind = "contract"
	EntityBuilding EntityKind = "building"
	EntityTable    EntityKind = "table"
	EntityRow      EntityKind = "row"
)

func (k EntityKind) Valid() bool {
	switch k {
	case EntityCustomer, EntityMeeting, EntityActivity, EntityContract, EntityBuilding, EntityTable, EntityRow:
		return true
	}
	return false
}

// FilterAll is the pass-through filter shared by every view.
const FilterAll = "전체"

const (
	ViewCustomers = "customers"
	ViewContracts = "contracts"
)

// TableView names the row view of a dynamic table.
func TableView(tableID ID) string {
	return "tables/" + tableID.String()
}

// TableIDFromView is the inverse of TableView.
func TableIDFromView(view string) (ID, bool) {
	id, ok := strings.CutPrefix(view, "tables/")
	if !ok || id == "" {
		return "", false
	}
	return ID(id), true
}

type ViewSettings struct {
	Filter   string    `json:"filter" msgpack:"filter"`
	Progress string    `json:"progress,omitempty" msgpack:"progress,omitempty"`
	Sort     SortState `json:"sort" msgpack:"sort"`
}

// ViewState is the interaction state of one client session: one mode,
// one selected record per entity kind and the filter and sort of each view.
// It is not safe for concurrent use.
type ViewState struct {
	Mode      ViewMode                `json:"mode" msgpack:"mode"`
	ModeKind  EntityKind              `json:"mode_kind,omitempty" msgpack:"mode_kind,omitempty"`
	Selection map[EntityKind]ID       `json:"selection" msgpack:"selection"`
	Views     map[string]ViewSettings `json:"views" msgpack:"views"`
}

func NewViewState() *ViewState {
	return &ViewState{
		Mode:      ViewModeList,
		Selection: map[EntityKind]ID{},
		Views:     map[string]ViewSettings{},
	}
}

func (s *ViewState) View(view string) ViewSettings {
	settings, ok := s.Views[view]
	if !ok || settings.Filter == "" {
		settings.Filter = FilterAll
	}
	return settings
}

// SelectFilter activates filter on view. The progress refinement only
// survives together with the filter it was chosen for.
func (s *ViewState) SelectFilter(view, filter, progress string) ViewSettings {
	settings := s.View(view)
	if filter == "" {
		filter = FilterAll
	}
	settings.Filter = filter
	settings.Progress = progress
	s.Views[view] = settings
	return settings
}

func (s *ViewState) ToggleSort(view, key string) SortState {
	settings := s.View(view)
	settings.Sort = settings.Sort.Toggle(key)
	s.Views[view] = settings
	return settings.Sort
}

// Select records id as the selection for kind. An empty id clears it.
func (s *ViewState) Select(kind EntityKind, id ID) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownEntityKind, kind)
	}
	if id == "" {
		delete(s.Selection, kind)
		return nil
	}
	s.Selection[kind] = id
	return nil
}

func (s *ViewState) Selected(kind EntityKind) (ID, bool) {
	id, ok := s.Selection[kind]
	return id, ok
}

// SetMode switches the session mode. Modes that act on a record require a
// selection for kind; returning to list keeps the selections.
func (s *ViewState) SetMode(mode ViewMode, kind EntityKind) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownViewMode, mode)
	}
	if mode == ViewModeList {
		s.Mode = mode
		s.ModeKind = ""
		return nil
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownEntityKind, kind)
	}
	if mode.needsSelection() {
		if _, ok := s.Selection[kind]; !ok {
			return fmt.Errorf("%w: %s mode needs a selected %s", ErrSelectionRequired, mode, kind)
		}
	}
	s.Mode = mode
	s.ModeKind = kind
	return nil
}

package internal

import "brokerage-crm/internal/crm/domain"

const (
	CommandWatch        = "watch"
	CommandSelectFilter = "select_filter"
	CommandToggleSort   = "toggle_sort"
	CommandSelect       = "select"
	CommandSetMode      = "set_mode"
)

const (
	FrameState = "state"
	FrameView  = "view"
	FrameError = "error"
)

// ViewCommand is a client message on the view stream.
type ViewCommand struct {
	Type     string `json:"type" msgpack:"type"`
	View     string `json:"view,omitempty" msgpack:"view,omitempty"`
	Filter   string `json:"filter,omitempty" msgpack:"filter,omitempty"`
	Progress string `json:"progress,omitempty" msgpack:"progress,omitempty"`
	Key      string `json:"key,omitempty" msgpack:"key,omitempty"`
	Kind     string `json:"kind,omitempty" msgpack:"kind,omitempty"`
	ID       string `json:"id,omitempty" msgpack:"id,omitempty"`
	Mode     string `json:"mode,omitempty" msgpack:"mode,omitempty"`
}

// ViewFrame is a server message on the view stream.
type ViewFrame struct {
	Type     string               `json:"type" msgpack:"type"`
	View     string               `json:"view,omitempty" msgpack:"view,omitempty"`
	Settings *domain.ViewSettings `json:"settings,omitempty" msgpack:"settings,omitempty"`
	State    *domain.ViewState    `json:"state,omitempty" msgpack:"state,omitempty"`
	Records  any                  `json:"records" msgpack:"records"`
	Error    string               `json:"error,omitempty" msgpack:"error,omitempty"`
}

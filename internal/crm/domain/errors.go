package domain

import "errors"

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrContractNotFound     = errors.New("contract not found")
	ErrBuildingNotFound     = errors.New("building not found")
	ErrTableNotFound        = errors.New("dynamic table not found")
	ErrRowNotFound          = errors.New("dynamic table row not found")
	ErrNameRequired         = errors.New("name is required")
	ErrCustomerIDRequired   = errors.New("customer id is required")
	ErrDateRequired         = errors.New("date is required")
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrUnknownColumn        = errors.New("unknown column")
	ErrInvalidColumn        = errors.New("invalid column definition")
	ErrDuplicateColumn      = errors.New("duplicate column name")
	ErrInvalidFieldValue    = errors.New("invalid field value")
	ErrUnknownViewMode      = errors.New("unknown view mode")
	ErrUnknownEntityKind    = errors.New("unknown entity kind")
	ErrSelectionRequired    = errors.New("selection required")
	ErrUnknownCollection    = errors.New("unknown collection")
)

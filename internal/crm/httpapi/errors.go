package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"brokerage-crm/internal/crm/domain"
)

var notFoundErrors = []error{
	domain.ErrCustomerNotFound,
	domain.ErrMeetingNotFound,
	domain.ErrActivityNotFound,
	domain.ErrContractNotFound,
	domain.ErrBuildingNotFound,
	domain.ErrTableNotFound,
	domain.ErrRowNotFound,
}

var invalidInputErrors = []error{
	domain.ErrNameRequired,
	domain.ErrCustomerIDRequired,
	domain.ErrDateRequired,
	domain.ErrRequiredFieldMissing,
	domain.ErrUnknownColumn,
	domain.ErrInvalidColumn,
	domain.ErrDuplicateColumn,
	domain.ErrInvalidFieldValue,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// replyServiceError answers 404 and 400 with the error text and anything
// else with a logged 500 carrying failMessage.
func replyServiceError(w http.ResponseWriter, err error, action, failMessage string) {
	switch {
	case isAny(err, notFoundErrors):
		http.Error(w, err.Error(), http.StatusNotFound)
	case isAny(err, invalidInputErrors):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error(action, slog.String("error", err.Error()))
		http.Error(w, failMessage, http.StatusInternalServerError)
	}
}

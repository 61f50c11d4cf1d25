package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	errResponse := &ErrorResponse{
		Message: errMsg,
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errResponse)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

type PaginationParams struct {
	Page  int
	Limit int
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: _defaultPage, Limit: _defaultLimit}
}

// Offset is the index of the first item of the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ExtractPaginationParams reads page and limit from the query string, falling
// back to the defaults for missing or out of range values.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()
	query := r.URL.Query()

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 && limit <= _maxLimit {
		params.Limit = limit
	}

	return params
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Data       any            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	ReplyJSONResponse(w, statusCode, PaginatedResponse{
		Data: data,
		Pagination: PaginationMeta{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// Paginate returns the page of items selected by params.
func Paginate[T any](items []T, params PaginationParams) []T {
	offset := params.Offset()
	if offset >= len(items) {
		return []T{}
	}

	end := min(offset+params.Limit, len(items))
	return items[offset:end]
}

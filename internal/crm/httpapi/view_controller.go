package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/httpserver"
)

const (
	customerViewErrMessage = "failed to compute customer view"
	contractViewErrMessage = "failed to compute contract view"
	rowViewErrMessage      = "failed to compute row view"
	reconcileErrMessage    = "failed to reconcile statuses"
)

func NewViewController(
	views usecases.ViewService,
	reconciler usecases.ReconciliationService,
	location *time.Location,
) *ViewController {
	return &ViewController{
		views:      views,
		reconciler: reconciler,
		location:   location,
	}
}

var _ httpserver.Controller = (*ViewController)(nil)

type ViewController struct {
	views      usecases.ViewService
	reconciler usecases.ReconciliationService
	location   *time.Location
}

func (c *ViewController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/views/customers", c.customerView())
	router.Handle("GET /v1/views/contracts", c.contractView())
	router.Handle("GET /v1/views/tables/{id}/rows", c.rowView())
	router.Handle("POST /v1/reconciliations", c.reconcile())
}

func (c *ViewController) customerView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sort, err := sortFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		customers, err := c.views.Customers(r.Context(), usecases.CustomerViewQuery{
			Filter:   domain.CustomerFilter(filterFromQuery(r)),
			Progress: httpserver.GetQueryParam(r, "progress"),
			Sort:     sort,
		})
		if err != nil {
			replyServiceError(w, err, "computing customer view", customerViewErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		page := httpserver.Paginate(internal.ToCustomerResponses(customers), params)
		httpserver.ReplyWithPaginatedData(w, http.StatusOK, page, len(customers), params)
	}
}

func (c *ViewController) contractView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sort, err := sortFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		contracts, err := c.views.Contracts(r.Context(), usecases.ContractViewQuery{
			Filter: domain.ContractFilter(filterFromQuery(r)),
			Sort:   sort,
		})
		if err != nil {
			replyServiceError(w, err, "computing contract view", contractViewErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		page := httpserver.Paginate(internal.ToContractResponses(contracts, c.location), params)
		httpserver.ReplyWithPaginatedData(w, http.StatusOK, page, len(contracts), params)
	}
}

func (c *ViewController) rowView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sort, err := sortFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rows, err := c.views.Rows(r.Context(), usecases.RowViewQuery{
			TableID: domain.ID(r.PathValue("id")),
			Filter:  domain.RowFilter(filterFromQuery(r)),
			Sort:    sort,
		})
		if err != nil {
			replyServiceError(w, err, "computing row view", rowViewErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRowResponses(rows))
	}
}

func (c *ViewController) reconcile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updates, err := c.reconciler.Reconcile(r.Context())
		if err != nil {
			replyServiceError(w, err, "reconciling statuses", reconcileErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, updates)
	}
}

func filterFromQuery(r *http.Request) string {
	filter := httpserver.GetQueryParam(r, "filter")
	if filter == "" {
		return domain.FilterAll
	}
	return filter
}

func sortFromQuery(r *http.Request) (domain.SortState, error) {
	key := httpserver.GetQueryParam(r, "sort")
	if key == "" {
		return domain.SortState{}, nil
	}

	direction := domain.SortDirection(httpserver.GetQueryParam(r, "dir"))
	if direction == "" {
		direction = domain.SortDescending
	}
	if !direction.Valid() {
		return domain.SortState{}, fmt.Errorf("invalid sort direction %q", direction)
	}

	return domain.SortState{Key: key, Direction: direction}, nil
}

package httpapi

import (
	"log/slog"
	"net/http"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/httpserver"
)

const (
	createCustomerErrMessage = "failed to create customer"
	getCustomerErrMessage    = "failed to get customer"
	listCustomersErrMessage  = "failed to list customers"
	updateCustomerErrMessage = "failed to update customer"
	deleteCustomerErrMessage = "failed to delete customer"
)

func NewCustomerController(service usecases.CustomerService) *CustomerController {
	return &CustomerController{
		service: service,
	}
}

var _ httpserver.Controller = (*CustomerController)(nil)

type CustomerController struct {
	service usecases.CustomerService
}

func (c *CustomerController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/customers", c.listCustomers())
	router.Handle("POST /v1/customers", c.createCustomer())
	router.Handle("GET /v1/customers/{id}", c.getCustomer())
	router.Handle("PUT /v1/customers/{id}", c.updateCustomer())
	router.Handle("DELETE /v1/customers/{id}", c.deleteCustomer())
}

func (c *CustomerController) listCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := c.service.All(r.Context())
		if err != nil {
			replyServiceError(w, err, "listing customers", listCustomersErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		page := httpserver.Paginate(internal.ToCustomerResponses(customers), params)
		httpserver.ReplyWithPaginatedData(w, http.StatusOK, page, len(customers), params)
	}
}

func (c *CustomerController) createCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CustomerRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create customer request", slog.String("error", err.Error()))
			http.Error(w, createCustomerErrMessage, http.StatusBadRequest)
			return
		}

		customer, err := domain.NewCustomerBuilder().
			WithName(body.Name).
			WithPhone(body.Phone).
			WithStatus(domain.CustomerStatus(body.Status)).
			WithProgress(body.Progress).
			WithFavorite(body.IsFavorite).
			WithSource(body.Source).
			WithPreferredArea(body.PreferredArea).
			WithBudget(body.Budget).
			WithMemo(body.Memo).
			Build()
		if err != nil {
			replyServiceError(w, err, "building customer", createCustomerErrMessage)
			return
		}

		if err := c.service.Create(r.Context(), customer); err != nil {
			replyServiceError(w, err, "creating customer", createCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCustomerResponse(customer))
	}
}

func (c *CustomerController) getCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := c.service.Get(r.Context(), domain.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, "getting customer", getCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomerResponse(customer))
	}
}

func (c *CustomerController) updateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CustomerRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update customer request", slog.String("error", err.Error()))
			http.Error(w, updateCustomerErrMessage, http.StatusBadRequest)
			return
		}

		customer, err := c.service.Update(r.Context(), body.ToDomain(domain.ID(r.PathValue("id"))))
		if err != nil {
			replyServiceError(w, err, "updating customer", updateCustomerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomerResponse(customer))
	}
}

func (c *CustomerController) deleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, "deleting customer", deleteCustomerErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

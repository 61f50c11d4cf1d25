package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/httpserver"
	"brokerage-crm/internal/infra/utils"
)

const (
	createContractErrMessage = "failed to create contract"
	getContractErrMessage    = "failed to get contract"
	listContractsErrMessage  = "failed to list contracts"
	updateContractErrMessage = "failed to update contract"
	deleteContractErrMessage = "failed to delete contract"
)

func NewContractController(service usecases.ContractService, location *time.Location) *ContractController {
	return &ContractController{
		service:  service,
		location: location,
	}
}

var _ httpserver.Controller = (*ContractController)(nil)

type ContractController struct {
	service  usecases.ContractService
	location *time.Location
}

func (c *ContractController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/contracts", c.listContracts())
	router.Handle("POST /v1/contracts", c.createContract())
	router.Handle("GET /v1/contracts/{id}", c.getContract())
	router.Handle("PUT /v1/contracts/{id}", c.updateContract())
	router.Handle("DELETE /v1/contracts/{id}", c.deleteContract())
}

func (c *ContractController) listContracts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contracts, err := c.service.All(r.Context())
		if err != nil {
			replyServiceError(w, err, "listing contracts", listContractsErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		page := httpserver.Paginate(internal.ToContractResponses(contracts, c.location), params)
		httpserver.ReplyWithPaginatedData(w, http.StatusOK, page, len(contracts), params)
	}
}

func (c *ContractController) createContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ContractRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create contract request", slog.String("error", err.Error()))
			http.Error(w, createContractErrMessage, http.StatusBadRequest)
			return
		}

		values, err := body.ToDomain("", c.location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		contract, err := domain.NewContractBuilder().
			WithBuildingName(values.BuildingName).
			WithRoomNumber(values.RoomNumber).
			WithLandlord(values.LandlordName, values.LandlordPhone).
			WithTenant(values.TenantName, values.TenantPhone).
			WithContractDate(timeOf(values.ContractDate)).
			WithBalanceDate(timeOf(values.BalanceDate)).
			WithExpiryDate(timeOf(values.ExpiryDate)).
			WithRemainderPaymentDate(timeOf(values.RemainderPaymentDate)).
			WithProgressStatus(values.ProgressStatus).
			WithBrokerageFee(values.BrokerageFee, values.FeeStatus).
			WithMemo(values.Memo).
			Build()
		if err != nil {
			replyServiceError(w, err, "building contract", createContractErrMessage)
			return
		}

		if err := c.service.Create(r.Context(), contract); err != nil {
			replyServiceError(w, err, "creating contract", createContractErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToContractResponse(contract, c.location))
	}
}

func (c *ContractController) getContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contract, err := c.service.Get(r.Context(), domain.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, "getting contract", getContractErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContractResponse(contract, c.location))
	}
}

func (c *ContractController) updateContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ContractRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update contract request", slog.String("error", err.Error()))
			http.Error(w, updateContractErrMessage, http.StatusBadRequest)
			return
		}

		update, err := body.ToDomain(domain.ID(r.PathValue("id")), c.location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		contract, err := c.service.Update(r.Context(), update)
		if err != nil {
			replyServiceError(w, err, "updating contract", updateContractErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContractResponse(contract, c.location))
	}
}

func (c *ContractController) deleteContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, "deleting contract", deleteContractErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func timeOf(value *utils.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return value.Time
}

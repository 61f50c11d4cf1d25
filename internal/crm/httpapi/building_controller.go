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
	createBuildingErrMessage = "failed to create building"
	listBuildingsErrMessage  = "failed to list buildings"
	updateBuildingErrMessage = "failed to update building"
	deleteBuildingErrMessage = "failed to delete building"
)

func NewBuildingController(service usecases.BuildingService) *BuildingController {
	return &BuildingController{
		service: service,
	}
}

var _ httpserver.Controller = (*BuildingController)(nil)

type BuildingController struct {
	service usecases.BuildingService
}

func (c *BuildingController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/buildings", c.listBuildings())
	router.Handle("POST /v1/buildings", c.createBuilding())
	router.Handle("PUT /v1/buildings/{id}", c.updateBuilding())
	router.Handle("DELETE /v1/buildings/{id}", c.deleteBuilding())
}

func (c *BuildingController) listBuildings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buildings, err := c.service.All(r.Context())
		if err != nil {
			replyServiceError(w, err, "listing buildings", listBuildingsErrMessage)
			return
		}

		responses := make([]internal.BuildingResponse, len(buildings))
		for i, building := range buildings {
			responses[i] = internal.ToBuildingResponse(building)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *BuildingController) createBuilding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.BuildingRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create building request", slog.String("error", err.Error()))
			http.Error(w, createBuildingErrMessage, http.StatusBadRequest)
			return
		}

		building, err := domain.NewBuildingBuilder().
			WithName(body.Name).
			WithAddress(body.Address).
			WithFloors(body.Floors).
			WithMemo(body.Memo).
			Build()
		if err != nil {
			replyServiceError(w, err, "building building", createBuildingErrMessage)
			return
		}

		if err := c.service.Create(r.Context(), building); err != nil {
			replyServiceError(w, err, "creating building", createBuildingErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToBuildingResponse(building))
	}
}

func (c *BuildingController) updateBuilding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.BuildingRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update building request", slog.String("error", err.Error()))
			http.Error(w, updateBuildingErrMessage, http.StatusBadRequest)
			return
		}

		building, err := c.service.Update(r.Context(), domain.Building{
			ID:      domain.ID(r.PathValue("id")),
			Name:    body.Name,
			Address: body.Address,
			Floors:  body.Floors,
			Memo:    body.Memo,
		})
		if err != nil {
			replyServiceError(w, err, "updating building", updateBuildingErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToBuildingResponse(building))
	}
}

func (c *BuildingController) deleteBuilding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, "deleting building", deleteBuildingErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

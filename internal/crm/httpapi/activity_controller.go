package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/httpserver"
)

const (
	createActivityErrMessage = "failed to create activity"
	listActivitiesErrMessage = "failed to list activities"
	updateActivityErrMessage = "failed to update activity"
	deleteActivityErrMessage = "failed to delete activity"
	addFollowUpErrMessage    = "failed to add follow-up"
)

func NewActivityController(service usecases.ActivityService, location *time.Location) *ActivityController {
	return &ActivityController{
		service:  service,
		location: location,
	}
}

var _ httpserver.Controller = (*ActivityController)(nil)

type ActivityController struct {
	service  usecases.ActivityService
	location *time.Location
}

func (c *ActivityController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/activities", c.listActivities())
	router.Handle("POST /v1/activities", c.createActivity())
	router.Handle("PUT /v1/activities/{id}", c.updateActivity())
	router.Handle("DELETE /v1/activities/{id}", c.deleteActivity())
	router.Handle("POST /v1/activities/{id}/follow-ups", c.addFollowUp())
}

func (c *ActivityController) listActivities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := domain.ID(httpserver.GetQueryParam(r, "customer_id"))

		activities, err := c.service.FindAll(r.Context(), customerID)
		if err != nil {
			replyServiceError(w, err, "listing activities", listActivitiesErrMessage)
			return
		}

		responses := make([]internal.ActivityResponse, len(activities))
		for i, activity := range activities {
			responses[i] = internal.ToActivityResponse(activity)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *ActivityController) createActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ActivityRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create activity request", slog.String("error", err.Error()))
			http.Error(w, createActivityErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewActivityBuilder().
			WithCustomerID(domain.ID(body.CustomerID)).
			WithContent(body.Content)
		if body.Type != "" {
			builder = builder.WithType(domain.ActivityType(body.Type))
		}
		if body.Date != "" {
			date, err := internal.ParseDay(body.Date, c.location)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			builder = builder.WithDate(date.Time)
		}

		activity, err := builder.Build()
		if err != nil {
			replyServiceError(w, err, "building activity", createActivityErrMessage)
			return
		}

		if err := c.service.Create(r.Context(), activity); err != nil {
			replyServiceError(w, err, "creating activity", createActivityErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToActivityResponse(activity))
	}
}

func (c *ActivityController) updateActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ActivityRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update activity request", slog.String("error", err.Error()))
			http.Error(w, updateActivityErrMessage, http.StatusBadRequest)
			return
		}

		update, err := body.ToDomain(domain.ID(r.PathValue("id")), c.location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		activity, err := c.service.Update(r.Context(), update)
		if err != nil {
			replyServiceError(w, err, "updating activity", updateActivityErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToActivityResponse(activity))
	}
}

func (c *ActivityController) addFollowUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FollowUpRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding follow-up request", slog.String("error", err.Error()))
			http.Error(w, addFollowUpErrMessage, http.StatusBadRequest)
			return
		}

		followUp, err := body.ToDomain(c.location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		activity, err := c.service.AddFollowUp(r.Context(), domain.ID(r.PathValue("id")), followUp)
		if err != nil {
			replyServiceError(w, err, "adding follow-up", addFollowUpErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToActivityResponse(activity))
	}
}

func (c *ActivityController) deleteActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, "deleting activity", deleteActivityErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

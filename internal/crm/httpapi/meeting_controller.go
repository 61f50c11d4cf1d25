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
	createMeetingErrMessage = "failed to create meeting"
	listMeetingsErrMessage  = "failed to list meetings"
	updateMeetingErrMessage = "failed to update meeting"
	deleteMeetingErrMessage = "failed to delete meeting"
)

func NewMeetingController(service usecases.MeetingService, location *time.Location) *MeetingController {
	return &MeetingController{
		service:  service,
		location: location,
	}
}

var _ httpserver.Controller = (*MeetingController)(nil)

type MeetingController struct {
	service  usecases.MeetingService
	location *time.Location
}

func (c *MeetingController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/meetings", c.listMeetings())
	router.Handle("POST /v1/meetings", c.createMeeting())
	router.Handle("PUT /v1/meetings/{id}", c.updateMeeting())
	router.Handle("DELETE /v1/meetings/{id}", c.deleteMeeting())
}

func (c *MeetingController) listMeetings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := domain.ID(httpserver.GetQueryParam(r, "customer_id"))

		meetings, err := c.service.FindAll(r.Context(), customerID)
		if err != nil {
			replyServiceError(w, err, "listing meetings", listMeetingsErrMessage)
			return
		}

		responses := make([]internal.MeetingResponse, len(meetings))
		for i, meeting := range meetings {
			responses[i] = internal.ToMeetingResponse(meeting)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *MeetingController) createMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.MeetingRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create meeting request", slog.String("error", err.Error()))
			http.Error(w, createMeetingErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewMeetingBuilder().
			WithCustomerID(domain.ID(body.CustomerID)).
			WithPlace(body.Place).
			WithMemo(body.Memo)
		if body.Date != "" {
			date, err := internal.ParseDay(body.Date, c.location)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			builder = builder.WithDate(date.Time)
		}

		meeting, err := builder.Build()
		if err != nil {
			replyServiceError(w, err, "building meeting", createMeetingErrMessage)
			return
		}

		if err := c.service.Create(r.Context(), meeting); err != nil {
			replyServiceError(w, err, "creating meeting", createMeetingErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToMeetingResponse(meeting))
	}
}

func (c *MeetingController) updateMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.MeetingRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update meeting request", slog.String("error", err.Error()))
			http.Error(w, updateMeetingErrMessage, http.StatusBadRequest)
			return
		}

		update, err := body.ToDomain(domain.ID(r.PathValue("id")), c.location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		meeting, err := c.service.Update(r.Context(), update)
		if err != nil {
			replyServiceError(w, err, "updating meeting", updateMeetingErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToMeetingResponse(meeting))
	}
}

func (c *MeetingController) deleteMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, "deleting meeting", deleteMeetingErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

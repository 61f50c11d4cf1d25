package internal

import (
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type MeetingRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Place      string `json:"place"`
	Memo       string `json:"memo"`
}

func (r MeetingRequest) ToDomain(id domain.ID, location *time.Location) (domain.Meeting, error) {
	meeting := domain.Meeting{
		ID:         id,
		CustomerID: domain.ID(r.CustomerID),
		Place:      r.Place,
		Memo:       r.Memo,
	}
	if r.Date != "" {
		date, err := ParseDay(r.Date, location)
		if err != nil {
			return domain.Meeting{}, err
		}
		meeting.Date = date
	}
	return meeting, nil
}

type MeetingResponse struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Date       utils.Time `json:"date"`
	Place      string     `json:"place"`
	Memo       string     `json:"memo"`
	CreatedAt  utils.Time `json:"created_at"`
}

func ToMeetingResponse(meeting domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:         meeting.ID.String(),
		CustomerID: meeting.CustomerID.String(),
		Date:       meeting.Date,
		Place:      meeting.Place,
		Memo:       meeting.Memo,
		CreatedAt:  meeting.CreatedAt,
	}
}

package internal

import (
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type ActivityRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Content    string `json:"content"`
}

func (r ActivityRequest) ToDomain(id domain.ID, location *time.Location) (domain.Activity, error) {
	activity := domain.Activity{
		ID:         id,
		CustomerID: domain.ID(r.CustomerID),
		Type:       domain.ActivityType(r.Type),
		Content:    r.Content,
	}
	if r.Date != "" {
		date, err := ParseDay(r.Date, location)
		if err != nil {
			return domain.Activity{}, err
		}
		activity.Date = date
	}
	return activity, nil
}

type FollowUpRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

func (r FollowUpRequest) ToDomain(location *time.Location) (domain.FollowUp, error) {
	followUp := domain.FollowUp{
		Author:  r.Author,
		Content: r.Content,
	}
	if r.Date != "" {
		date, err := ParseDay(r.Date, location)
		if err != nil {
			return domain.FollowUp{}, err
		}
		followUp.Date = date
	}
	return followUp, nil
}

type FollowUpResponse struct {
	Author  string     `json:"author"`
	Content string     `json:"content"`
	Date    utils.Time `json:"date"`
}

type ActivityResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Date       utils.Time         `json:"date"`
	Type       string             `json:"type"`
	Content    string             `json:"content"`
	FollowUps  []FollowUpResponse `json:"follow_ups"`
	CreatedAt  utils.Time         `json:"created_at"`
}

func ToActivityResponse(activity domain.Activity) ActivityResponse {
	followUps := make([]FollowUpResponse, len(activity.FollowUps))
	for i, f := range activity.FollowUps {
		followUps[i] = FollowUpResponse{Author: f.Author, Content: f.Content, Date: f.Date}
	}

	return ActivityResponse{
		ID:         activity.ID.String(),
		CustomerID: activity.CustomerID.String(),
		Date:       activity.Date,
		Type:       string(activity.Type),
		Content:    activity.Content,
		FollowUps:  followUps,
		CreatedAt:  activity.CreatedAt,
	}
}

package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type Activity struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	CustomerID string     `json:"customer_id" gorm:"index;not null"`
	Date       utils.Time `json:"date" gorm:"not null"`
	Type       string     `json:"type"`
	Content    string     `json:"content"`
	FollowUps  FollowUps  `json:"follow_ups"`
	CreatedAt  utils.Time `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a Activity) ToDomain() domain.Activity {
	followUps := make([]domain.FollowUp, len(a.FollowUps))
	for i, f := range a.FollowUps {
		followUps[i] = domain.FollowUp{
			Author:  f.Author,
			Content: f.Content,
			Date:    f.Date,
		}
	}

	return domain.Activity{
		ID:         domain.ID(a.ID),
		CustomerID: domain.ID(a.CustomerID),
		Date:       a.Date,
		Type:       domain.ActivityType(a.Type),
		Content:    a.Content,
		FollowUps:  followUps,
		CreatedAt:  a.CreatedAt,
	}
}

func FromActivity(value domain.Activity) Activity {
	followUps := make(FollowUps, len(value.FollowUps))
	for i, f := range value.FollowUps {
		followUps[i] = FollowUp{
			Author:  f.Author,
			Content: f.Content,
			Date:    f.Date,
		}
	}

	return Activity{
		ID:         value.ID.String(),
		CustomerID: value.CustomerID.String(),
		Date:       value.Date,
		Type:       string(value.Type),
		Content:    value.Content,
		FollowUps:  followUps,
		CreatedAt:  value.CreatedAt,
	}
}

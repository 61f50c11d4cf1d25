package domain

import (
	"time"

	"brokerage-crm/internal/infra/utils"
)

type ActivityType string

const (
	ActivityTypeCall    ActivityType = "전화"
	ActivityTypeMessage ActivityType = "문자"
	ActivityTypeVisit   ActivityType = "방문"
)

// FollowUpAuthorReply marks a follow-up written as the customer's reply.
const FollowUpAuthorReply = "답장"

type FollowUp struct {
	Author  string
	Content string
	Date    utils.Time
}

type Activity struct {
	ID         ID
	CustomerID ID
	Date       utils.Time
	Type       ActivityType
	Content    string
	FollowUps  []FollowUp
	CreatedAt  utils.Time
}

func (a Activity) HasFollowUpFrom(author string) bool {
	for _, f := range a.FollowUps {
		if f.Author == author {
			return true
		}
	}
	return false
}

// AddFollowUp appends to a copy of the follow-up slice so snapshots sharing
// the backing array are left alone.
func (a *Activity) AddFollowUp(f FollowUp) {
	if f.Date.IsZero() {
		f.Date = utils.Time{Time: time.Now()}
	}
	followUps := make([]FollowUp, 0, len(a.FollowUps)+1)
	followUps = append(followUps, a.FollowUps...)
	a.FollowUps = append(followUps, f)
}

func NewActivityBuilder() *activityBuilder {
	return &activityBuilder{}
}

type activityHandler func(a *Activity) error

type activityBuilder struct {
	actions []activityHandler
}

func (b *activityBuilder) WithID(id ID) *activityBuilder {
	b.actions = append(b.actions, func(a *Activity) error {
		a.ID = id
		return nil
	})
	return b
}

func (b *activityBuilder) WithCustomerID(id ID) *activityBuilder {
	b.actions = append(b.actions, func(a *Activity) error {
		a.CustomerID = id
		return nil
	})
	return b
}

func (b *activityBuilder) WithDate(date time.Time) *activityBuilder {
	b.actions = append(b.actions, func(a *Activity) error {
		a.Date = utils.Time{Time: date}
		return nil
	})
	return b
}

func (b *activityBuilder) WithType(t ActivityType) *activityBuilder {
	b.actions = append(b.actions, func(a *Activity) error {
		a.Type = t
		return nil
	})
	return b
}

func (b *activityBuilder) WithContent(content string) *activityBuilder {
	b.actions = append(b.actions, func(a *Activity) error {
		a.Content = content
		return nil
	})
	return b
}

func (b *activityBuilder) WithFollowUps(followUps ...FollowUp) *activityBuilder {
	b.actions = append(b.actions, func(a *Activity) error {
		a.FollowUps = append(a.FollowUps, followUps...)
		return nil
	})
	return b
}

func (b *activityBuilder) Build() (Activity, error) {
	now := time.Now()
	result := &Activity{
		ID:        ID(utils.GenerateUUID()),
		Date:      utils.Time{Time: now},
		Type:      ActivityTypeCall,
		CreatedAt: utils.Time{Time: now},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return Activity{}, err
		}
	}

	if result.CustomerID == "" {
		return Activity{}, ErrCustomerIDRequired
	}

	return *result, nil
}

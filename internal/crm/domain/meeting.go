package domain

import (
	"time"

	"brokerage-crm/internal/infra/utils"
)

type Meeting struct {
	ID         ID
	CustomerID ID
	Date       utils.Time
	Place      string
	Memo       string
	CreatedAt  utils.Time
}

func NewMeetingBuilder() *meetingBuilder {
	return &meetingBuilder{}
}

type meetingHandler func(m *Meeting) error

type meetingBuilder struct {
	actions []meetingHandler
}

func (b *meetingBuilder) WithID(id ID) *meetingBuilder {
	b.actions = append(b.actions, func(m *Meeting) error {
		m.ID = id
		return nil
	})
	return b
}

func (b *meetingBuilder) WithCustomerID(id ID) *meetingBuilder {
	b.actions = append(b.actions, func(m *Meeting) error {
		m.CustomerID = id
		return nil
	})
	return b
}

func (b *meetingBuilder) WithDate(date time.Time) *meetingBuilder {
	b.actions = append(b.actions, func(m *Meeting) error {
		m.Date = utils.Time{Time: date}
		return nil
	})
	return b
}

func (b *meetingBuilder) WithPlace(place string) *meetingBuilder {
	b.actions = append(b.actions, func(m *Meeting) error {
		m.Place = place
		return nil
	})
	return b
}

func (b *meetingBuilder) WithMemo(memo string) *meetingBuilder {
	b.actions = append(b.actions, func(m *Meeting) error {
		m.Memo = memo
		return nil
	})
	return b
}

func (b *meetingBuilder) Build() (Meeting, error) {
	result := &Meeting{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: utils.Time{Time: time.Now()},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return Meeting{}, err
		}
	}

	if result.CustomerID == "" {
		return Meeting{}, ErrCustomerIDRequired
	}
	if result.Date.IsZero() {
		return Meeting{}, ErrDateRequired
	}

	return *result, nil
}

package domain

import (
	"strings"
	"time"

	"brokerage-crm/internal/infra/utils"
)

type CustomerStatus string

const (
	CustomerStatusNew        CustomerStatus = "신규"
	CustomerStatusInProgress CustomerStatus = "진행중"
	CustomerStatusLongTerm   CustomerStatus = "장기관리고객"
	CustomerStatusOnHold     CustomerStatus = "보류"
	CustomerStatusContracted CustomerStatus = "계약완료"
)

func (s CustomerStatus) String() string {
	return string(s)
}

type Customer struct {
	ID            ID
	Version       Version
	Name          string
	Phone         string
	Status        CustomerStatus
	Progress      string
	IsFavorite    bool
	Source        string
	PreferredArea string
	Budget        string
	Memo          string
	CreatedAt     utils.Time
	UpdatedAt     utils.Time
}

// WithStatus returns a copy of the customer carrying the new status.
func (c Customer) WithStatus(status CustomerStatus) Customer {
	c.Status = status
	c.Version++
	c.UpdatedAt = utils.Time{Time: time.Now()}
	return c
}

func (c *Customer) Update(other Customer) {
	c.Name = other.Name
	c.Phone = other.Phone
	c.Status = other.Status
	c.Progress = other.Progress
	c.IsFavorite = other.IsFavorite
	c.Source = other.Source
	c.PreferredArea = other.PreferredArea
	c.Budget = other.Budget
	c.Memo = other.Memo
	c.Version++
	c.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewCustomerBuilder() *customerBuilder {
	return &customerBuilder{}
}

type customerHandler func(c *Customer) error

type customerBuilder struct {
	actions []customerHandler
}

func (b *customerBuilder) WithID(id ID) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.ID = id
		return nil
	})
	return b
}

func (b *customerBuilder) WithName(name string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Name = strings.TrimSpace(name)
		return nil
	})
	return b
}

func (b *customerBuilder) WithPhone(phone string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Phone = phone
		return nil
	})
	return b
}

func (b *customerBuilder) WithStatus(status CustomerStatus) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		if status != "" {
			c.Status = status
		}
		return nil
	})
	return b
}

func (b *customerBuilder) WithProgress(progress string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Progress = progress
		return nil
	})
	return b
}

func (b *customerBuilder) WithFavorite(favorite bool) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.IsFavorite = favorite
		return nil
	})
	return b
}

func (b *customerBuilder) WithSource(source string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Source = source
		return nil
	})
	return b
}

func (b *customerBuilder) WithPreferredArea(area string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.PreferredArea = area
		return nil
	})
	return b
}

func (b *customerBuilder) WithBudget(budget string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Budget = budget
		return nil
	})
	return b
}

func (b *customerBuilder) WithMemo(memo string) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.Memo = memo
		return nil
	})
	return b
}

func (b *customerBuilder) WithCreatedAt(t time.Time) *customerBuilder {
	b.actions = append(b.actions, func(c *Customer) error {
		c.CreatedAt = utils.Time{Time: t}
		c.UpdatedAt = utils.Time{Time: t}
		return nil
	})
	return b
}

func (b *customerBuilder) Build() (Customer, error) {
	now := time.Now()
	result := &Customer{
		ID:        ID(utils.GenerateUUID()),
		Version:   1,
		Status:    CustomerStatusNew,
		CreatedAt: utils.Time{Time: now},
		UpdatedAt: utils.Time{Time: now},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return Customer{}, err
		}
	}

	if result.Name == "" {
		return Customer{}, ErrNameRequired
	}

	return *result, nil
}

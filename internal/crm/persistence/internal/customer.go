package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type Customer struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Version       int        `json:"version"`
	Name          string     `json:"name" gorm:"not null"`
	Phone         string     `json:"phone"`
	Status        string     `json:"status" gorm:"index"`
	Progress      string     `json:"progress"`
	IsFavorite    bool       `json:"is_favorite"`
	Source        string     `json:"source"`
	PreferredArea string     `json:"preferred_area"`
	Budget        string     `json:"budget"`
	Memo          string     `json:"memo"`
	CreatedAt     utils.Time `json:"created_at"`
	UpdatedAt     utils.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c Customer) ToDomain() domain.Customer {
	return domain.Customer{
		ID:            domain.ID(c.ID),
		Version:       domain.Version(c.Version),
		Name:          c.Name,
		Phone:         c.Phone,
		Status:        domain.CustomerStatus(c.Status),
		Progress:      c.Progress,
		IsFavorite:    c.IsFavorite,
		Source:        c.Source,
		PreferredArea: c.PreferredArea,
		Budget:        c.Budget,
		Memo:          c.Memo,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromCustomer(value domain.Customer) Customer {
	return Customer{
		ID:            value.ID.String(),
		Version:       int(value.Version),
		Name:          value.Name,
		Phone:         value.Phone,
		Status:        value.Status.String(),
		Progress:      value.Progress,
		IsFavorite:    value.IsFavorite,
		Source:        value.Source,
		PreferredArea: value.PreferredArea,
		Budget:        value.Budget,
		Memo:          value.Memo,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}

type Meeting struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	CustomerID string     `json:"customer_id" gorm:"index;not null"`
	Date       utils.Time `json:"date" gorm:"not null"`
	Place      string     `json:"place"`
	Memo       string     `json:"memo"`
	CreatedAt  utils.Time `json:"created_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}

func (m Meeting) ToDomain() domain.Meeting {
	return domain.Meeting{
		ID:         domain.ID(m.ID),
		CustomerID: domain.ID(m.CustomerID),
		Date:       m.Date,
		Place:      m.Place,
		Memo:       m.Memo,
		CreatedAt:  m.CreatedAt,
	}
}

func FromMeeting(value domain.Meeting) Meeting {
	return Meeting{
		ID:         value.ID.String(),
		CustomerID: value.CustomerID.String(),
		Date:       value.Date,
		Place:      value.Place,
		Memo:       value.Memo,
		CreatedAt:  value.CreatedAt,
	}
}

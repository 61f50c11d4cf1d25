package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type Building struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Version   int        `json:"version"`
	Name      string     `json:"name" gorm:"not null"`
	Address   string     `json:"address"`
	Floors    int        `json:"floors"`
	Memo      string     `json:"memo"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (Building) TableName() string {
	return "buildings"
}

func (b Building) ToDomain() domain.Building {
	return domain.Building{
		ID:        domain.ID(b.ID),
		Version:   domain.Version(b.Version),
		Name:      b.Name,
		Address:   b.Address,
		Floors:    b.Floors,
		Memo:      b.Memo,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBuilding(value domain.Building) Building {
	return Building{
		ID:        value.ID.String(),
		Version:   int(value.Version),
		Name:      value.Name,
		Address:   value.Address,
		Floors:    value.Floors,
		Memo:      value.Memo,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}
}

package domain

import (
	"strings"
	"time"

	"brokerage-crm/internal/infra/utils"
)

type Building struct {
	ID        ID
	Version   Version
	Name      string
	Address   string
	Floors    int
	Memo      string
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

func (b *Building) Update(other Building) {
	b.Name = other.Name
	b.Address = other.Address
	b.Floors = other.Floors
	b.Memo = other.Memo
	b.Version++
	b.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewBuildingBuilder() *buildingBuilder {
	return &buildingBuilder{}
}

type buildingHandler func(b *Building) error

type buildingBuilder struct {
	actions []buildingHandler
}

func (b *buildingBuilder) WithID(id ID) *buildingBuilder {
	b.actions = append(b.actions, func(v *Building) error {
		v.ID = id
		return nil
	})
	return b
}

func (b *buildingBuilder) WithName(name string) *buildingBuilder {
	b.actions = append(b.actions, func(v *Building) error {
		v.Name = strings.TrimSpace(name)
		return nil
	})
	return b
}

func (b *buildingBuilder) WithAddress(address string) *buildingBuilder {
	b.actions = append(b.actions, func(v *Building) error {
		v.Address = address
		return nil
	})
	return b
}

func (b *buildingBuilder) WithFloors(floors int) *buildingBuilder {
	b.actions = append(b.actions, func(v *Building) error {
		v.Floors = floors
		return nil
	})
	return b
}

func (b *buildingBuilder) WithMemo(memo string) *buildingBuilder {
	b.actions = append(b.actions, func(v *Building) error {
		v.Memo = memo
		return nil
	})
	return b
}

func (b *buildingBuilder) Build() (Building, error) {
	now := time.Now()
	result := &Building{
		ID:        ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: utils.Time{Time: now},
		UpdatedAt: utils.Time{Time: now},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return Building{}, err
		}
	}

	if result.Name == "" {
		return Building{}, ErrNameRequired
	}

	return *result, nil
}

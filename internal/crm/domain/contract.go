package domain

import (
	"time"

	"brokerage-crm/internal/infra/utils"
)

type ContractStatus string

const (
	ContractStatusDrafting ContractStatus = "계약서작성"
	ContractStatusBalance  ContractStatus = "잔금"
	ContractStatusMovedIn  ContractStatus = "입주완료"
)

func (s ContractStatus) String() string {
	return string(s)
}

// Rank orders the lifecycle stages. Statuses outside the lifecycle rank 0.
func (s ContractStatus) Rank() int {
	switch s {
	case ContractStatusDrafting:
		return 1
	case ContractStatusBalance:
		return 2
	case ContractStatusMovedIn:
		return 3
	default:
		return 0
	}
}

type Contract struct {
	ID                   ID
	Version              Version
	BuildingName         string
	RoomNumber           string
	LandlordName         string
	LandlordPhone        string
	TenantName           string
	TenantPhone          string
	ContractDate         *utils.Time
	BalanceDate          *utils.Time
	ExpiryDate           *utils.Time
	RemainderPaymentDate *utils.Time
	ProgressStatus       ContractStatus
	BrokerageFee         int64
	FeeStatus            string
	Memo                 string
	CreatedAt            utils.Time
	UpdatedAt            utils.Time
}

func (c Contract) WithProgressStatus(status ContractStatus) Contract {
	c.ProgressStatus = status
	c.Version++
	c.UpdatedAt = utils.Time{Time: time.Now()}
	return c
}

func (c *Contract) Update(other Contract) {
	c.BuildingName = other.BuildingName
	c.RoomNumber = other.RoomNumber
	c.LandlordName = other.LandlordName
	c.LandlordPhone = other.LandlordPhone
	c.TenantName = other.TenantName
	c.TenantPhone = other.TenantPhone
	c.ContractDate = other.ContractDate
	c.BalanceDate = other.BalanceDate
	c.ExpiryDate = other.ExpiryDate
	c.RemainderPaymentDate = other.RemainderPaymentDate
	c.ProgressStatus = other.ProgressStatus
	c.BrokerageFee = other.BrokerageFee
	c.FeeStatus = other.FeeStatus
	c.Memo = other.Memo
	c.Version++
	c.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewContractBuilder() *contractBuilder {
	return &contractBuilder{}
}

type contractHandler func(c *Contract) error

type contractBuilder struct {
	actions []contractHandler
}

func (b *contractBuilder) WithID(id ID) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.ID = id
		return nil
	})
	return b
}

func (b *contractBuilder) WithBuildingName(name string) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.BuildingName = name
		return nil
	})
	return b
}

func (b *contractBuilder) WithRoomNumber(room string) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.RoomNumber = room
		return nil
	})
	return b
}

func (b *contractBuilder) WithLandlord(name, phone string) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.LandlordName = name
		c.LandlordPhone = phone
		return nil
	})
	return b
}

func (b *contractBuilder) WithTenant(name, phone string) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.TenantName = name
		c.TenantPhone = phone
		return nil
	})
	return b
}

func (b *contractBuilder) WithContractDate(t time.Time) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.ContractDate = utils.TimePtr(t)
		return nil
	})
	return b
}

func (b *contractBuilder) WithBalanceDate(t time.Time) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.BalanceDate = utils.TimePtr(t)
		return nil
	})
	return b
}

func (b *contractBuilder) WithExpiryDate(t time.Time) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.ExpiryDate = utils.TimePtr(t)
		return nil
	})
	return b
}

func (b *contractBuilder) WithRemainderPaymentDate(t time.Time) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.RemainderPaymentDate = utils.TimePtr(t)
		return nil
	})
	return b
}

func (b *contractBuilder) WithProgressStatus(status ContractStatus) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		if status != "" {
			c.ProgressStatus = status
		}
		return nil
	})
	return b
}

func (b *contractBuilder) WithBrokerageFee(fee int64, status string) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.BrokerageFee = fee
		c.FeeStatus = status
		return nil
	})
	return b
}

func (b *contractBuilder) WithMemo(memo string) *contractBuilder {
	b.actions = append(b.actions, func(c *Contract) error {
		c.Memo = memo
		return nil
	})
	return b
}

func (b *contractBuilder) Build() (Contract, error) {
	now := time.Now()
	result := &Contract{
		ID:             ID(utils.GenerateUUID()),
		Version:        1,
		ProgressStatus: ContractStatusDrafting,
		CreatedAt:      utils.Time{Time: now},
		UpdatedAt:      utils.Time{Time: now},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return Contract{}, err
		}
	}

	return *result, nil
}

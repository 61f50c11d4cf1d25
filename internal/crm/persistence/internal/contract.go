package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type Contract struct {
	ID                   string      `json:"id" gorm:"primaryKey"`
	Version              int         `json:"version"`
	BuildingName         string      `json:"building_name"`
	RoomNumber           string      `json:"room_number"`
	LandlordName         string      `json:"landlord_name"`
	LandlordPhone        string      `json:"landlord_phone"`
	TenantName           string      `json:"tenant_name"`
	TenantPhone          string      `json:"tenant_phone"`
	ContractDate         *utils.Time `json:"contract_date,omitempty"`
	BalanceDate          *utils.Time `json:"balance_date,omitempty"`
	ExpiryDate           *utils.Time `json:"expiry_date,omitempty"`
	RemainderPaymentDate *utils.Time `json:"remainder_payment_date,omitempty"`
	ProgressStatus       string      `json:"progress_status" gorm:"index"`
	BrokerageFee         int64       `json:"brokerage_fee"`
	FeeStatus            string      `json:"fee_status"`
	Memo                 string      `json:"memo"`
	CreatedAt            utils.Time  `json:"created_at"`
	UpdatedAt            utils.Time  `json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c Contract) ToDomain() domain.Contract {
	return domain.Contract{
		ID:                   domain.ID(c.ID),
		Version:              domain.Version(c.Version),
		BuildingName:         c.BuildingName,
		RoomNumber:           c.RoomNumber,
		LandlordName:         c.LandlordName,
		LandlordPhone:        c.LandlordPhone,
		TenantName:           c.TenantName,
		TenantPhone:          c.TenantPhone,
		ContractDate:         present(c.ContractDate),
		BalanceDate:          present(c.BalanceDate),
		ExpiryDate:           present(c.ExpiryDate),
		RemainderPaymentDate: present(c.RemainderPaymentDate),
		ProgressStatus:       domain.ContractStatus(c.ProgressStatus),
		BrokerageFee:         c.BrokerageFee,
		FeeStatus:            c.FeeStatus,
		Memo:                 c.Memo,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func FromContract(value domain.Contract) Contract {
	return Contract{
		ID:                   value.ID.String(),
		Version:              int(value.Version),
		BuildingName:         value.BuildingName,
		RoomNumber:           value.RoomNumber,
		LandlordName:         value.LandlordName,
		LandlordPhone:        value.LandlordPhone,
		TenantName:           value.TenantName,
		TenantPhone:          value.TenantPhone,
		ContractDate:         present(value.ContractDate),
		BalanceDate:          present(value.BalanceDate),
		ExpiryDate:           present(value.ExpiryDate),
		RemainderPaymentDate: present(value.RemainderPaymentDate),
		ProgressStatus:       value.ProgressStatus.String(),
		BrokerageFee:         value.BrokerageFee,
		FeeStatus:            value.FeeStatus,
		Memo:                 value.Memo,
		CreatedAt:            value.CreatedAt,
		UpdatedAt:            value.UpdatedAt,
	}
}

// present maps zero times to nil; a NULL column scans into a zero value.
func present(t *utils.Time) *utils.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	value := *t
	return &value
}

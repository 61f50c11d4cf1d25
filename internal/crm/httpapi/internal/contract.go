package internal

import (
	"fmt"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type ContractRequest struct {
	BuildingName         string `json:"building_name"`
	RoomNumber           string `json:"room_number"`
	LandlordName         string `json:"landlord_name"`
	LandlordPhone        string `json:"landlord_phone"`
	TenantName           string `json:"tenant_name"`
	TenantPhone          string `json:"tenant_phone"`
	ContractDate         string `json:"contract_date"`
	BalanceDate          string `json:"balance_date"`
	ExpiryDate           string `json:"expiry_date"`
	RemainderPaymentDate string `json:"remainder_payment_date"`
	ProgressStatus       string `json:"progress_status"`
	BrokerageFee         int64  `json:"brokerage_fee"`
	FeeStatus            string `json:"fee_status"`
	Memo                 string `json:"memo"`
}

func (r ContractRequest) ToDomain(id domain.ID, location *time.Location) (domain.Contract, error) {
	contract := domain.Contract{
		ID:             id,
		BuildingName:   r.BuildingName,
		RoomNumber:     r.RoomNumber,
		LandlordName:   r.LandlordName,
		LandlordPhone:  r.LandlordPhone,
		TenantName:     r.TenantName,
		TenantPhone:    r.TenantPhone,
		ProgressStatus: domain.ContractStatus(r.ProgressStatus),
		BrokerageFee:   r.BrokerageFee,
		FeeStatus:      r.FeeStatus,
		Memo:           r.Memo,
	}

	dates := []struct {
		name  string
		value string
		dst   **utils.Time
	}{
		{"contract_date", r.ContractDate, &contract.ContractDate},
		{"balance_date", r.BalanceDate, &contract.BalanceDate},
		{"expiry_date", r.ExpiryDate, &contract.ExpiryDate},
		{"remainder_payment_date", r.RemainderPaymentDate, &contract.RemainderPaymentDate},
	}
	for _, d := range dates {
		parsed, err := ParseOptionalDay(d.value, location)
		if err != nil {
			return domain.Contract{}, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return contract, nil
}

type ContractResponse struct {
	ID                   string     `json:"id" msgpack:"id"`
	Version              int        `json:"version" msgpack:"version"`
	BuildingName         string     `json:"building_name" msgpack:"building_name"`
	RoomNumber           string     `json:"room_number" msgpack:"room_number"`
	LandlordName         string     `json:"landlord_name" msgpack:"landlord_name"`
	LandlordPhone        string     `json:"landlord_phone" msgpack:"landlord_phone"`
	TenantName           string     `json:"tenant_name" msgpack:"tenant_name"`
	TenantPhone          string     `json:"tenant_phone" msgpack:"tenant_phone"`
	ContractDate         string     `json:"contract_date,omitempty" msgpack:"contract_date,omitempty"`
	BalanceDate          string     `json:"balance_date,omitempty" msgpack:"balance_date,omitempty"`
	ExpiryDate           string     `json:"expiry_date,omitempty" msgpack:"expiry_date,omitempty"`
	RemainderPaymentDate string     `json:"remainder_payment_date,omitempty" msgpack:"remainder_payment_date,omitempty"`
	ProgressStatus       string     `json:"progress_status" msgpack:"progress_status"`
	BrokerageFee         int64      `json:"brokerage_fee" msgpack:"brokerage_fee"`
	FeeStatus            string     `json:"fee_status" msgpack:"fee_status"`
	Memo                 string     `json:"memo" msgpack:"memo"`
	CreatedAt            utils.Time `json:"created_at" msgpack:"created_at"`
	UpdatedAt            utils.Time `json:"updated_at" msgpack:"updated_at"`
}

func ToContractResponse(contract domain.Contract, location *time.Location) ContractResponse {
	return ContractResponse{
		ID:                   contract.ID.String(),
		Version:              int(contract.Version),
		BuildingName:         contract.BuildingName,
		RoomNumber:           contract.RoomNumber,
		LandlordName:         contract.LandlordName,
		LandlordPhone:        contract.LandlordPhone,
		TenantName:           contract.TenantName,
		TenantPhone:          contract.TenantPhone,
		ContractDate:         FormatOptionalDay(contract.ContractDate, location),
		BalanceDate:          FormatOptionalDay(contract.BalanceDate, location),
		ExpiryDate:           FormatOptionalDay(contract.ExpiryDate, location),
		RemainderPaymentDate: FormatOptionalDay(contract.RemainderPaymentDate, location),
		ProgressStatus:       contract.ProgressStatus.String(),
		BrokerageFee:         contract.BrokerageFee,
		FeeStatus:            contract.FeeStatus,
		Memo:                 contract.Memo,
		CreatedAt:            contract.CreatedAt,
		UpdatedAt:            contract.UpdatedAt,
	}
}

func ToContractResponses(contracts []domain.Contract, location *time.Location) []ContractResponse {
	responses := make([]ContractResponse, len(contracts))
	for i, contract := range contracts {
		responses[i] = ToContractResponse(contract, location)
	}
	return responses
}

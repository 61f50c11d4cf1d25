package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type CustomerRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	Progress      string `json:"progress"`
	IsFavorite    bool   `json:"is_favorite"`
	Source        string `json:"source"`
	PreferredArea string `json:"preferred_area"`
	Budget        string `json:"budget"`
	Memo          string `json:"memo"`
}

func (r CustomerRequest) ToDomain(id domain.ID) domain.Customer {
	return domain.Customer{
		ID:            id,
		Name:          r.Name,
		Phone:         r.Phone,
		Status:        domain.CustomerStatus(r.Status),
		Progress:      r.Progress,
		IsFavorite:    r.IsFavorite,
		Source:        r.Source,
		PreferredArea: r.PreferredArea,
		Budget:        r.Budget,
		Memo:          r.Memo,
	}
}

type CustomerResponse struct {
	ID            string     `json:"id" msgpack:"id"`
	Version       int        `json:"version" msgpack:"version"`
	Name          string     `json:"name" msgpack:"name"`
	Phone         string     `json:"phone" msgpack:"phone"`
	Status        string     `json:"status" msgpack:"status"`
	Progress      string     `json:"progress" msgpack:"progress"`
	IsFavorite    bool       `json:"is_favorite" msgpack:"is_favorite"`
	Source        string     `json:"source" msgpack:"source"`
	PreferredArea string     `json:"preferred_area" msgpack:"preferred_area"`
	Budget        string     `json:"budget" msgpack:"budget"`
	Memo          string     `json:"memo" msgpack:"memo"`
	CreatedAt     utils.Time `json:"created_at" msgpack:"created_at"`
	UpdatedAt     utils.Time `json:"updated_at" msgpack:"updated_at"`
}

func ToCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            customer.ID.String(),
		Version:       int(customer.Version),
		Name:          customer.Name,
		Phone:         customer.Phone,
		Status:        customer.Status.String(),
		Progress:      customer.Progress,
		IsFavorite:    customer.IsFavorite,
		Source:        customer.Source,
		PreferredArea: customer.PreferredArea,
		Budget:        customer.Budget,
		Memo:          customer.Memo,
		CreatedAt:     customer.CreatedAt,
		UpdatedAt:     customer.UpdatedAt,
	}
}

func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = ToCustomerResponse(customer)
	}
	return responses
}

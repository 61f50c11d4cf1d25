package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type BuildingRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Floors  int    `json:"floors"`
	Memo    string `json:"memo"`
}

type BuildingResponse struct {
	ID        string     `json:"id"`
	Version   int        `json:"version"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Floors    int        `json:"floors"`
	Memo      string     `json:"memo"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func ToBuildingResponse(building domain.Building) BuildingResponse {
	return BuildingResponse{
		ID:        building.ID.String(),
		Version:   int(building.Version),
		Name:      building.Name,
		Address:   building.Address,
		Floors:    building.Floors,
		Memo:      building.Memo,
		CreatedAt: building.CreatedAt,
		UpdatedAt: building.UpdatedAt,
	}
}

package usecases

import (
	"context"
	"fmt"

	"brokerage-crm/internal/crm/domain"
)

func NewBuildingService(store RecordStore) *SimpleBuildingService {
	return &SimpleBuildingService{
		store: store,
	}
}

var _ BuildingService = (*SimpleBuildingService)(nil)

type SimpleBuildingService struct {
	store RecordStore
}

func (s *SimpleBuildingService) Create(ctx context.Context, building domain.Building) error {
	if err := s.store.UpsertBuilding(ctx, building); err != nil {
		return fmt.Errorf("creating building: %w", err)
	}
	return nil
}

func (s *SimpleBuildingService) All(ctx context.Context) ([]domain.Building, error) {
	buildings, err := s.store.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing buildings: %w", err)
	}
	return buildings, nil
}

func (s *SimpleBuildingService) Update(ctx context.Context, update domain.Building) (domain.Building, error) {
	building, err := s.store.GetBuilding(ctx, update.ID)
	if err != nil {
		return domain.Building{}, fmt.Errorf("getting building: %w", err)
	}

	building.Update(update)
	if building.Name == "" {
		return domain.Building{}, domain.ErrNameRequired
	}

	if err := s.store.UpsertBuilding(ctx, building); err != nil {
		return domain.Building{}, fmt.Errorf("updating building: %w", err)
	}
	return building, nil
}

func (s *SimpleBuildingService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.store.Remove(ctx, domain.CollectionBuildings, id); err != nil {
		return fmt.Errorf("removing building: %w", err)
	}
	return nil
}

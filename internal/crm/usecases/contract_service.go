package usecases

import (
	"context"
	"fmt"

	"brokerage-crm/internal/crm/domain"
)

func NewContractService(store RecordStore) *SimpleContractService {
	return &SimpleContractService{
		store: store,
	}
}

var _ ContractService = (*SimpleContractService)(nil)

type SimpleContractService struct {
	store RecordStore
}

func (s *SimpleContractService) Create(ctx context.Context, contract domain.Contract) error {
	if err := s.store.UpsertContract(ctx, contract); err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}
	return nil
}

func (s *SimpleContractService) Get(ctx context.Context, id domain.ID) (domain.Contract, error) {
	contract, err := s.store.GetContract(ctx, id)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("getting contract: %w", err)
	}
	return contract, nil
}

func (s *SimpleContractService) All(ctx context.Context) ([]domain.Contract, error) {
	contracts, err := s.store.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	return contracts, nil
}

func (s *SimpleContractService) Update(ctx context.Context, update domain.Contract) (domain.Contract, error) {
	contract, err := s.store.GetContract(ctx, update.ID)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("getting contract: %w", err)
	}

	if update.ProgressStatus == "" {
		update.ProgressStatus = contract.ProgressStatus
	}
	contract.Update(update)

	if err := s.store.UpsertContract(ctx, contract); err != nil {
		return domain.Contract{}, fmt.Errorf("updating contract: %w", err)
	}
	return contract, nil
}

func (s *SimpleContractService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.store.Remove(ctx, domain.CollectionContracts, id); err != nil {
		return fmt.Errorf("removing contract: %w", err)
	}
	return nil
}

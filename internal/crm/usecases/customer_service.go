package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"brokerage-crm/internal/crm/domain"
)

func NewCustomerService(store RecordStore) *SimpleCustomerService {
	return &SimpleCustomerService{
		store: store,
	}
}

var _ CustomerService = (*SimpleCustomerService)(nil)

type SimpleCustomerService struct {
	store RecordStore
}

func (s *SimpleCustomerService) Create(ctx context.Context, customer domain.Customer) error {
	if err := s.store.UpsertCustomer(ctx, customer); err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}
	return nil
}

func (s *SimpleCustomerService) Get(ctx context.Context, id domain.ID) (domain.Customer, error) {
	customer, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("getting customer: %w", err)
	}
	return customer, nil
}

func (s *SimpleCustomerService) All(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}

func (s *SimpleCustomerService) Update(ctx context.Context, update domain.Customer) (domain.Customer, error) {
	customer, err := s.store.GetCustomer(ctx, update.ID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("getting customer: %w", err)
	}

	if update.Status == "" {
		update.Status = customer.Status
	}
	customer.Update(update)
	if customer.Name == "" {
		return domain.Customer{}, domain.ErrNameRequired
	}

	if err := s.store.UpsertCustomer(ctx, customer); err != nil {
		return domain.Customer{}, fmt.Errorf("updating customer: %w", err)
	}
	return customer, nil
}

// Delete removes the customer with its meetings and activities.
func (s *SimpleCustomerService) Delete(ctx context.Context, id domain.ID) error {
	if _, err := s.store.GetCustomer(ctx, id); err != nil {
		return fmt.Errorf("getting customer: %w", err)
	}

	meetings, err := s.store.ListMeetings(ctx)
	if err != nil {
		return fmt.Errorf("listing meetings: %w", err)
	}
	for _, m := range meetings {
		if m.CustomerID != id {
			continue
		}
		if err := s.store.Remove(ctx, domain.CollectionMeetings, m.ID); err != nil {
			return fmt.Errorf("removing meeting %s: %w", m.ID, err)
		}
	}

	activities, err := s.store.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}
	for _, a := range activities {
		if a.CustomerID != id {
			continue
		}
		if err := s.store.Remove(ctx, domain.CollectionActivities, a.ID); err != nil {
			return fmt.Errorf("removing activity %s: %w", a.ID, err)
		}
	}

	if err := s.store.Remove(ctx, domain.CollectionCustomers, id); err != nil {
		return fmt.Errorf("removing customer: %w", err)
	}

	slog.Info("customer deleted", slog.String("customer_id", id.String()))
	return nil
}

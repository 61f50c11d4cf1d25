package usecases

import (
	"context"
	"fmt"

	"brokerage-crm/internal/crm/domain"
)

func NewActivityService(store RecordStore) *SimpleActivityService {
	return &SimpleActivityService{
		store: store,
	}
}

var _ ActivityService = (*SimpleActivityService)(nil)

type SimpleActivityService struct {
	store RecordStore
}

func (s *SimpleActivityService) Create(ctx context.Context, activity domain.Activity) error {
	if _, err := s.store.GetCustomer(ctx, activity.CustomerID); err != nil {
		return fmt.Errorf("getting activity customer: %w", err)
	}

	if err := s.store.UpsertActivity(ctx, activity); err != nil {
		return fmt.Errorf("creating activity: %w", err)
	}
	return nil
}

func (s *SimpleActivityService) FindAll(ctx context.Context, customerID domain.ID) ([]domain.Activity, error) {
	activities, err := s.store.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	if customerID == "" {
		return activities, nil
	}

	result := make([]domain.Activity, 0)
	for _, a := range activities {
		if a.CustomerID == customerID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *SimpleActivityService) Update(ctx context.Context, update domain.Activity) (domain.Activity, error) {
	activity, err := s.store.GetActivity(ctx, update.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("getting activity: %w", err)
	}

	if !update.Date.IsZero() {
		activity.Date = update.Date
	}
	if update.Type != "" {
		activity.Type = update.Type
	}
	activity.Content = update.Content
	if update.FollowUps != nil {
		activity.FollowUps = update.FollowUps
	}

	if err := s.store.UpsertActivity(ctx, activity); err != nil {
		return domain.Activity{}, fmt.Errorf("updating activity: %w", err)
	}
	return activity, nil
}

func (s *SimpleActivityService) AddFollowUp(ctx context.Context, id domain.ID, followUp domain.FollowUp) (domain.Activity, error) {
	activity, err := s.store.GetActivity(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("getting activity: %w", err)
	}

	activity.AddFollowUp(followUp)

	if err := s.store.UpsertActivity(ctx, activity); err != nil {
		return domain.Activity{}, fmt.Errorf("adding follow-up: %w", err)
	}
	return activity, nil
}

func (s *SimpleActivityService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.store.Remove(ctx, domain.CollectionActivities, id); err != nil {
		return fmt.Errorf("removing activity: %w", err)
	}
	return nil
}

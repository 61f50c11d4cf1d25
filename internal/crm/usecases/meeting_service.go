package usecases

import (
	"context"
	"fmt"

	"brokerage-crm/internal/crm/domain"
)

func NewMeetingService(store RecordStore) *SimpleMeetingService {
	return &SimpleMeetingService{
		store: store,
	}
}

var _ MeetingService = (*SimpleMeetingService)(nil)

type SimpleMeetingService struct {
	store RecordStore
}

func (s *SimpleMeetingService) Create(ctx context.Context, meeting domain.Meeting) error {
	if _, err := s.store.GetCustomer(ctx, meeting.CustomerID); err != nil {
		return fmt.Errorf("getting meeting customer: %w", err)
	}

	if err := s.store.UpsertMeeting(ctx, meeting); err != nil {
		return fmt.Errorf("creating meeting: %w", err)
	}
	return nil
}

// FindAll lists meetings, narrowed to one customer when customerID is set.
func (s *SimpleMeetingService) FindAll(ctx context.Context, customerID domain.ID) ([]domain.Meeting, error) {
	meetings, err := s.store.ListMeetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	if customerID == "" {
		return meetings, nil
	}

	result := make([]domain.Meeting, 0)
	for _, m := range meetings {
		if m.CustomerID == customerID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (s *SimpleMeetingService) Update(ctx context.Context, update domain.Meeting) (domain.Meeting, error) {
	meeting, err := s.store.GetMeeting(ctx, update.ID)
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("getting meeting: %w", err)
	}

	if !update.Date.IsZero() {
		meeting.Date = update.Date
	}
	meeting.Place = update.Place
	meeting.Memo = update.Memo

	if err := s.store.UpsertMeeting(ctx, meeting); err != nil {
		return domain.Meeting{}, fmt.Errorf("updating meeting: %w", err)
	}
	return meeting, nil
}

func (s *SimpleMeetingService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.store.Remove(ctx, domain.CollectionMeetings, id); err != nil {
		return fmt.Errorf("removing meeting: %w", err)
	}
	return nil
}

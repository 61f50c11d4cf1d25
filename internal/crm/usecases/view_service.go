package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brokerage-crm/internal/crm/derived"
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/cache"
	"brokerage-crm/internal/infra/utils"

	"github.com/vmihailenco/msgpack/v5"
)

const _viewCacheTTL = 15 * time.Minute

func NewViewService(store RecordStore, viewCache cache.Cache, clock Clock) *SimpleViewService {
	return &SimpleViewService{
		store: store,
		cache: viewCache,
		clock: clock,
	}
}

var _ ViewService = (*SimpleViewService)(nil)

// SimpleViewService computes views from the store. Results are cached as
// msgpack under a key made of the source revisions, the query and the
// local day, so a store change or midnight never serves a stale view.
type SimpleViewService struct {
	store RecordStore
	cache cache.Cache
	clock Clock
}

func (s *SimpleViewService) Customers(ctx context.Context, q CustomerViewQuery) ([]domain.Customer, error) {
	now := s.clock()
	key := s.key(now, "customers",
		[]domain.Collection{domain.CollectionCustomers, domain.CollectionMeetings, domain.CollectionActivities},
		string(q.Filter), q.Progress, sortKey(q.Sort))

	return cachedView(ctx, s.cache, key, func() ([]domain.Customer, error) {
		customers, err := s.store.ListCustomers(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing customers: %w", err)
		}
		meetings, err := s.store.ListMeetings(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing meetings: %w", err)
		}
		activities, err := s.store.ListActivities(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing activities: %w", err)
		}

		result := derived.ComputeFilteredSortedCustomers(customers, meetings, activities, q.Filter, q.Progress, now)
		return derived.SortCustomersBy(result, q.Sort), nil
	})
}

func (s *SimpleViewService) Contracts(ctx context.Context, q ContractViewQuery) ([]domain.Contract, error) {
	now := s.clock()
	key := s.key(now, "contracts",
		[]domain.Collection{domain.CollectionContracts},
		string(q.Filter), sortKey(q.Sort))

	return cachedView(ctx, s.cache, key, func() ([]domain.Contract, error) {
		contracts, err := s.store.ListContracts(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing contracts: %w", err)
		}

		result := derived.ComputeFilteredContracts(contracts, q.Filter, now)
		return derived.SortContractsBy(result, q.Sort), nil
	})
}

func (s *SimpleViewService) Rows(ctx context.Context, q RowViewQuery) ([]domain.DynamicTableRow, error) {
	table, err := s.store.GetTable(ctx, q.TableID)
	if err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	key := s.key(s.clock(), "rows",
		[]domain.Collection{domain.CollectionTables, domain.CollectionRows},
		table.ID.String(), string(q.Filter), sortKey(q.Sort))

	return cachedView(ctx, s.cache, key, func() ([]domain.DynamicTableRow, error) {
		rows, err := s.store.ListRows(ctx, table.ID)
		if err != nil {
			return nil, fmt.Errorf("listing rows: %w", err)
		}

		result := derived.ComputeFilteredDynamicRows(rows, q.Filter)
		return derived.SortRows(result, q.Sort, table), nil
	})
}

func (s *SimpleViewService) key(now time.Time, view string, sources []domain.Collection, parts ...string) string {
	var b strings.Builder
	b.WriteString("view:")
	b.WriteString(view)
	for _, c := range sources {
		fmt.Fprintf(&b, ":%d", s.store.Revision(c))
	}
	b.WriteString(":")
	b.WriteString(now.Format(utils.DateLayout))
	for _, p := range parts {
		b.WriteString("|")
		b.WriteString(p)
	}
	return b.String()
}

func sortKey(state domain.SortState) string {
	if state.IsZero() {
		return ""
	}
	return state.Key + " " + string(state.Direction)
}

func cachedView[T any](ctx context.Context, c cache.Cache, key string, compute func() ([]T, error)) ([]T, error) {
	value, err := c.GetOrSet(ctx, key, _viewCacheTTL, func() (any, error) {
		result, err := compute()
		if err != nil {
			return nil, err
		}
		data, err := msgpack.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encoding view: %w", err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil, fmt.Errorf("decoding view: unexpected cached type %T", value)
	}

	result := make([]T, 0)
	if err := msgpack.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding view: %w", err)
	}
	return result, nil
}

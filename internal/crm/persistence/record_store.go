package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/persistence/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"
	"brokerage-crm/internal/infra/pubsub"
	"brokerage-crm/internal/infra/sql"
	"brokerage-crm/internal/infra/utils"
)

const (
	_recordTopicPrefix = "records."
	_changeTopicPrefix = "crm_"
	_eventSnapshot     = "snapshot"
)

type collectionTable struct {
	model    func() any
	notFound error
}

var _collections = map[domain.Collection]collectionTable{
	domain.CollectionCustomers:  {model: func() any { return &internal.Customer{} }, notFound: domain.ErrCustomerNotFound},
	domain.CollectionMeetings:   {model: func() any { return &internal.Meeting{} }, notFound: domain.ErrMeetingNotFound},
	domain.CollectionActivities: {model: func() any { return &internal.Activity{} }, notFound: domain.ErrActivityNotFound},
	domain.CollectionContracts:  {model: func() any { return &internal.Contract{} }, notFound: domain.ErrContractNotFound},
	domain.CollectionBuildings:  {model: func() any { return &internal.Building{} }, notFound: domain.ErrBuildingNotFound},
	domain.CollectionTables:     {model: func() any { return &internal.DynamicTable{} }, notFound: domain.ErrTableNotFound},
	domain.CollectionRows:       {model: func() any { return &internal.DynamicTableRow{} }, notFound: domain.ErrRowNotFound},
}

func recordTopic(collection domain.Collection) async.BrokerTopicName {
	return async.BrokerTopicName(_recordTopicPrefix + collection.String())
}

func NewRecordStore(
	orm sql.ORM,
	broker async.InternalBroker,
	publisherFactory pubsub.PublisherFactory,
) (*SimpleRecordStore, error) {
	err := orm.AutoMigrate(
		&internal.Customer{},
		&internal.Meeting{},
		&internal.Activity{},
		&internal.Contract{},
		&internal.Building{},
		&internal.DynamicTable{},
		&internal.DynamicTableRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	// Revisions start at the boot time so cache keys never repeat across restarts.
	seed := uint64(time.Now().UnixNano())
	revisions := make(map[domain.Collection]*atomic.Uint64, len(_collections))
	publishers := make(map[domain.Collection]pubsub.Publisher, len(_collections))
	for _, collection := range domain.Collections() {
		revision := &atomic.Uint64{}
		revision.Store(seed)
		revisions[collection] = revision

		publisher, err := publisherFactory.New(pubsub.Topic(_changeTopicPrefix+collection.String()), &ChangeEvent{})
		if err != nil {
			return nil, fmt.Errorf("creating %s publisher: %w", collection, err)
		}
		publishers[collection] = publisher
	}

	return &SimpleRecordStore{
		orm:        orm,
		broker:     broker,
		publishers: publishers,
		revisions:  revisions,
	}, nil
}

var _ usecases.RecordStore = (*SimpleRecordStore)(nil)

// SimpleRecordStore keeps the collections in the database. Writes are
// serialized: each one bumps the collection revision, fans the new
// snapshot out on the in-process broker and emits a ChangeEvent.
type SimpleRecordStore struct {
	mu         sync.Mutex
	orm        sql.ORM
	broker     async.InternalBroker
	publishers map[domain.Collection]pubsub.Publisher
	revisions  map[domain.Collection]*atomic.Uint64
}

func (s *SimpleRecordStore) Revision(collection domain.Collection) uint64 {
	revision, ok := s.revisions[collection]
	if !ok {
		return 0
	}
	return revision.Load()
}

// Subscribe delivers the current snapshot first and then the latest one
// after every change. A slow reader only ever sees the newest snapshot.
func (s *SimpleRecordStore) Subscribe(ctx context.Context, collection domain.Collection) (*usecases.Stream, error) {
	if !collection.Valid() {
		return nil, domain.ErrUnknownCollection
	}

	s.mu.Lock()
	subscription, err := s.broker.Subscribe(recordTopic(collection))
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("subscribing to %s: %w", collection, err)
	}
	initial, err := s.snapshot(ctx, collection, s.Revision(collection))
	s.mu.Unlock()
	if err != nil {
		_ = s.broker.Unsubscribe(recordTopic(collection), subscription)
		return nil, fmt.Errorf("loading %s snapshot: %w", collection, err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	out := make(chan usecases.Snapshot)

	go func() {
		defer close(out)
		defer func() {
			if err := s.broker.Unsubscribe(recordTopic(collection), subscription); err != nil {
				slog.Debug("unsubscribing record stream",
					slog.String("collection", collection.String()),
					slog.String("error", err.Error()))
			}
		}()

		pending, hasPending := initial, true
		for {
			var send chan<- usecases.Snapshot
			if hasPending {
				send = out
			}

			select {
			case <-streamCtx.Done():
				return
			case send <- pending:
				hasPending = false
			case msg, ok := <-subscription.Receiver:
				if !ok {
					return
				}
				snapshot, ok := msg.Value.(usecases.Snapshot)
				if !ok || snapshot.Revision <= pending.Revision {
					continue
				}
				pending, hasPending = snapshot, true
			}
		}
	}()

	return usecases.NewStream(out, cancel), nil
}

func (s *SimpleRecordStore) snapshot(ctx context.Context, collection domain.Collection, revision uint64) (usecases.Snapshot, error) {
	var (
		records any
		err     error
	)

	switch collection {
	case domain.CollectionCustomers:
		records, err = s.ListCustomers(ctx)
	case domain.CollectionMeetings:
		records, err = s.ListMeetings(ctx)
	case domain.CollectionActivities:
		records, err = s.ListActivities(ctx)
	case domain.CollectionContracts:
		records, err = s.ListContracts(ctx)
	case domain.CollectionBuildings:
		records, err = s.ListBuildings(ctx)
	case domain.CollectionTables:
		records, err = s.ListTables(ctx)
	case domain.CollectionRows:
		records, err = s.ListRows(ctx, "")
	default:
		return usecases.Snapshot{}, domain.ErrUnknownCollection
	}
	if err != nil {
		return usecases.Snapshot{}, err
	}

	return usecases.Snapshot{
		Collection: collection,
		Revision:   revision,
		Records:    records,
	}, nil
}

// Refresh reloads collection and hands the snapshot to local subscribers
// without emitting a change event. It is used for writes made elsewhere.
func (s *SimpleRecordStore) Refresh(ctx context.Context, collection domain.Collection) error {
	if _, ok := s.revisions[collection]; !ok {
		return domain.ErrUnknownCollection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notify(ctx, collection)
}

// notify must be called with s.mu held.
func (s *SimpleRecordStore) notify(ctx context.Context, collection domain.Collection) error {
	revision := s.revisions[collection].Add(1)

	snapshot, err := s.snapshot(ctx, collection, revision)
	if err != nil {
		return fmt.Errorf("loading %s snapshot: %w", collection, err)
	}

	err = s.broker.Publish(ctx, recordTopic(collection), async.BrokerMessage{
		Event: _eventSnapshot,
		Value: snapshot,
	})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Error("publishing snapshot",
			slog.String("collection", collection.String()),
			slog.String("error", err.Error()))
	}

	return nil
}

// changed must be called with s.mu held.
func (s *SimpleRecordStore) changed(ctx context.Context, collection domain.Collection, operation Operation, id domain.ID, record any) error {
	if err := s.notify(ctx, collection); err != nil {
		return err
	}

	event, err := newChangeEvent(ctx, collection, operation, id, record)
	if err != nil {
		return fmt.Errorf("building change event: %w", err)
	}

	slog.Debug("publishing change event",
		slog.String("collection", collection.String()),
		slog.String("operation", string(operation)),
		slog.String("record_id", id.String()))
	if err := s.publishers[collection].Publish(ctx, pubsub.Key(id), event); err != nil {
		return fmt.Errorf("publishing change event: %w", err)
	}

	return nil
}

func (s *SimpleRecordStore) save(ctx context.Context, collection domain.Collection, id domain.ID, entity any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orm.WithContext(ctx).Save(entity).Error(); err != nil {
		return fmt.Errorf("saving %s in database: %w", collection, err)
	}

	return s.changed(ctx, collection, OperationUpsert, id, entity)
}

// advance sets column to "to" only on a row that still holds "from", so a
// concurrent write to the record wins over a correction computed before it.
func (s *SimpleRecordStore) advance(ctx context.Context, collection domain.Collection, id domain.ID, column, from, to string) (bool, error) {
	table := _collections[collection]

	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.orm.WithContext(ctx).
		Model(table.model()).
		Where("id = ? AND "+column+" = ?", id.String(), from).
		Updates(map[string]any{
			column:       to,
			"updated_at": utils.Time{Time: time.Now()},
			"version":    sql.Increment("version"),
		})
	if err := result.Error(); err != nil {
		return false, fmt.Errorf("updating %s %s: %w", collection, column, err)
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}

	entity := table.model()
	if err := s.orm.WithContext(ctx).First(entity, "id = ?", id.String()).Error(); err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return true, s.changed(ctx, collection, OperationUpsert, id, entity)
}

func (s *SimpleRecordStore) Remove(ctx context.Context, collection domain.Collection, id domain.ID) error {
	table, ok := _collections[collection]
	if !ok {
		return domain.ErrUnknownCollection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.orm.WithContext(ctx).First(table.model(), "id = ?", id.String()).Error()
	if errors.Is(err, sql.ErrRecordNotFound) {
		return table.notFound
	}
	if err != nil {
		return fmt.Errorf("database query: %w", err)
	}

	if err := s.orm.WithContext(ctx).Delete(table.model(), "id = ?", id.String()).Error(); err != nil {
		return fmt.Errorf("deleting from %s: %w", collection, err)
	}

	return s.changed(ctx, collection, OperationRemove, id, nil)
}

type domainModel[D any] interface {
	ToDomain() D
}

func first[M domainModel[D], D any](ctx context.Context, orm sql.ORM, id domain.ID, notFound error) (D, error) {
	var entity M
	err := orm.WithContext(ctx).First(&entity, "id = ?", id.String()).Error()
	if errors.Is(err, sql.ErrRecordNotFound) {
		var zero D
		return zero, notFound
	}
	if err != nil {
		var zero D
		return zero, fmt.Errorf("database query: %w", err)
	}
	return entity.ToDomain(), nil
}

func find[M domainModel[D], D any](query sql.ORM) ([]D, error) {
	var entities []M
	if err := query.Order("created_at, id").Find(&entities).Error(); err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]D, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, nil
}

func (s *SimpleRecordStore) UpsertCustomer(ctx context.Context, customer domain.Customer) error {
	entity := internal.FromCustomer(customer)
	return s.save(ctx, domain.CollectionCustomers, customer.ID, &entity)
}

func (s *SimpleRecordStore) AdvanceCustomerStatus(ctx context.Context, id domain.ID, from, to domain.CustomerStatus) (bool, error) {
	return s.advance(ctx, domain.CollectionCustomers, id, "status", from.String(), to.String())
}

func (s *SimpleRecordStore) GetCustomer(ctx context.Context, id domain.ID) (domain.Customer, error) {
	return first[internal.Customer, domain.Customer](ctx, s.orm, id, domain.ErrCustomerNotFound)
}

func (s *SimpleRecordStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return find[internal.Customer, domain.Customer](s.orm.WithContext(ctx))
}

func (s *SimpleRecordStore) UpsertMeeting(ctx context.Context, meeting domain.Meeting) error {
	entity := internal.FromMeeting(meeting)
	return s.save(ctx, domain.CollectionMeetings, meeting.ID, &entity)
}

func (s *SimpleRecordStore) GetMeeting(ctx context.Context, id domain.ID) (domain.Meeting, error) {
	return first[internal.Meeting, domain.Meeting](ctx, s.orm, id, domain.ErrMeetingNotFound)
}

func (s *SimpleRecordStore) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	return find[internal.Meeting, domain.Meeting](s.orm.WithContext(ctx))
}

func (s *SimpleRecordStore) UpsertActivity(ctx context.Context, activity domain.Activity) error {
	entity := internal.FromActivity(activity)
	return s.save(ctx, domain.CollectionActivities, activity.ID, &entity)
}

func (s *SimpleRecordStore) GetActivity(ctx context.Context, id domain.ID) (domain.Activity, error) {
	return first[internal.Activity, domain.Activity](ctx, s.orm, id, domain.ErrActivityNotFound)
}

func (s *SimpleRecordStore) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return find[internal.Activity, domain.Activity](s.orm.WithContext(ctx))
}

func (s *SimpleRecordStore) UpsertContract(ctx context.Context, contract domain.Contract) error {
	entity := internal.FromContract(contract)
	return s.save(ctx, domain.CollectionContracts, contract.ID, &entity)
}

func (s *SimpleRecordStore) AdvanceContractStatus(ctx context.Context, id domain.ID, from, to domain.ContractStatus) (bool, error) {
	return s.advance(ctx, domain.CollectionContracts, id, "progress_status", from.String(), to.String())
}

func (s *SimpleRecordStore) GetContract(ctx context.Context, id domain.ID) (domain.Contract, error) {
	return first[internal.Contract, domain.Contract](ctx, s.orm, id, domain.ErrContractNotFound)
}

func (s *SimpleRecordStore) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return find[internal.Contract, domain.Contract](s.orm.WithContext(ctx))
}

func (s *SimpleRecordStore) UpsertBuilding(ctx context.Context, building domain.Building) error {
	entity := internal.FromBuilding(building)
	return s.save(ctx, domain.CollectionBuildings, building.ID, &entity)
}

func (s *SimpleRecordStore) GetBuilding(ctx context.Context, id domain.ID) (domain.Building, error) {
	return first[internal.Building, domain.Building](ctx, s.orm, id, domain.ErrBuildingNotFound)
}

func (s *SimpleRecordStore) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	return find[internal.Building, domain.Building](s.orm.WithContext(ctx))
}

func (s *SimpleRecordStore) UpsertTable(ctx context.Context, table domain.DynamicTable) error {
	entity := internal.FromDynamicTable(table)
	return s.save(ctx, domain.CollectionTables, table.ID, &entity)
}

func (s *SimpleRecordStore) GetTable(ctx context.Context, id domain.ID) (domain.DynamicTable, error) {
	return first[internal.DynamicTable, domain.DynamicTable](ctx, s.orm, id, domain.ErrTableNotFound)
}

func (s *SimpleRecordStore) ListTables(ctx context.Context) ([]domain.DynamicTable, error) {
	return find[internal.DynamicTable, domain.DynamicTable](s.orm.WithContext(ctx))
}

func (s *SimpleRecordStore) UpsertRow(ctx context.Context, row domain.DynamicTableRow) error {
	entity := internal.FromDynamicTableRow(row)
	return s.save(ctx, domain.CollectionRows, row.ID, &entity)
}

func (s *SimpleRecordStore) GetRow(ctx context.Context, id domain.ID) (domain.DynamicTableRow, error) {
	return first[internal.DynamicTableRow, domain.DynamicTableRow](ctx, s.orm, id, domain.ErrRowNotFound)
}

func (s *SimpleRecordStore) ListRows(ctx context.Context, tableID domain.ID) ([]domain.DynamicTableRow, error) {
	query := s.orm.WithContext(ctx)
	if tableID != "" {
		query = query.Where("table_id = ?", tableID.String())
	}
	return find[internal.DynamicTableRow, domain.DynamicTableRow](query)
}

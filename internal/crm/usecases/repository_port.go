package usecases

import (
	"context"
	"sync"

	"brokerage-crm/internal/crm/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/crm/usecases/repository_port_mock.go -package=usecases -mock_names=RecordStore=MockRecordStore

// RecordStore holds the authoritative collections. Every successful upsert
// or remove bumps the collection revision and notifies its subscribers with
// the whole collection.
type RecordStore interface {
	Subscribe(ctx context.Context, collection domain.Collection) (*Stream, error)
	Revision(collection domain.Collection) uint64
	Remove(ctx context.Context, collection domain.Collection, id domain.ID) error

	UpsertCustomer(ctx context.Context, customer domain.Customer) error
	// AdvanceCustomerStatus writes status "to" only while the customer is
	// still at "from". It reports false when the record moved on meanwhile.
	AdvanceCustomerStatus(ctx context.Context, id domain.ID, from, to domain.CustomerStatus) (bool, error)
	GetCustomer(ctx context.Context, id domain.ID) (domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	UpsertMeeting(ctx context.Context, meeting domain.Meeting) error
	GetMeeting(ctx context.Context, id domain.ID) (domain.Meeting, error)
	ListMeetings(ctx context.Context) ([]domain.Meeting, error)

	UpsertActivity(ctx context.Context, activity domain.Activity) error
	GetActivity(ctx context.Context, id domain.ID) (domain.Activity, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)

	UpsertContract(ctx context.Context, contract domain.Contract) error
	AdvanceContractStatus(ctx context.Context, id domain.ID, from, to domain.ContractStatus) (bool, error)
	GetContract(ctx context.Context, id domain.ID) (domain.Contract, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)

	UpsertBuilding(ctx context.Context, building domain.Building) error
	GetBuilding(ctx context.Context, id domain.ID) (domain.Building, error)
	ListBuildings(ctx context.Context) ([]domain.Building, error)

	UpsertTable(ctx context.Context, table domain.DynamicTable) error
	GetTable(ctx context.Context, id domain.ID) (domain.DynamicTable, error)
	ListTables(ctx context.Context) ([]domain.DynamicTable, error)

	// ListRows returns the rows of one table, or every row when tableID is empty.
	UpsertRow(ctx context.Context, row domain.DynamicTableRow) error
	GetRow(ctx context.Context, id domain.ID) (domain.DynamicTableRow, error)
	ListRows(ctx context.Context, tableID domain.ID) ([]domain.DynamicTableRow, error)
}

// Snapshot is the full content of a collection at a revision. Records holds
// the typed slice of the collection, e.g. []domain.Customer.
type Snapshot struct {
	Collection domain.Collection
	Revision   uint64
	Records    any
}

func (s Snapshot) Customers() []domain.Customer {
	records, _ := s.Records.([]domain.Customer)
	return records
}

func (s Snapshot) Meetings() []domain.Meeting {
	records, _ := s.Records.([]domain.Meeting)
	return records
}

func (s Snapshot) Contracts() []domain.Contract {
	records, _ := s.Records.([]domain.Contract)
	return records
}

func (s Snapshot) Rows() []domain.DynamicTableRow {
	records, _ := s.Records.([]domain.DynamicTableRow)
	return records
}

// Stream is a cancellable subscription to one collection. The channel is
// closed after Close or when the subscribing context ends.
type Stream struct {
	snapshots <-chan Snapshot
	once      sync.Once
	cancel    func()
}

func NewStream(snapshots <-chan Snapshot, cancel func()) *Stream {
	return &Stream{
		snapshots: snapshots,
		cancel:    cancel,
	}
}

func (s *Stream) Snapshots() <-chan Snapshot {
	return s.snapshots
}

func (s *Stream) Close() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

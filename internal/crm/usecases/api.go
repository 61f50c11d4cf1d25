package usecases

import (
	"context"

	"brokerage-crm/internal/crm/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/crm/usecases/api_mock.go -package=usecases

type CustomerService interface {
	Create(context.Context, domain.Customer) error
	Get(context.Context, domain.ID) (domain.Customer, error)
	All(context.Context) ([]domain.Customer, error)
	Update(context.Context, domain.Customer) (domain.Customer, error)
	Delete(context.Context, domain.ID) error
}

type MeetingService interface {
	Create(context.Context, domain.Meeting) error
	FindAll(ctx context.Context, customerID domain.ID) ([]domain.Meeting, error)
	Update(context.Context, domain.Meeting) (domain.Meeting, error)
	Delete(context.Context, domain.ID) error
}

type ActivityService interface {
	Create(context.Context, domain.Activity) error
	FindAll(ctx context.Context, customerID domain.ID) ([]domain.Activity, error)
	Update(context.Context, domain.Activity) (domain.Activity, error)
	AddFollowUp(context.Context, domain.ID, domain.FollowUp) (domain.Activity, error)
	Delete(context.Context, domain.ID) error
}

type ContractService interface {
	Create(context.Context, domain.Contract) error
	Get(context.Context, domain.ID) (domain.Contract, error)
	All(context.Context) ([]domain.Contract, error)
	Update(context.Context, domain.Contract) (domain.Contract, error)
	Delete(context.Context, domain.ID) error
}

type BuildingService interface {
	Create(context.Context, domain.Building) error
	All(context.Context) ([]domain.Building, error)
	Update(context.Context, domain.Building) (domain.Building, error)
	Delete(context.Context, domain.ID) error
}

type TableService interface {
	Create(context.Context, domain.DynamicTable) error
	Get(context.Context, domain.ID) (domain.DynamicTable, error)
	All(context.Context) ([]domain.DynamicTable, error)
	Update(context.Context, domain.DynamicTable) (domain.DynamicTable, error)
	Delete(context.Context, domain.ID) error

	CreateRow(ctx context.Context, tableID domain.ID, fields map[string]any) (domain.DynamicTableRow, error)
	Rows(ctx context.Context, tableID domain.ID) ([]domain.DynamicTableRow, error)
	UpdateRow(ctx context.Context, tableID, rowID domain.ID, fields map[string]any) (domain.DynamicTableRow, error)
	DeleteRow(ctx context.Context, tableID, rowID domain.ID) error
}

type CustomerViewQuery struct {
	Filter   domain.CustomerFilter
	Progress string
	Sort     domain.SortState
}

type ContractViewQuery struct {
	Filter domain.ContractFilter
	Sort   domain.SortState
}

type RowViewQuery struct {
	TableID domain.ID
	Filter  domain.RowFilter
	Sort    domain.SortState
}

type ViewService interface {
	Customers(context.Context, CustomerViewQuery) ([]domain.Customer, error)
	Contracts(context.Context, ContractViewQuery) ([]domain.Contract, error)
	Rows(context.Context, RowViewQuery) ([]domain.DynamicTableRow, error)
}

type ReconciliationService interface {
	Reconcile(context.Context) (domain.StatusUpdates, error)
}

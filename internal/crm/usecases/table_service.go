package usecases

import (
	"context"
	"fmt"

	"brokerage-crm/internal/crm/domain"
)

func NewTableService(store RecordStore, clock Clock) *SimpleTableService {
	return &SimpleTableService{
		store: store,
		clock: clock,
	}
}

var _ TableService = (*SimpleTableService)(nil)

type SimpleTableService struct {
	store RecordStore
	clock Clock
}

func (s *SimpleTableService) Create(ctx context.Context, table domain.DynamicTable) error {
	if err := s.store.UpsertTable(ctx, table); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}
	return nil
}

func (s *SimpleTableService) Get(ctx context.Context, id domain.ID) (domain.DynamicTable, error) {
	table, err := s.store.GetTable(ctx, id)
	if err != nil {
		return domain.DynamicTable{}, fmt.Errorf("getting table: %w", err)
	}
	return table, nil
}

func (s *SimpleTableService) All(ctx context.Context) ([]domain.DynamicTable, error) {
	tables, err := s.store.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return tables, nil
}

// Update replaces the name and columns. Existing rows are left as they
// are; required flags only apply to rows written afterwards.
func (s *SimpleTableService) Update(ctx context.Context, update domain.DynamicTable) (domain.DynamicTable, error) {
	table, err := s.store.GetTable(ctx, update.ID)
	if err != nil {
		return domain.DynamicTable{}, fmt.Errorf("getting table: %w", err)
	}

	if err := table.Update(update); err != nil {
		return domain.DynamicTable{}, fmt.Errorf("updating table columns: %w", err)
	}

	if err := s.store.UpsertTable(ctx, table); err != nil {
		return domain.DynamicTable{}, fmt.Errorf("updating table: %w", err)
	}
	return table, nil
}

func (s *SimpleTableService) Delete(ctx context.Context, id domain.ID) error {
	rows, err := s.store.ListRows(ctx, id)
	if err != nil {
		return fmt.Errorf("listing table rows: %w", err)
	}
	for _, row := range rows {
		if err := s.store.Remove(ctx, domain.CollectionRows, row.ID); err != nil {
			return fmt.Errorf("removing row %s: %w", row.ID, err)
		}
	}

	if err := s.store.Remove(ctx, domain.CollectionTables, id); err != nil {
		return fmt.Errorf("removing table: %w", err)
	}
	return nil
}

func (s *SimpleTableService) CreateRow(ctx context.Context, tableID domain.ID, fields map[string]any) (domain.DynamicTableRow, error) {
	table, err := s.store.GetTable(ctx, tableID)
	if err != nil {
		return domain.DynamicTableRow{}, fmt.Errorf("getting table: %w", err)
	}

	prepared, err := table.PrepareRow(fields, s.clock())
	if err != nil {
		return domain.DynamicTableRow{}, err
	}

	row, err := domain.NewDynamicTableRowBuilder().
		WithTableID(table.ID).
		WithFields(prepared).
		Build()
	if err != nil {
		return domain.DynamicTableRow{}, fmt.Errorf("building row: %w", err)
	}

	if err := s.store.UpsertRow(ctx, row); err != nil {
		return domain.DynamicTableRow{}, fmt.Errorf("creating row: %w", err)
	}
	return row, nil
}

func (s *SimpleTableService) Rows(ctx context.Context, tableID domain.ID) ([]domain.DynamicTableRow, error) {
	if _, err := s.store.GetTable(ctx, tableID); err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	rows, err := s.store.ListRows(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}
	return rows, nil
}

func (s *SimpleTableService) UpdateRow(ctx context.Context, tableID, rowID domain.ID, fields map[string]any) (domain.DynamicTableRow, error) {
	table, err := s.store.GetTable(ctx, tableID)
	if err != nil {
		return domain.DynamicTableRow{}, fmt.Errorf("getting table: %w", err)
	}

	row, err := s.store.GetRow(ctx, rowID)
	if err != nil {
		return domain.DynamicTableRow{}, fmt.Errorf("getting row: %w", err)
	}
	if row.TableID != table.ID {
		return domain.DynamicTableRow{}, fmt.Errorf("getting row: %w", domain.ErrRowNotFound)
	}

	prepared, err := table.PrepareRow(fields, s.clock())
	if err != nil {
		return domain.DynamicTableRow{}, err
	}
	row.Fields = prepared

	if err := s.store.UpsertRow(ctx, row); err != nil {
		return domain.DynamicTableRow{}, fmt.Errorf("updating row: %w", err)
	}
	return row, nil
}

func (s *SimpleTableService) DeleteRow(ctx context.Context, tableID, rowID domain.ID) error {
	row, err := s.store.GetRow(ctx, rowID)
	if err != nil {
		return fmt.Errorf("getting row: %w", err)
	}
	if row.TableID != tableID {
		return fmt.Errorf("getting row: %w", domain.ErrRowNotFound)
	}

	if err := s.store.Remove(ctx, domain.CollectionRows, rowID); err != nil {
		return fmt.Errorf("removing row: %w", err)
	}
	return nil
}

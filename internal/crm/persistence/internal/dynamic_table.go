package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type DynamicTable struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Version   int        `json:"version"`
	Name      string     `json:"name" gorm:"not null"`
	Columns   Columns    `json:"columns"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (DynamicTable) TableName() string {
	return "dynamic_tables"
}

func (t DynamicTable) ToDomain() domain.DynamicTable {
	columns := make([]domain.Column, len(t.Columns))
	for i, c := range t.Columns {
		columns[i] = domain.Column{
			Name:     c.Name,
			Label:    c.Label,
			Type:     domain.ColumnType(c.Type),
			Required: c.Required,
			Display:  c.Display,
			Role:     domain.ColumnRole(c.Role),
		}
	}

	return domain.DynamicTable{
		ID:        domain.ID(t.ID),
		Version:   domain.Version(t.Version),
		Name:      t.Name,
		Columns:   columns,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromDynamicTable(value domain.DynamicTable) DynamicTable {
	columns := make(Columns, len(value.Columns))
	for i, c := range value.Columns {
		columns[i] = Column{
			Name:     c.Name,
			Label:    c.Label,
			Type:     string(c.Type),
			Required: c.Required,
			Display:  c.Display,
			Role:     string(c.Role),
		}
	}

	return DynamicTable{
		ID:        value.ID.String(),
		Version:   int(value.Version),
		Name:      value.Name,
		Columns:   columns,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}
}

type DynamicTableRow struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	TableID   string     `json:"table_id" gorm:"index;not null"`
	Fields    Fields     `json:"fields"`
	CreatedAt utils.Time `json:"created_at"`
}

func (DynamicTableRow) TableName() string {
	return "dynamic_table_rows"
}

func (r DynamicTableRow) ToDomain() domain.DynamicTableRow {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}

	return domain.DynamicTableRow{
		ID:        domain.ID(r.ID),
		TableID:   domain.ID(r.TableID),
		Fields:    fields,
		CreatedAt: r.CreatedAt,
	}
}

func FromDynamicTableRow(value domain.DynamicTableRow) DynamicTableRow {
	return DynamicTableRow{
		ID:        value.ID.String(),
		TableID:   value.TableID.String(),
		Fields:    Fields(value.Fields),
		CreatedAt: value.CreatedAt,
	}
}

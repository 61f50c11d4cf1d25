package internal

import (
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

type ColumnPayload struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Display  bool   `json:"display"`
	Role     string `json:"role"`
}

type TableRequest struct {
	Name    string          `json:"name"`
	Columns []ColumnPayload `json:"columns"`
}

func (r TableRequest) ToColumns() []domain.Column {
	columns := make([]domain.Column, len(r.Columns))
	for i, c := range r.Columns {
		columns[i] = domain.Column{
			Name:     c.Name,
			Label:    c.Label,
			Type:     domain.ColumnType(c.Type),
			Required: c.Required,
			Display:  c.Display,
			Role:     domain.ColumnRole(c.Role),
		}
	}
	return columns
}

type TableResponse struct {
	ID        string          `json:"id"`
	Version   int             `json:"version"`
	Name      string          `json:"name"`
	Columns   []ColumnPayload `json:"columns"`
	CreatedAt utils.Time      `json:"created_at"`
	UpdatedAt utils.Time      `json:"updated_at"`
}

func ToTableResponse(table domain.DynamicTable) TableResponse {
	columns := make([]ColumnPayload, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = ColumnPayload{
			Name:     c.Name,
			Label:    c.Label,
			Type:     string(c.Type),
			Required: c.Required,
			Display:  c.Display,
			Role:     string(c.Role),
		}
	}

	return TableResponse{
		ID:        table.ID.String(),
		Version:   int(table.Version),
		Name:      table.Name,
		Columns:   columns,
		CreatedAt: table.CreatedAt,
		UpdatedAt: table.UpdatedAt,
	}
}

type RowRequest struct {
	Fields map[string]any `json:"fields"`
}

type RowResponse struct {
	ID        string         `json:"id" msgpack:"id"`
	TableID   string         `json:"table_id" msgpack:"table_id"`
	Fields    map[string]any `json:"fields" msgpack:"fields"`
	CreatedAt utils.Time     `json:"created_at" msgpack:"created_at"`
}

func ToRowResponse(row domain.DynamicTableRow) RowResponse {
	return RowResponse{
		ID:        row.ID.String(),
		TableID:   row.TableID.String(),
		Fields:    row.Fields,
		CreatedAt: row.CreatedAt,
	}
}

func ToRowResponses(rows []domain.DynamicTableRow) []RowResponse {
	responses := make([]RowResponse, len(rows))
	for i, row := range rows {
		responses[i] = ToRowResponse(row)
	}
	return responses
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"brokerage-crm/internal/infra/utils"
)

type ColumnType string

const (
	ColumnTypeText   ColumnType = "text"
	ColumnTypeNumber ColumnType = "number"
	ColumnTypeDate   ColumnType = "date"
)

func (t ColumnType) Valid() bool {
	switch t {
	case ColumnTypeText, ColumnTypeNumber, ColumnTypeDate:
		return true
	}
	return false
}

// ColumnRole tells the row factory which values it fills in on its own.
type ColumnRole string

const (
	ColumnRolePlain         ColumnRole = "plain"
	ColumnRoleAutoDate      ColumnRole = "autoDate"
	ColumnRoleAutoTimestamp ColumnRole = "autoTimestamp"
)

func (r ColumnRole) Valid() bool {
	switch r {
	case ColumnRolePlain, ColumnRoleAutoDate, ColumnRoleAutoTimestamp:
		return true
	}
	return false
}

// CategoryField is the row field the category filters look at.
const CategoryField = "category"

type Column struct {
	Name     string
	Label    string
	Type     ColumnType
	Required bool
	Display  bool
	Role     ColumnRole
}

type DynamicTable struct {
	ID        ID
	Version   Version
	Name      string
	Columns   []Column
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

func (t DynamicTable) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnTypes maps every column name to its declared type.
func (t DynamicTable) ColumnTypes() map[string]ColumnType {
	types := make(map[string]ColumnType, len(t.Columns))
	for _, c := range t.Columns {
		types[c.Name] = c.Type
	}
	return types
}

func (t *DynamicTable) Update(other DynamicTable) error {
	columns, err := normalizeColumns(other.Columns)
	if err != nil {
		return err
	}
	if name := strings.TrimSpace(other.Name); name != "" {
		t.Name = name
	}
	t.Columns = columns
	t.Version++
	t.UpdatedAt = utils.Time{Time: time.Now()}
	return nil
}

// PrepareRow fills role-driven values that are missing and checks the
// required flags. The input map is not modified.
func (t DynamicTable) PrepareRow(fields map[string]any, now time.Time) (map[string]any, error) {
	result := make(map[string]any, len(fields)+len(t.Columns))
	for k, v := range fields {
		result[k] = v
	}

	for _, c := range t.Columns {
		if !IsBlank(result[c.Name]) {
			continue
		}
		switch c.Role {
		case ColumnRoleAutoDate:
			result[c.Name] = now.Format(utils.DateLayout)
		case ColumnRoleAutoTimestamp:
			result[c.Name] = now.Format(time.RFC3339)
		}
	}

	for _, c := range t.Columns {
		if c.Required && IsBlank(result[c.Name]) {
			return nil, fmt.Errorf("%w: %s", ErrRequiredFieldMissing, c.Name)
		}
	}

	return result, nil
}

// IsBlank reports whether a field value is absent for entry purposes.
func IsBlank(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case *string:
		return value == nil || strings.TrimSpace(*value) == ""
	}
	return false
}

type DynamicTableRow struct {
	ID        ID
	TableID   ID
	Fields    map[string]any
	CreatedAt utils.Time
}

func (r DynamicTableRow) Field(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Category returns the string form of the category field. The second
// value is false when the field is absent, nil or blank.
func (r DynamicTableRow) Category() (string, bool) {
	v, ok := r.Fields[CategoryField]
	if !ok || IsBlank(v) {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

func normalizeColumns(columns []Column) ([]Column, error) {
	seen := make(map[string]struct{}, len(columns))
	result := make([]Column, 0, len(columns))
	for _, c := range columns {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrInvalidColumn)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = struct{}{}

		if c.Type == "" {
			c.Type = ColumnTypeText
		}
		if !c.Type.Valid() {
			return nil, fmt.Errorf("%w: %s has type %q", ErrInvalidColumn, c.Name, c.Type)
		}
		if c.Role == "" {
			c.Role = ColumnRolePlain
		}
		if !c.Role.Valid() {
			return nil, fmt.Errorf("%w: %s has role %q", ErrInvalidColumn, c.Name, c.Role)
		}
		if c.Role == ColumnRoleAutoDate && c.Type == ColumnTypeNumber {
			return nil, fmt.Errorf("%w: %s cannot auto-fill a date into a number column", ErrInvalidColumn, c.Name)
		}
		if c.Label == "" {
			c.Label = c.Name
		}
		result = append(result, c)
	}
	return result, nil
}

func NewDynamicTableBuilder() *dynamicTableBuilder {
	return &dynamicTableBuilder{}
}

type dynamicTableHandler func(t *DynamicTable) error

type dynamicTableBuilder struct {
	actions []dynamicTableHandler
}

func (b *dynamicTableBuilder) WithID(id ID) *dynamicTableBuilder {
	b.actions = append(b.actions, func(t *DynamicTable) error {
		t.ID = id
		return nil
	})
	return b
}

func (b *dynamicTableBuilder) WithName(name string) *dynamicTableBuilder {
	b.actions = append(b.actions, func(t *DynamicTable) error {
		t.Name = strings.TrimSpace(name)
		return nil
	})
	return b
}

func (b *dynamicTableBuilder) WithColumns(columns ...Column) *dynamicTableBuilder {
	b.actions = append(b.actions, func(t *DynamicTable) error {
		t.Columns = append(t.Columns, columns...)
		return nil
	})
	return b
}

func (b *dynamicTableBuilder) Build() (DynamicTable, error) {
	now := time.Now()
	result := &DynamicTable{
		ID:        ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: utils.Time{Time: now},
		UpdatedAt: utils.Time{Time: now},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return DynamicTable{}, err
		}
	}

	if result.Name == "" {
		return DynamicTable{}, ErrNameRequired
	}

	columns, err := normalizeColumns(result.Columns)
	if err != nil {
		return DynamicTable{}, err
	}
	result.Columns = columns

	return *result, nil
}

func NewDynamicTableRowBuilder() *dynamicTableRowBuilder {
	return &dynamicTableRowBuilder{}
}

type dynamicTableRowHandler func(r *DynamicTableRow) error

type dynamicTableRowBuilder struct {
	actions []dynamicTableRowHandler
}

func (b *dynamicTableRowBuilder) WithID(id ID) *dynamicTableRowBuilder {
	b.actions = append(b.actions, func(r *DynamicTableRow) error {
		r.ID = id
		return nil
	})
	return b
}

func (b *dynamicTableRowBuilder) WithTableID(id ID) *dynamicTableRowBuilder {
	b.actions = append(b.actions, func(r *DynamicTableRow) error {
		r.TableID = id
		return nil
	})
	return b
}

func (b *dynamicTableRowBuilder) WithFields(fields map[string]any) *dynamicTableRowBuilder {
	b.actions = append(b.actions, func(r *DynamicTableRow) error {
		for k, v := range fields {
			r.Fields[k] = v
		}
		return nil
	})
	return b
}

func (b *dynamicTableRowBuilder) Build() (DynamicTableRow, error) {
	result := &DynamicTableRow{
		ID:        ID(utils.GenerateUUID()),
		Fields:    map[string]any{},
		CreatedAt: utils.Time{Time: time.Now()},
	}

	for _, a := range b.actions {
		if err := a(result); err != nil {
			return DynamicTableRow{}, err
		}
	}

	if result.TableID == "" {
		return DynamicTableRow{}, fmt.Errorf("%w: table id", ErrRequiredFieldMissing)
	}

	return *result, nil
}

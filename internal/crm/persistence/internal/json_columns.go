package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"brokerage-crm/internal/infra/utils"
)

// scanJSON decodes a text or blob column into dst. Empty values leave dst
// untouched so callers can default it.
func scanJSON(src any, dst any, column string) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		return nil
	default:
		return errors.New("invalid type for " + column)
	}

	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

type FollowUps []FollowUp

type FollowUp struct {
	Author  string     `json:"author"`
	Content string     `json:"content"`
	Date    utils.Time `json:"date"`
}

func (f FollowUps) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return json.Marshal(f)
}

func (f *FollowUps) Scan(src any) error {
	*f = FollowUps{}
	return scanJSON(src, f, "follow_ups")
}

type Columns []Column

type Column struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Display  bool   `json:"display"`
	Role     string `json:"role"`
}

func (c Columns) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return json.Marshal(c)
}

func (c *Columns) Scan(src any) error {
	*c = Columns{}
	return scanJSON(src, c, "columns")
}

type Fields map[string]any

func (f Fields) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "{}", nil
	}
	return json.Marshal(f)
}

func (f *Fields) Scan(src any) error {
	*f = make(Fields)
	return scanJSON(src, f, "fields")
}

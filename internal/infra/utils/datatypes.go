package utils

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const _jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format(_jsonTimeLayout)
	return []byte(`"` + formatted + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return fmt.Errorf("parsing time %q: %w", str, err)
	}
	t.Time = parsed
	return nil
}

func (Time) GormDataType() string {
	return "time"
}

func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

func (t *Time) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = val
		return nil
	case string:
		return t.parseStored(val)
	case []byte:
		return t.parseStored(string(val))
	default:
		return errors.New("invalid type for time")
	}
}

// sqlite hands back text columns in a handful of layouts depending on how
// the value was written.
func (t *Time) parseStored(value string) error {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", value)
}

func (t Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeTime(t.Time)
}

func (t *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	value, err := dec.DecodeTime()
	if err != nil {
		return err
	}
	t.Time = value
	return nil
}

func NewTime(value time.Time) Time {
	return Time{Time: value}
}

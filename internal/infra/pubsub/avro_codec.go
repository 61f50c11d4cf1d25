package pubsub

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

var _ Codec = (*AvroCodec)(nil)

// AvroCodec encodes structs tagged with `avro:"..."` against a static schema.
type AvroCodec struct {
	prototype any
	schema    avro.Schema
}

func NewAvroCodec(prototype any, schema string) (*AvroCodec, error) {
	parsed, err := avro.Parse(schema)
	if err != nil {
		return nil, fmt.Errorf("parsing avro schema: %w", err)
	}

	return &AvroCodec{
		prototype: prototype,
		schema:    parsed,
	}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	data, err := avro.Marshal(c.schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to avro: %w", err)
	}

	return data, nil
}

func (c *AvroCodec) Decode(data []byte) (any, error) {
	instance := newInstance(c.prototype)
	if err := avro.Unmarshal(c.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from avro: %w", err)
	}

	return instance, nil
}

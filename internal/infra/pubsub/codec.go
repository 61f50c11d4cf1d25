package pubsub

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/lovoo/goka"
)

type Codec = goka.Codec

var _ Codec = &JSONCodec{}

func newJSONCodec(prototype any) *JSONCodec {
	return &JSONCodec{prototype}
}

type JSONCodec struct {
	prototype any
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

func (c *JSONCodec) Decode(data []byte) (any, error) {
	instance := newInstance(c.prototype)
	if err := json.Unmarshal(data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance, nil
}

// newInstance returns a pointer to a new zero value of the prototype type.
func newInstance(prototype any) any {
	pt := reflect.TypeOf(prototype)
	if pt.Kind() == reflect.Ptr {
		pt = pt.Elem()
	}
	return reflect.New(pt).Interface()
}

// NewCodec picks the wire codec for a prototype: Confluent avro when a schema
// registry is configured, plain avro for other schema providers, JSON otherwise.
func NewCodec(prototype any, registry SchemaRegistry) (Codec, error) {
	provider, ok := prototype.(SchemaProvider)
	if !ok {
		return newJSONCodec(prototype), nil
	}

	if registry != nil {
		return NewConfluentAvroCodec(prototype, provider.AvroSchema(), registry)
	}

	return NewAvroCodec(prototype, provider.AvroSchema())
}

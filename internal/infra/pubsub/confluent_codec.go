package pubsub

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"brokerage-crm/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_magicByte          = 0
	_wireHeaderSize     = 5
	_schemaIDCacheTTL   = 5 * time.Minute
	_codecCacheTTL      = 30 * time.Minute
	_valueSubjectSuffix = "-value"
)

// SchemaRegistry is the subset of the Confluent registry client used by the codec.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

var _ SchemaRegistry = (*srclient.SchemaRegistryClient)(nil)

func NewSchemaRegistry(url string) SchemaRegistry {
	if url == "" {
		return nil
	}
	return srclient.CreateSchemaRegistryClient(url)
}

var _ Codec = (*ConfluentAvroCodec)(nil)

// ConfluentAvroCodec writes the Confluent wire format: a zero magic byte, the
// big endian schema id and the avro binary body. Values are converted through
// their JSON form, so JSON tags must match the schema field names.
type ConfluentAvroCodec struct {
	prototype      any
	schema         string
	subject        string
	schemaRegistry SchemaRegistry
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

func NewConfluentAvroCodec(prototype any, schema string, registry SchemaRegistry) (*ConfluentAvroCodec, error) {
	local, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("parsing avro schema: %w", err)
	}

	schemaCache, err := cache.New(&cache.CacheConfig{MaxCost: 1 << 10, NumCounters: 1e4, BufferItems: 64})
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	codecCache, err := cache.New(&cache.CacheConfig{MaxCost: 1 << 10, NumCounters: 1e4, BufferItems: 64})
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	return &ConfluentAvroCodec{
		prototype:      prototype,
		schema:         local.Schema(),
		subject:        subjectFor(local.Schema()),
		schemaRegistry: registry,
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}, nil
}

func subjectFor(schema string) string {
	var named struct {
		Namespace string `json:"namespace"`
		Name      string `json:"name"`
	}
	if err := json.Unmarshal([]byte(schema), &named); err != nil || named.Name == "" {
		return "record" + _valueSubjectSuffix
	}
	if named.Namespace != "" {
		return named.Namespace + "." + named.Name + _valueSubjectSuffix
	}
	return named.Name + _valueSubjectSuffix
}

func (c *ConfluentAvroCodec) schemaID() (int, error) {
	ctx := context.Background()
	id, err := c.schemaCache.GetOrSet(ctx, c.subject, _schemaIDCacheTTL, func() (any, error) {
		registered, err := c.schemaRegistry.GetLatestSchema(c.subject)
		if err == nil && registered != nil && registered.Schema() == c.schema {
			return registered.ID(), nil
		}

		created, err := c.schemaRegistry.CreateSchema(c.subject, c.schema, srclient.Avro)
		if err != nil {
			return nil, fmt.Errorf("registering schema: %w", err)
		}
		return created.ID(), nil
	})
	if err != nil {
		return 0, err
	}

	return id.(int), nil
}

func (c *ConfluentAvroCodec) codecByID(schemaID int) (*goavro.Codec, error) {
	ctx := context.Background()
	codec, err := c.codecCache.GetOrSet(ctx, fmt.Sprintf("schema_%d", schemaID), _codecCacheTTL, func() (any, error) {
		schema, err := c.schemaRegistry.GetSchema(schemaID)
		if err != nil {
			return nil, fmt.Errorf("fetching schema from registry: %w", err)
		}

		codec, err := goavro.NewCodec(schema.Schema())
		if err != nil {
			return nil, fmt.Errorf("creating codec from schema: %w", err)
		}
		return codec, nil
	})
	if err != nil {
		return nil, err
	}

	return codec.(*goavro.Codec), nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	schemaID, err := c.schemaID()
	if err != nil {
		return nil, fmt.Errorf("getting schema id: %w", err)
	}

	codec, err := c.codecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema id: %w", err)
	}

	textual, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling value: %w", err)
	}

	native, _, err := codec.NativeFromTextual(textual)
	if err != nil {
		return nil, fmt.Errorf("converting value to avro: %w", err)
	}

	result := make([]byte, _wireHeaderSize, _wireHeaderSize+len(textual))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_wireHeaderSize], uint32(schemaID))

	result, err = codec.BinaryFromNative(result, native)
	if err != nil {
		return nil, fmt.Errorf("encoding to avro: %w", err)
	}

	return result, nil
}

func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _wireHeaderSize {
		return nil, fmt.Errorf("invalid avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}

	schemaID := int(binary.BigEndian.Uint32(data[1:_wireHeaderSize]))
	codec, err := c.codecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema id: %w", err)
	}

	native, _, err := codec.NativeFromBinary(data[_wireHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decoding avro data: %w", err)
	}

	textual, err := codec.TextualFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("converting avro to json: %w", err)
	}

	instance := newInstance(c.prototype)
	if err := json.Unmarshal(textual, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling value: %w", err)
	}

	return instance, nil
}

package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/node"
	"brokerage-crm/internal/infra/pubsub"
	"brokerage-crm/internal/infra/utils"
)

type Operation string

const (
	OperationUpsert Operation = "upsert"
	OperationRemove Operation = "remove"
)

const _changeEventSchema = `{
	"type": "record",
	"name": "ChangeEvent",
	"namespace": "crm.records",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "collection", "type": "string"},
		{"name": "operation", "type": "string"},
		{"name": "record_id", "type": "string"},
		{"name": "payload", "type": "string"},
		{"name": "occurred_at", "type": "long"},
		{"name": "source_node", "type": "string"},
		{"name": "trace_id", "type": "string"},
		{"name": "span_id", "type": "string"},
		{"name": "trace_flags", "type": "string"}
	]
}`

var (
	_ pubsub.SchemaProvider = (*ChangeEvent)(nil)
	_ pubsub.TraceCarrier   = (*ChangeEvent)(nil)
)

// ChangeEvent is published for every write to a collection. Payload holds
// the stored record as JSON and is empty for removals.
type ChangeEvent struct {
	ID         string `avro:"id" json:"id"`
	Collection string `avro:"collection" json:"collection"`
	Operation  string `avro:"operation" json:"operation"`
	RecordID   string `avro:"record_id" json:"record_id"`
	Payload    string `avro:"payload" json:"payload"`
	OccurredAt int64  `avro:"occurred_at" json:"occurred_at"`
	SourceNode string `avro:"source_node" json:"source_node"`
	TraceID    string `avro:"trace_id" json:"trace_id"`
	SpanID     string `avro:"span_id" json:"span_id"`
	TraceFlags string `avro:"trace_flags" json:"trace_flags"`
}

func (*ChangeEvent) AvroSchema() string {
	return _changeEventSchema
}

func (e *ChangeEvent) TraceHeaders() pubsub.TraceHeaders {
	return pubsub.TraceHeaders{
		TraceID:    e.TraceID,
		SpanID:     e.SpanID,
		TraceFlags: e.TraceFlags,
	}
}

func newChangeEvent(ctx context.Context, collection domain.Collection, operation Operation, id domain.ID, record any) (*ChangeEvent, error) {
	payload := ""
	if record != nil {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("marshaling payload: %w", err)
		}
		payload = string(data)
	}

	headers := pubsub.ExtractTraceFromContext(ctx)

	return &ChangeEvent{
		ID:         utils.GenerateUUID(),
		Collection: collection.String(),
		Operation:  string(operation),
		RecordID:   id.String(),
		Payload:    payload,
		OccurredAt: time.Now().UnixMilli(),
		SourceNode: node.GetNodeInfo().ID,
		TraceID:    headers.TraceID,
		SpanID:     headers.SpanID,
		TraceFlags: headers.TraceFlags,
	}, nil
}

package persistence_test

import (
	"context"

	"brokerage-crm/internal/crm/persistence"
	"brokerage-crm/internal/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel/trace"
)

var _ = ginkgo.Describe("ChangeEvent", func() {
	ginkgo.It("should travel as avro", func() {
		codec, err := pubsub.NewCodec(&persistence.ChangeEvent{}, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(codec).To(gomega.BeAssignableToTypeOf(&pubsub.AvroCodec{}))

		event := &persistence.ChangeEvent{
			ID:         "e-1",
			Collection: "contracts",
			Operation:  string(persistence.OperationUpsert),
			RecordID:   "k-1",
			Payload:    `{"progress_status":"잔금"}`,
			OccurredAt: 1760832000000,
		}
		data, err := codec.Encode(event)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := codec.Decode(data)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(decoded).To(gomega.Equal(event))
	})

	ginkgo.It("should expose its trace context", func() {
		traceID, _ := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
		spanID, _ := trace.SpanIDFromHex("b7ad6b7169203331")
		ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		}))
		headers := pubsub.ExtractTraceFromContext(ctx)

		event := &persistence.ChangeEvent{TraceID: headers.TraceID, SpanID: headers.SpanID, TraceFlags: headers.TraceFlags}
		restored := pubsub.InjectTraceIntoContext(context.Background(), event.TraceHeaders())
		gomega.Expect(trace.SpanContextFromContext(restored).TraceID()).To(gomega.Equal(traceID))
	})
})

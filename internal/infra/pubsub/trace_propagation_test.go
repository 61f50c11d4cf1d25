package pubsub_test

import (
	"context"

	"brokerage-crm/internal/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ = ginkgo.Describe("Trace Propagation", func() {
	var (
		tp   *trace.TracerProvider
		ctx  context.Context
		span oteltrace.Span
	)

	ginkgo.BeforeEach(func() {
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(tracetest.NewSpanRecorder()))
		ctx, span = tp.Tracer("test").Start(context.Background(), "test.span")
	})

	ginkgo.AfterEach(func() {
		span.End()
		tp.Shutdown(context.Background())
	})

	ginkgo.It("should carry the span context through headers", func() {
		headers := pubsub.ExtractTraceFromContext(ctx)
		gomega.Expect(headers.TraceID).To(gomega.Equal(span.SpanContext().TraceID().String()))

		restored := pubsub.InjectTraceIntoContext(context.Background(), headers)
		restoredCtx := oteltrace.SpanContextFromContext(restored)
		gomega.Expect(restoredCtx.TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
		gomega.Expect(restoredCtx.SpanID()).To(gomega.Equal(span.SpanContext().SpanID()))
		gomega.Expect(restoredCtx.IsRemote()).To(gomega.BeTrue())
	})

	ginkgo.It("should return empty headers without a span", func() {
		gomega.Expect(pubsub.ExtractTraceFromContext(context.Background())).To(gomega.Equal(pubsub.TraceHeaders{}))
	})

	ginkgo.It("should ignore invalid headers", func() {
		base := context.Background()
		restored := pubsub.InjectTraceIntoContext(base, pubsub.TraceHeaders{TraceID: "zz", SpanID: "yy"})
		gomega.Expect(restored).To(gomega.Equal(base))
	})
})

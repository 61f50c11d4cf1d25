package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type pingController struct{}

func (pingController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"pong": r.URL.Query().Get("q")})
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add span to request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusAccepted)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			rec := httptest.NewRecorder()
			createTracingMiddleware()(testHandler).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusAccepted))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			gomega.Expect(rec.Header().Get("traceparent")).NotTo(gomega.BeEmpty())
		})

		ginkgo.It("should continue an incoming W3C trace", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				spanCtx := GetSpanFromContext(r).SpanContext()
				gomega.Expect(spanCtx.TraceID().String()).To(gomega.Equal("4bf92f3577b34da6a3ce929d0e0e4736"))
			})

			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
			createTracingMiddleware()(testHandler).ServeHTTP(httptest.NewRecorder(), req)
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a span even when no span is in context", func() {
			req := httptest.NewRequest("GET", "/test", nil)
			gomega.Expect(GetSpanFromContext(req)).NotTo(gomega.BeNil())
		})
	})

	ginkgo.Context("UserHeaderMiddleware", func() {
		ginkgo.It("should process user headers", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("X-User-ID", "broker-7")
			req.Header.Set("X-User-Name", "Kim")
			rec := httptest.NewRecorder()
			createTracingMiddleware()(createUserHeaderMiddleware()(testHandler)).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})
	})

	ginkgo.Context("NewServer", func() {
		ginkgo.It("should route requests to registered controllers", func() {
			server := NewServer(ServerOptions{}, pingController{})

			req := httptest.NewRequest("GET", "/v1/ping?q=hello", nil)
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"pong":"hello"`))
		})

		ginkgo.When("every health check passes", func() {
			ginkgo.It("should reply with success", func() {
				server := NewServer(ServerOptions{
					Version: "1.2.3",
					HealthChecks: map[string]HealthCheck{
						"database": func(context.Context) error { return nil },
					},
				})

				rec := httptest.NewRecorder()
				server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

				var body healthzResponse
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
				gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
				gomega.Expect(body.Status).To(gomega.Equal("success"))
				gomega.Expect(body.Version).To(gomega.Equal("1.2.3"))
				gomega.Expect(body.Checks).To(gomega.HaveKeyWithValue("database", "ok"))
			})
		})

		ginkgo.When("a health check fails", func() {
			ginkgo.It("should reply with service unavailable", func() {
				server := NewServer(ServerOptions{
					HealthChecks: map[string]HealthCheck{
						"database": func(context.Context) error { return errors.New("connection refused") },
					},
				})

				rec := httptest.NewRecorder()
				server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusServiceUnavailable))
				gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("connection refused"))
			})
		})
	})
})

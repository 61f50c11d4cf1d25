package httpserver

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _meterName = "brokerage-crm/httpserver"

var uuidRegex = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// EndpointResolver names the endpoint a request is counted under.
type EndpointResolver func(*http.Request) string

type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

var (
	defaultMetrics     *httpMetrics
	defaultMetricsOnce sync.Once
)

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	duration, err := meter.Float64Histogram(
		"crm_server.http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	total, err := meter.Int64Counter(
		"crm_server.http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	active, err := meter.Int64UpDownCounter(
		"crm_server.http.requests.active",
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating active gauge: %w", err)
	}

	return &httpMetrics{duration: duration, total: total, active: active}, nil
}

// MetricsMiddleware records request metrics on the global meter provider.
// A nil resolve falls back to the request path with ids masked.
func MetricsMiddleware(resolve EndpointResolver) func(http.Handler) http.Handler {
	defaultMetricsOnce.Do(func() {
		m, err := newHTTPMetrics(otel.GetMeterProvider().Meter(_meterName))
		if err != nil {
			panic(err)
		}
		defaultMetrics = m
	})

	return defaultMetrics.middleware(resolve)
}

func (m *httpMetrics) middleware(resolve EndpointResolver) func(http.Handler) http.Handler {
	if resolve == nil {
		resolve = func(r *http.Request) string { return normalizeEndpoint(r.URL.Path) }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			endpoint := resolve(r)
			activeAttrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", endpoint),
			)

			m.active.Add(r.Context(), 1, activeAttrs)
			defer m.active.Add(r.Context(), -1, activeAttrs)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", endpoint),
				attribute.Int("http.status_code", wrappedWriter.statusCode),
			)
			m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
			m.total.Add(r.Context(), 1, attrs)
		})
	}
}

// routePattern resolves requests to the path of the route that serves
// them, so /v1/customers/{id} is one endpoint whatever the id looks like.
func routePattern(router *http.ServeMux) EndpointResolver {
	return func(r *http.Request) string {
		_, pattern := router.Handler(r)
		if pattern == "" {
			return "unmatched"
		}
		if _, path, found := strings.Cut(pattern, " "); found {
			return path
		}
		return pattern
	}
}

// responseWriter records the status code and keeps the wrapped writer
// hijackable for websocket upgrades.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not support hijacking")
}

func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	return uuidRegex.ReplaceAllString(path, "_id")
}

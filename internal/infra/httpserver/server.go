package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	_defaultAddr        = ":3000"
	_healthCheckTimeout = 2 * time.Second
	_shutdownTimeout    = 10 * time.Second
)

type Server interface {
	Run()
	Shutdown()
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server *http.Server
}

type ServerOptions struct {
	Addr           string
	AllowedOrigins []string
	Version        string
	HealthChecks   map[string]HealthCheck
}

func (s *StandardServer) Run() {
	slog.Info("http server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("shutting down http server", slog.String("error", err.Error()))
	}
}

func (s *StandardServer) Handler() http.Handler {
	return s.server.Handler
}

func NewServer(opts ServerOptions, controllers ...Controller) *StandardServer {
	router := http.NewServeMux()

	if opts.Addr == "" {
		opts.Addr = _defaultAddr
	}

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
			"X-User-ID",
			"X-User-Name",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: false,
		MaxAge:           300,
	})

	tracingMiddleware := createTracingMiddleware()
	userHeaderMiddleware := createUserHeaderMiddleware()
	metricsMiddleware := MetricsMiddleware(routePattern(router))

	server := &StandardServer{
		&http.Server{
			Addr: opts.Addr,
			Handler: c.Handler(
				metricsMiddleware(
					tracingMiddleware(
						userHeaderMiddleware(router),
					),
				),
			),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	router.Handle("GET /healthz", getHealthz(opts.Version, opts.HealthChecks))
	router.Handle("GET /metrics", promhttp.Handler())

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	return server
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}

func createUserHeaderMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := GetSpanFromContext(r)

			if userID := r.Header.Get("X-User-ID"); userID != "" {
				span.SetAttributes(attribute.String("user.id", userID))
			}
			if userName := r.Header.Get("X-User-Name"); userName != "" {
				span.SetAttributes(attribute.String("user.name", userName))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func createTracingMiddleware() func(http.Handler) http.Handler {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.Tracer("brokerage-crm")
			ctx, span := tracer.Start(ctx, "http.request",
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.String("http.remote_addr", r.RemoteAddr),
					attribute.String("component", "http-server"),
				),
			)
			defer span.End()

			r = r.WithContext(ctx)
			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			span.SetAttributes(attribute.Int("http.status_code", wrapped.statusCode))
		})
	}
}

type healthzResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

func getHealthz(version string, checks map[string]HealthCheck) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "healthz"))

		ctx, cancel := context.WithTimeout(r.Context(), _healthCheckTimeout)
		defer cancel()

		output := healthzResponse{Status: "success", Version: version}
		statusCode := http.StatusOK
		for _, name := range names {
			if output.Checks == nil {
				output.Checks = make(map[string]string, len(names))
			}
			if err := checks[name](ctx); err != nil {
				slog.Error("health check failed", slog.String("check", name), slog.String("error", err.Error()))
				output.Checks[name] = err.Error()
				output.Status = "failure"
				statusCode = http.StatusServiceUnavailable
				continue
			}
			output.Checks[name] = "ok"
		}

		ReplyJSONResponse(w, statusCode, output)
	}
}

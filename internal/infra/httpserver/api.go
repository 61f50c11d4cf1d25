package httpserver

import (
	"context"
	"net/http"
)

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// HealthCheck reports the status of one dependency for /healthz.
type HealthCheck func(ctx context.Context) error

package sql

import "context"

// Database is a raw connection pool kept next to the ORM.
type Database interface {
	Open() error
	Close()
}

// HealthChecker reports whether the underlying store answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

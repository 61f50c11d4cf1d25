package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// ORM is the query surface the record store needs. Every call returns a
// new chain; Error reports the outcome of the last statement.
type ORM interface {
	AutoMigrate(models ...any) error
	WithContext(ctx context.Context) ORM
	Where(query any, args ...any) ORM
	Order(value any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Save(value any) ORM
	Delete(value any, conds ...any) ORM
	Model(value any) ORM
	Updates(values map[string]any) ORM
	Error() error
	RowsAffected() int64
}

var ErrRecordNotFound = errors.New("record not found")

var (
	_ ORM           = (*DB)(nil)
	_ HealthChecker = (*DB)(nil)
)

// DB adapts gorm to ORM. A non-zero timeout bounds every statement run
// through WithContext.
type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
}

func (d DB) chain(operation string, tx *gorm.DB) ORM {
	if operation != "" {
		traceStatement(tx, operation)
	}
	d.DB = tx
	return &d
}

func (d DB) Error() error {
	switch {
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case d.DB.Error != nil:
		return fmt.Errorf("database error: %w", d.DB.Error)
	default:
		return nil
	}
}

func (d DB) RowsAffected() int64 {
	return d.DB.RowsAffected
}

// Increment is an Updates value that adds one to column in the statement
// itself.
func Increment(column string) any {
	return gorm.Expr(column+" + ?", 1)
}

func (d DB) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("getting connection pool: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

func (d DB) AutoMigrate(models ...any) error {
	if !d.autoMigrationEnabled {
		return nil
	}
	return d.DB.AutoMigrate(models...)
}

func (d DB) WithContext(ctx context.Context) ORM {
	if d.timeout <= 0 {
		return d.chain("", d.DB.WithContext(ctx))
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, d.timeout)
	go func() {
		<-timeoutCtx.Done()
		cancel()
	}()
	return d.chain("", d.DB.WithContext(timeoutCtx))
}

func (d DB) Where(query any, args ...any) ORM {
	return d.chain("", d.DB.Where(query, args...))
}

func (d DB) Order(value any) ORM {
	return d.chain("", d.DB.Order(value))
}

func (d DB) Find(dest any, conds ...any) ORM {
	return d.chain("find", d.DB.Find(dest, conds...))
}

func (d DB) First(dest any, conds ...any) ORM {
	return d.chain("first", d.DB.First(dest, conds...))
}

func (d DB) Save(value any) ORM {
	return d.chain("save", d.DB.Save(value))
}

func (d DB) Delete(value any, conds ...any) ORM {
	return d.chain("delete", d.DB.Delete(value, conds...))
}

func (d DB) Model(value any) ORM {
	return d.chain("", d.DB.Model(value))
}

func (d DB) Updates(values map[string]any) ORM {
	return d.chain("update", d.DB.Updates(values))
}

func traceStatement(tx *gorm.DB, operation string) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("span.kind", "client"),
		attribute.String("component", "database"),
		attribute.String("db.system", tx.Dialector.Name()),
		attribute.String("db.operation", operation),
		attribute.String("db.table", tx.Statement.Table),
	)
}

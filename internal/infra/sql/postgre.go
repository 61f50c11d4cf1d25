package sql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	_pingTimeout = 5 * time.Second
	_openRetries = 10
	_retryDelay  = 5 * time.Second
)

// PostgreDatabase is a pgx pool opened beside the ORM to probe the server
// without going through gorm.
type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

var (
	_ Database      = (*PostgreDatabase)(nil)
	_ HealthChecker = (*PostgreDatabase)(nil)
)

func NewPosgreORM(dsn string, timeout time.Duration) (*DB, error) {
	pass, ok := os.LookupEnv("CRM_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              timeout,
	}, nil
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

func (d *PostgreDatabase) Open() error {
	for range _openRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}
		time.Sleep(_retryDelay)
	}

	return fmt.Errorf("connecting to postgres after %d retries", _openRetries)
}

func (d *PostgreDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	if d.Conn == nil {
		return fmt.Errorf("postgre ping: connection not open")
	}

	pingCtx, cancelFn := context.WithTimeout(ctx, _pingTimeout)
	defer cancelFn()

	return d.Conn.Ping(pingCtx)
}

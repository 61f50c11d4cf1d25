package wire

import (
	"context"
	"log/slog"
	"time"

	"brokerage-crm/cmd/config"
	"brokerage-crm/internal/crm/httpapi"
	"brokerage-crm/internal/crm/persistence"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"
	"brokerage-crm/internal/infra/cache"
	"brokerage-crm/internal/infra/httpserver"
	"brokerage-crm/internal/infra/node"
	"brokerage-crm/internal/infra/pubsub"
	"brokerage-crm/internal/infra/sql"
	"brokerage-crm/internal/infra/utils"
)

const _databaseTimeout = 5 * time.Second

// Application is everything main needs to serve and shut down.
type Application struct {
	Controllers  []httpserver.Controller
	Views        *httpapi.ViewWebSocketController
	Reconciler   *usecases.ReconciliationWorker
	ChangeFeed   *persistence.ChangeFeedWorker
	HealthChecks map[string]httpserver.HealthCheck
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideLocation(config config.AppConfig) *time.Location {
	return utils.LoadLocationOrUTC(config.General.Timezone)
}

func provideClock(config config.AppConfig) usecases.Clock {
	return usecases.NewClock(config.General.Timezone)
}

func provideDatabase(config config.AppConfig) (sql.ORM, error) {
	if config.IsLocal() {
		return sql.NewMemoryORM("crm")
	}

	return sql.NewPosgreORM(config.Postgresql.DSN, _databaseTimeout)
}

// providePubSubFactory gives every node its own consumer group so each one
// sees all change events.
func providePubSubFactory(config config.AppConfig) *pubsub.Factory {
	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       config.General.Environment,
		KafkaBrokers:      config.Kafka.Brokers,
		ConsumerGroup:     config.Kafka.Group + "-" + node.GetNodeInfo().ID,
		SchemaRegistryURL: config.Kafka.SchemaRegistry,
	})
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

func provideViewCache(cfg config.AppConfig) (cache.Cache, error) {
	if cfg.Cache.Backend == config.CacheBackendRedis {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Cache.RedisAddr
		redisConfig.Password = cfg.Cache.RedisPassword //pragma: allowlist secret
		redisConfig.DB = cfg.Cache.RedisDB
		return cache.NewRedisCache(redisConfig)
	}

	cacheConfig := cache.DefaultConfig()
	if cfg.Cache.MaxCost > 0 {
		cacheConfig.MaxCost = cfg.Cache.MaxCost
	}
	if cfg.Cache.NumCounters > 0 {
		cacheConfig.NumCounters = cfg.Cache.NumCounters
	}
	return cache.New(cacheConfig)
}

func provideReconciliationWorker(
	config config.AppConfig,
	store usecases.RecordStore,
	broker async.InternalBroker,
	clock usecases.Clock,
) (*usecases.ReconciliationWorker, error) {
	return usecases.NewReconciliationWorker(store, broker, clock, config.Reconcile.Schedule)
}

func provideControllers(
	customers *httpapi.CustomerController,
	meetings *httpapi.MeetingController,
	activities *httpapi.ActivityController,
	contracts *httpapi.ContractController,
	buildings *httpapi.BuildingController,
	tables *httpapi.TableController,
	views *httpapi.ViewController,
) []httpserver.Controller {
	return []httpserver.Controller{customers, meetings, activities, contracts, buildings, tables, views}
}

type pinger interface {
	Ping(ctx context.Context) error
}

// provideHealthChecks checks the database through a pgx pool in production
// and through the ORM connection locally, plus redis when it backs the cache.
func provideHealthChecks(config config.AppConfig, orm sql.ORM, viewCache cache.Cache) map[string]httpserver.HealthCheck {
	checks := map[string]httpserver.HealthCheck{}

	var database sql.HealthChecker
	if checker, ok := orm.(sql.HealthChecker); ok {
		database = checker
	}
	if !config.IsLocal() && config.Postgresql.URL != "" {
		postgres := sql.NewPosgreDatabase(config.Postgresql.URL)
		if err := postgres.Open(); err != nil {
			slog.Error("opening postgres health pool", slog.String("error", err.Error()))
		} else {
			database = postgres
		}
	}
	if database != nil {
		checks["database"] = database.Ping
	}

	if redis, ok := viewCache.(pinger); ok {
		checks["cache"] = redis.Ping
	}

	return checks
}

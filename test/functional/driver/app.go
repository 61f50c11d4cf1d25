package driver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"

	"brokerage-crm/internal/crm/httpapi"
	"brokerage-crm/internal/crm/persistence"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"
	"brokerage-crm/internal/infra/cache"
	"brokerage-crm/internal/infra/httpserver"
	"brokerage-crm/internal/infra/pubsub"
	"brokerage-crm/internal/infra/sql"
	"brokerage-crm/internal/infra/utils"
)

const Timezone = "Asia/Seoul"

// App runs the whole server in process on a fresh in-memory database.
type App struct {
	URL string

	server  *httptest.Server
	broker  *async.LocalBroker
	views   *httpapi.ViewWebSocketController
	workers []async.Worker
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func StartApp() (*App, error) {
	orm, err := sql.NewMemoryORM(utils.GenerateUUID())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	broker := async.NewLocalBroker()
	store, err := persistence.NewRecordStore(orm, broker, pubsub.NewMemoryPublisherFactory())
	if err != nil {
		return nil, fmt.Errorf("creating record store: %w", err)
	}

	viewCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating view cache: %w", err)
	}

	location := utils.LoadLocationOrUTC(Timezone)
	clock := usecases.NewClock(Timezone)

	viewService := usecases.NewViewService(store, viewCache, clock)
	reconciler, err := usecases.NewReconciliationWorker(store, broker, clock, usecases.DefaultReconcileSchedule)
	if err != nil {
		return nil, fmt.Errorf("creating reconciliation worker: %w", err)
	}
	changeFeed := persistence.NewChangeFeedWorker(pubsub.NewMemoryConsumerFactory("functional-"+utils.GenerateUUID()), store)
	views := httpapi.NewViewWebSocketController(viewService, broker, location)

	server := httpserver.NewServer(
		httpserver.ServerOptions{
			AllowedOrigins: []string{"*"},
			Version:        "functional",
			HealthChecks: map[string]httpserver.HealthCheck{
				"database": orm.Ping,
			},
		},
		httpapi.NewCustomerController(usecases.NewCustomerService(store)),
		httpapi.NewMeetingController(usecases.NewMeetingService(store), location),
		httpapi.NewActivityController(usecases.NewActivityService(store), location),
		httpapi.NewContractController(usecases.NewContractService(store), location),
		httpapi.NewBuildingController(usecases.NewBuildingService(store)),
		httpapi.NewTableController(usecases.NewTableService(store, clock)),
		httpapi.NewViewController(viewService, reconciler, location),
		views,
	)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		server:  httptest.NewServer(server.Handler()),
		broker:  broker,
		views:   views,
		workers: []async.Worker{reconciler, changeFeed},
		cancel:  cancel,
	}
	app.URL = app.server.URL

	for _, worker := range app.workers {
		app.wg.Add(1)
		go worker.Run(ctx, app.wg.Done)
	}

	return app, nil
}

func (a *App) Stop() {
	a.server.Close()
	a.views.Shutdown()
	for _, worker := range a.workers {
		worker.Shutdown()
	}
	a.wg.Wait()
	a.cancel()
	a.broker.Stop()
}

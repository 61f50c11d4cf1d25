//go:build wireinject
// +build wireinject

package wire

import (
	"brokerage-crm/internal/crm/httpapi"
	"brokerage-crm/internal/crm/persistence"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"

	"github.com/google/wire"
)

var RecordStoreSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	provideConsumerFactory,
	persistence.NewRecordStore,
	persistence.NewChangeFeedWorker,
	wire.Bind(new(usecases.RecordStore), new(*persistence.SimpleRecordStore)),
)

var ServiceSet = wire.NewSet(
	provideClock,
	provideViewCache,
	usecases.NewCustomerService,
	wire.Bind(new(usecases.CustomerService), new(*usecases.SimpleCustomerService)),
	usecases.NewMeetingService,
	wire.Bind(new(usecases.MeetingService), new(*usecases.SimpleMeetingService)),
	usecases.NewActivityService,
	wire.Bind(new(usecases.ActivityService), new(*usecases.SimpleActivityService)),
	usecases.NewContractService,
	wire.Bind(new(usecases.ContractService), new(*usecases.SimpleContractService)),
	usecases.NewBuildingService,
	wire.Bind(new(usecases.BuildingService), new(*usecases.SimpleBuildingService)),
	usecases.NewTableService,
	wire.Bind(new(usecases.TableService), new(*usecases.SimpleTableService)),
	usecases.NewViewService,
	wire.Bind(new(usecases.ViewService), new(*usecases.SimpleViewService)),
	provideReconciliationWorker,
	wire.Bind(new(usecases.ReconciliationService), new(*usecases.ReconciliationWorker)),
)

var ControllerSet = wire.NewSet(
	provideLocation,
	httpapi.NewCustomerController,
	httpapi.NewMeetingController,
	httpapi.NewActivityController,
	httpapi.NewContractController,
	httpapi.NewBuildingController,
	httpapi.NewTableController,
	httpapi.NewViewController,
	httpapi.NewViewWebSocketController,
	provideControllers,
)

func InitializeApplication(broker async.InternalBroker) (*Application, error) {
	wire.Build(
		provideAppConfig,
		RecordStoreSet,
		ServiceSet,
		ControllerSet,
		provideHealthChecks,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"brokerage-crm/internal/crm/derived"
	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/async"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

const (
	ViewsTopic            async.BrokerTopicName = "views"
	EventViewsInvalidated                       = "views_invalidated"

	DefaultReconcileSchedule = "0 0 * * *"

	_triggerSnapshot = "snapshot"
	_triggerSchedule = "schedule"
	_triggerManual   = "manual"
)

var (
	reconciliationPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_reconciliation_passes_total",
		Help: "Reconciliation passes partitioned by trigger.",
	}, []string{"trigger"})

	reconciliationUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_reconciliation_updates_total",
		Help: "Status write-backs partitioned by collection and result.",
	}, []string{"collection", "result"})
)

// watchedCollections are every source of a computed view. Changes to
// customers, meetings and contracts run a reconciliation pass, the others
// only invalidate views (see handleChange).
var watchedCollections = []domain.Collection{
	domain.CollectionCustomers,
	domain.CollectionMeetings,
	domain.CollectionActivities,
	domain.CollectionContracts,
	domain.CollectionTables,
	domain.CollectionRows,
}

func NewReconciliationWorker(
	store RecordStore,
	broker async.InternalBroker,
	clock Clock,
	schedule string,
) (*ReconciliationWorker, error) {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	parsed, err := cron.ParseStandard(schedule)
	if err != nil {
		return nil, fmt.Errorf("parsing reconcile schedule %q: %w", schedule, err)
	}

	return &ReconciliationWorker{
		store:    store,
		broker:   broker,
		clock:    clock,
		schedule: schedule,
		parsed:   parsed,
		triggers: make(chan string, 1),
		stopped:  make(chan struct{}),
	}, nil
}

var _ async.Worker = (*ReconciliationWorker)(nil)
var _ ReconciliationService = (*ReconciliationWorker)(nil)

// ReconciliationWorker applies the status rules whenever the watched
// collections change and once per local midnight, then tells view
// subscribers to recompute. Passes never overlap.
type ReconciliationWorker struct {
	store    RecordStore
	broker   async.InternalBroker
	clock    Clock
	schedule string
	parsed   cron.Schedule
	triggers chan string
	mu       sync.Mutex
	stopOnce sync.Once
	stopped  chan struct{}
}

func (w *ReconciliationWorker) Run(ctx context.Context, done func()) {
	slog.Debug("reconciliation worker started", slog.String("schedule", w.schedule))
	defer done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, err := w.subscribe(ctx)
	if err != nil {
		slog.Error("subscribing to record store", slog.String("error", err.Error()))
		return
	}

	scheduler := cron.New(cron.WithLocation(w.clock().Location()))
	scheduler.Schedule(w.parsed, cron.FuncJob(func() { w.trigger(_triggerSchedule) }))
	scheduler.Start()
	defer scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("reconciliation worker cancelled")
			return
		case <-w.stopped:
			slog.Info("reconciliation worker stopped")
			return
		case collection := <-changes:
			w.handleChange(ctx, collection)
		case trigger := <-w.triggers:
			if _, err := w.pass(ctx, trigger); err != nil {
				slog.Error("reconciling statuses",
					slog.String("trigger", trigger),
					slog.String("error", err.Error()))
			}
		}
	}
}

// subscribe fans the watched streams into one channel of changed
// collection names. Streams close when ctx ends.
func (w *ReconciliationWorker) subscribe(ctx context.Context) (<-chan domain.Collection, error) {
	changes := make(chan domain.Collection, len(watchedCollections))

	for _, collection := range watchedCollections {
		stream, err := w.store.Subscribe(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("subscribing to %s: %w", collection, err)
		}

		go func(collection domain.Collection, stream *Stream) {
			defer stream.Close()
			for {
				select {
				case <-ctx.Done():
					return
				case _, ok := <-stream.Snapshots():
					if !ok {
						return
					}
					select {
					case changes <- collection:
					case <-ctx.Done():
						return
					}
				}
			}
		}(collection, stream)
	}

	return changes, nil
}

func (w *ReconciliationWorker) handleChange(ctx context.Context, collection domain.Collection) {
	switch collection {
	case domain.CollectionCustomers, domain.CollectionMeetings, domain.CollectionContracts:
		if _, err := w.pass(ctx, _triggerSnapshot); err != nil {
			slog.Error("reconciling statuses",
				slog.String("collection", collection.String()),
				slog.String("error", err.Error()))
		}
	default:
		w.invalidateViews(ctx, collection)
	}
}

func (w *ReconciliationWorker) trigger(reason string) {
	select {
	case w.triggers <- reason:
	default:
	}
}

// Reconcile runs a pass right away and returns the corrections it applied.
func (w *ReconciliationWorker) Reconcile(ctx context.Context) (domain.StatusUpdates, error) {
	return w.pass(ctx, _triggerManual)
}

func (w *ReconciliationWorker) pass(ctx context.Context, trigger string) (domain.StatusUpdates, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	reconciliationPasses.WithLabelValues(trigger).Inc()

	customers, err := w.store.ListCustomers(ctx)
	if err != nil {
		return domain.StatusUpdates{}, fmt.Errorf("listing customers: %w", err)
	}
	meetings, err := w.store.ListMeetings(ctx)
	if err != nil {
		return domain.StatusUpdates{}, fmt.Errorf("listing meetings: %w", err)
	}
	contracts, err := w.store.ListContracts(ctx)
	if err != nil {
		return domain.StatusUpdates{}, fmt.Errorf("listing contracts: %w", err)
	}

	updates := derived.Reconcile(customers, meetings, contracts, w.clock())
	applied, errs := w.apply(ctx, updates)

	if !updates.IsEmpty() {
		slog.Info("statuses reconciled",
			slog.String("trigger", trigger),
			slog.Int("requested", updates.Len()),
			slog.Int("applied", applied.Len()))
	}

	w.invalidateViews(ctx, "")
	return applied, errors.Join(errs...)
}

// apply writes every correction in order. A failed write is logged and
// counted, the remaining ones still run. A record that left its From
// status since the pass read it is skipped.
func (w *ReconciliationWorker) apply(ctx context.Context, updates domain.StatusUpdates) (domain.StatusUpdates, []error) {
	applied := domain.StatusUpdates{
		CustomerUpdates: make([]domain.CustomerStatusUpdate, 0, len(updates.CustomerUpdates)),
		ContractUpdates: make([]domain.ContractStatusUpdate, 0, len(updates.ContractUpdates)),
	}
	var errs []error

	for _, u := range updates.CustomerUpdates {
		advanced, err := w.store.AdvanceCustomerStatus(ctx, u.CustomerID, u.From, u.To)
		if err != nil {
			reconciliationUpdates.WithLabelValues(domain.CollectionCustomers.String(), "failed").Inc()
			slog.Error("writing back customer status",
				slog.String("customer_id", u.CustomerID.String()),
				slog.String("status", u.To.String()),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("updating customer %s: %w", u.CustomerID, err))
			continue
		}
		if !advanced {
			reconciliationUpdates.WithLabelValues(domain.CollectionCustomers.String(), "skipped").Inc()
			continue
		}
		reconciliationUpdates.WithLabelValues(domain.CollectionCustomers.String(), "applied").Inc()
		applied.CustomerUpdates = append(applied.CustomerUpdates, u)
	}

	for _, u := range updates.ContractUpdates {
		advanced, err := w.store.AdvanceContractStatus(ctx, u.ContractID, u.From, u.To)
		if err != nil {
			reconciliationUpdates.WithLabelValues(domain.CollectionContracts.String(), "failed").Inc()
			slog.Error("writing back contract status",
				slog.String("contract_id", u.ContractID.String()),
				slog.String("status", u.To.String()),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("updating contract %s: %w", u.ContractID, err))
			continue
		}
		if !advanced {
			reconciliationUpdates.WithLabelValues(domain.CollectionContracts.String(), "skipped").Inc()
			continue
		}
		reconciliationUpdates.WithLabelValues(domain.CollectionContracts.String(), "applied").Inc()
		applied.ContractUpdates = append(applied.ContractUpdates, u)
	}

	return applied, errs
}

func (w *ReconciliationWorker) invalidateViews(ctx context.Context, collection domain.Collection) {
	err := w.broker.Publish(ctx, ViewsTopic, async.BrokerMessage{
		Event: EventViewsInvalidated,
		Value: collection,
	})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Error("publishing views invalidation", slog.String("error", err.Error()))
	}
}

func (w *ReconciliationWorker) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stopped)
	})
}

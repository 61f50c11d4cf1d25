package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/async"
	"brokerage-crm/internal/infra/node"
	"brokerage-crm/internal/infra/pubsub"
)

type refresher interface {
	Refresh(ctx context.Context, collection domain.Collection) error
}

func NewChangeFeedWorker(consumerFactory pubsub.ConsumerFactory, store *SimpleRecordStore) *ChangeFeedWorker {
	return newChangeFeedWorker(consumerFactory, store, node.GetNodeInfo().ID)
}

func newChangeFeedWorker(consumerFactory pubsub.ConsumerFactory, store refresher, nodeID string) *ChangeFeedWorker {
	return &ChangeFeedWorker{
		consumerFactory: consumerFactory,
		store:           store,
		nodeID:          nodeID,
		stopped:         make(chan struct{}),
	}
}

var _ async.Worker = (*ChangeFeedWorker)(nil)

// ChangeFeedWorker follows the change events of every collection and
// refreshes local subscribers when another node wrote the record.
type ChangeFeedWorker struct {
	consumerFactory pubsub.ConsumerFactory
	store           refresher
	nodeID          string
	stopOnce        sync.Once
	stopped         chan struct{}
}

func (w *ChangeFeedWorker) Run(ctx context.Context, done func()) {
	slog.Debug("change feed worker started", slog.String("node", w.nodeID))
	defer done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, collection := range domain.Collections() {
		topic := pubsub.Topic(_changeTopicPrefix + collection.String())
		consumer := w.consumerFactory.New()

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Consume(ctx, topic, w.handle, &ChangeEvent{}); err != nil {
				slog.Error("consuming change events",
					slog.String("topic", string(topic)),
					slog.String("error", err.Error()))
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("change feed worker cancelled")
	case <-w.stopped:
		slog.Info("change feed worker stopped")
	}

	cancel()
	wg.Wait()
}

func (w *ChangeFeedWorker) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stopped)
	})
}

func (w *ChangeFeedWorker) handle(ctx context.Context, key pubsub.Key, message pubsub.Prototype) error {
	event, ok := message.(*ChangeEvent)
	if !ok {
		return fmt.Errorf("unexpected change event %T", message)
	}

	if event.SourceNode == w.nodeID {
		return nil
	}

	collection := domain.Collection(event.Collection)
	slog.Debug("applying remote change",
		slog.String("collection", event.Collection),
		slog.String("record_id", string(key)),
		slog.String("source_node", event.SourceNode))

	if err := w.store.Refresh(ctx, collection); err != nil {
		return fmt.Errorf("refreshing %s: %w", collection, err)
	}
	return nil
}

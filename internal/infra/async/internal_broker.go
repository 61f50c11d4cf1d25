package async

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=internal_broker.go -destination=../../../test/unit/doubles/infra/async/internal_broker_mock.go -package=async

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriptorNotFound = errors.New("subscriptor not found")

// LocalBroker fans messages out to in-process subscribers. Each receiver holds
// at most one pending message: a newer message replaces an unread one, so slow
// subscribers always observe the latest state.
func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		topics: make(map[BrokerTopicName][]*subscriptor),
	}
}

type LocalBroker struct {
	mu     sync.RWMutex
	topics map[BrokerTopicName][]*subscriptor
}

type subscriptor struct {
	mu           sync.Mutex
	active       bool
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	subscription := Subscription{
		ID:       uuid.NewString(),
		Receiver: make(chan BrokerMessage, 1),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.topics[topic] = append(b.topics[topic], &subscriptor{subscription: subscription, active: true})

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscriptors, ok := b.topics[topic]
	if !ok {
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscriptors, func(s *subscriptor) bool { return s.subscription.ID == subscription.ID })
	if index < 0 {
		return ErrSubscriptorNotFound
	}

	subscriptors[index].safeClose()
	b.topics[topic] = slices.Delete(subscriptors, index, index+1)

	return nil
}

func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	subscriptors, ok := b.topics[topic]
	targets := slices.Clone(subscriptors)
	b.mu.RUnlock()

	if !ok {
		return ErrTopicNotFound
	}

	for _, s := range targets {
		s.deliver(msg)
	}

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscriptors := range b.topics {
		for _, s := range subscriptors {
			s.safeClose()
		}
		b.topics[topic] = nil
	}
}

func (s *subscriptor) deliver(msg BrokerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	select {
	case s.subscription.Receiver <- msg:
		return
	default:
	}

	select {
	case <-s.subscription.Receiver:
	default:
	}

	select {
	case s.subscription.Receiver <- msg:
	default:
	}
}

func (s *subscriptor) safeClose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.active = false
		close(s.subscription.Receiver)
	}
}

package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: GetMemoryBroker(),
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: GetMemoryBroker(),
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	id := c.broker.Subscribe(topic, c.group, handler)
	<-ctx.Done()
	c.broker.Unsubscribe(topic, id)
	return nil
}

// MemoryBroker delivers every published message to one consumer per group,
// in publish order, on a goroutine per topic.
type MemoryBroker struct {
	mu     sync.Mutex
	topics map[Topic]*memoryTopic
	nextID int
}

type memoryTopic struct {
	events chan memoryEvent
	groups map[string][]*memoryConsumer
	next   map[string]int
}

type memoryEvent struct {
	ctx     context.Context
	key     Key
	message Message
}

type memoryConsumer struct {
	id      int
	handler MessageHandler
}

const _topicBuffer = 256

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker()
	})
	return memoryBroker
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{topics: make(map[Topic]*memoryTopic)}
}

func (b *MemoryBroker) topic(name Topic) *memoryTopic {
	t, exists := b.topics[name]
	if !exists {
		t = &memoryTopic{
			events: make(chan memoryEvent, _topicBuffer),
			groups: make(map[string][]*memoryConsumer),
			next:   make(map[string]int),
		}
		b.topics[name] = t
		go b.dispatch(t)
	}
	return t
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	b.mu.Lock()
	t := b.topic(topic)
	b.mu.Unlock()

	event := memoryEvent{ctx: context.WithoutCancel(ctx), key: key, message: message}
	select {
	case t.events <- event:
		return nil
	default:
		return fmt.Errorf("topic %s buffer full", topic)
	}
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	t := b.topic(topic)
	t.groups[group] = append(t.groups[group], &memoryConsumer{id: b.nextID, handler: handler})
	return b.nextID
}

func (b *MemoryBroker) Unsubscribe(topic Topic, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, exists := b.topics[topic]
	if !exists {
		return
	}

	for group, consumers := range t.groups {
		for i, consumer := range consumers {
			if consumer.id == id {
				t.groups[group] = append(consumers[:i:i], consumers[i+1:]...)
			}
		}
	}
}

func (b *MemoryBroker) dispatch(t *memoryTopic) {
	for event := range t.events {
		for _, handler := range b.pick(t) {
			deliver(handler, event)
		}
	}
}

// pick selects the next consumer of every group in round robin.
func (b *MemoryBroker) pick(t *memoryTopic) []MessageHandler {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := make([]MessageHandler, 0, len(t.groups))
	for group, consumers := range t.groups {
		if len(consumers) == 0 {
			continue
		}
		index := t.next[group] % len(consumers)
		t.next[group] = index + 1
		handlers = append(handlers, consumers[index].handler)
	}
	return handlers
}

func deliver(handler MessageHandler, event memoryEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.Any("panic", r))
		}
	}()

	if err := handler(event.ctx, event.key, event.message); err != nil {
		slog.Error("handling message", slog.String("key", string(event.key)), slog.String("error", err.Error()))
	}
}

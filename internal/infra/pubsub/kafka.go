package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lovoo/goka"
)

const (
	_connectRetries = 10
	_retryDelay     = 5 * time.Second
)

type publisherKey struct {
	brokers string
	topic   string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

// NewKafkaPublisher returns the process wide emitter for brokers and topic,
// creating it on first use.
func NewKafkaPublisher(brokers []string, topic string, codec Codec) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers: strings.Join(brokers, ","),
		topic:   topic,
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher", slog.String("topic", topic), slog.String("brokers", key.brokers))

		for range _connectRetries {
			emitter, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: emitter}
				return
			}
			slog.Warn("connecting to kafka brokers", slog.String("error", err.Error()))
			time.Sleep(_retryDelay)
		}

		instance.err = fmt.Errorf("imposible to connect to kafka brokers after %d retries", _connectRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	if err := p.emitter.EmitSync(string(key), message); err != nil {
		return fmt.Errorf("emitting message: %w", err)
	}

	return nil
}

func (p *SimpleKafkaPublisher) Close() error {
	return p.emitter.Finish()
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers  []string
	group    goka.Group
	registry SchemaRegistry
}

func NewKafkaConsumer(brokers []string, group string, registry SchemaRegistry) *SimpleKafkaConsumer {
	return &SimpleKafkaConsumer{
		brokers:  brokers,
		group:    goka.Group(group),
		registry: registry,
	}
}

func (c *SimpleKafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, prototype Prototype) error {
	codec, err := NewCodec(prototype, c.registry)
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}

	cb := func(gctx goka.Context, msg any) {
		msgCtx := ctx
		if carrier, ok := msg.(TraceCarrier); ok {
			msgCtx = InjectTraceIntoContext(ctx, carrier.TraceHeaders())
		}
		if err := handler(msgCtx, Key(gctx.Key()), msg); err != nil {
			slog.Error("handling kafka message", slog.String("key", gctx.Key()), slog.String("error", err.Error()))
		}
	}

	graph := goka.DefineGroup(c.group, goka.Input(goka.Stream(topic), codec, cb))
	processor, err := goka.NewProcessor(c.brokers, graph)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	return processor.Run(ctx)
}

package pubsub

import "fmt"

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaPublisherFactoryOptions struct {
	Brokers           []string
	SchemaRegistryURL string
}

func NewKafkaPublisherFactory(opts KafkaPublisherFactoryOptions) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{
		brokers:  opts.Brokers,
		registry: NewSchemaRegistry(opts.SchemaRegistryURL),
	}
}

type KafkaPublisherFactory struct {
	brokers  []string
	registry SchemaRegistry
}

func (f *KafkaPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	codec, err := NewCodec(prototype, f.registry)
	if err != nil {
		return nil, fmt.Errorf("creating codec: %w", err)
	}

	publisher, err := NewKafkaPublisher(f.brokers, string(topic), codec)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	return publisher, nil
}

var _ ConsumerFactory = (*KafkaConsumerFactory)(nil)

func NewKafkaConsumerFactory(brokers []string, group string, schemaRegistryURL string) *KafkaConsumerFactory {
	return &KafkaConsumerFactory{
		brokers:  brokers,
		group:    group,
		registry: NewSchemaRegistry(schemaRegistryURL),
	}
}

type KafkaConsumerFactory struct {
	brokers  []string
	group    string
	registry SchemaRegistry
}

func (f *KafkaConsumerFactory) New() Consumer {
	return NewKafkaConsumer(f.brokers, f.group, f.registry)
}

package pubsub

// Factory holds the publisher and consumer factories for the environment:
// the in-memory broker for "local", kafka for everything else.
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	ConsumerGroup     string
	SchemaRegistryURL string
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == "local" || len(opts.KafkaBrokers) == 0 {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
			consumerFactory:  NewMemoryConsumerFactory(opts.ConsumerGroup),
		}
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers:           opts.KafkaBrokers,
			SchemaRegistryURL: opts.SchemaRegistryURL,
		}),
		consumerFactory: NewKafkaConsumerFactory(opts.KafkaBrokers, opts.ConsumerGroup, opts.SchemaRegistryURL),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}

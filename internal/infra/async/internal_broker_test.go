package async_test

import (
	"context"

	"brokerage-crm/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var subscription async.Subscription
	var message async.BrokerMessage
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	Context("Subscribe", func() {
		When("add a new subscriber for a topic", func() {
			BeforeEach(func() {
				topic = "customers"
			})

			It("should deliver published messages", func() {
				subscription, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("multiple subscriptor", func() {
			var subscription2 async.Subscription
			BeforeEach(func() {
				topic = "customers"
			})

			It("should deliver to every subscriber", func() {
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
				Eventually(subscription2.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("a new message arrives", func() {
			BeforeEach(func() {
				topic = "contracts"
				subscription, _ = broker.Subscribe(topic)
				message = async.BrokerMessage{
					Event: "snapshot",
					Value: "c-1",
				}
			})

			It("should receive a message from channel", func() {
				broker.Publish(context.TODO(), topic, message)

				Eventually(subscription.Receiver).Should(Receive(And(
					HaveField("Event", "snapshot"),
					HaveField("Value", "c-1"),
				)))
			})
		})

		When("the subscriber falls behind", func() {
			BeforeEach(func() {
				topic = "meetings"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should keep only the latest message", func() {
				for _, value := range []string{"first", "second", "third"} {
					Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "snapshot", Value: value})).To(Succeed())
				}

				Eventually(subscription.Receiver).Should(Receive(HaveField("Value", "third")))
				Consistently(subscription.Receiver).ShouldNot(Receive())
			})
		})

		When("stop broker", func() {
			BeforeEach(func() {
				topic = "contracts"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the receiver", func() {
				go broker.Stop()

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})
	})

	Context("Unsubscribe", func() {
		When("there is no subscriptor", func() {
			BeforeEach(func() {
				topic = "activities"
				subscription = async.Subscription{
					ID: "2d582ce4-88e1-40a8-bc14-5cf0311943fd",
				}
			})

			It("should return topic not found", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).Should(MatchError(async.ErrTopicNotFound))
			})
		})

		When("subscriptor doesn't exists", func() {
			var subscription2 async.Subscription
			BeforeEach(func() {
				topic = "activities"
				subscription, _ = broker.Subscribe(topic)
				subscription2 = async.Subscription{
					ID: "2d582ce4-88e1-40a8-bc14-5cf0311943fd",
				}
			})

			It("should return subscriptor not found", func() {
				err := broker.Unsubscribe(topic, subscription2)

				Expect(err).Should(MatchError(async.ErrSubscriptorNotFound))
			})
		})

		When("subscriptor does exists", func() {
			BeforeEach(func() {
				topic = "activities"
				subscription, _ = broker.Subscribe(topic)
				broker.Unsubscribe(topic, subscription)
			})

			It("should close the receiver", func() {
				Expect(broker.Publish(context.TODO(), topic, async.BrokerMessage{Event: "snapshot"})).To(Succeed())

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})

		When("is called twice", func() {
			BeforeEach(func() {
				topic = "activities"
				subscription, _ = broker.Subscribe(topic)
				broker.Unsubscribe(topic, subscription)
			})

			It("should report the subscription as gone and don't panic", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).Should(MatchError(async.ErrSubscriptorNotFound))
			})
		})
	})

	Context("Publish", func() {
		When("topic doesn't exists", func() {
			BeforeEach(func() {
				topic = "buildings"
			})

			It("should return an error", func() {
				err := broker.Publish(context.TODO(), topic, async.BrokerMessage{})

				Expect(err).Should(MatchError(async.ErrTopicNotFound))
			})
		})

		When("there is no subscriptor", func() {
			BeforeEach(func() {
				topic = "buildings"
				subcription, _ := broker.Subscribe(topic)
				broker.Unsubscribe(topic, subcription)
			})

			It("should return no error", func() {
				err := broker.Publish(context.TODO(), topic, async.BrokerMessage{})

				Expect(err).Should(Succeed())
			})
		})
	})
})

package persistence_test

import (
	"context"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/persistence"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"
	"brokerage-crm/internal/infra/pubsub"
	"brokerage-crm/internal/infra/sql"
	"brokerage-crm/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// editingStore runs an edit between the worker reading customers and
// reading meetings.
type editingStore struct {
	*persistence.SimpleRecordStore
	edit func()
}

func (s *editingStore) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	if s.edit != nil {
		edit := s.edit
		s.edit = nil
		edit()
	}
	return s.SimpleRecordStore.ListMeetings(ctx)
}

var _ = ginkgo.Describe("Reconciliation against the record store", func() {
	var (
		store    *editingStore
		broker   *async.LocalBroker
		worker   *usecases.ReconciliationWorker
		ctx      context.Context
		customer domain.Customer
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		now := time.Now()

		orm, err := sql.NewMemoryORM(utils.GenerateUUID())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		broker = async.NewLocalBroker()
		recordStore, err := persistence.NewRecordStore(orm, broker, pubsub.NewMemoryPublisherFactory())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		store = &editingStore{SimpleRecordStore: recordStore}

		worker, err = usecases.NewReconciliationWorker(store, broker, usecases.FixedClock(now), "")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		customer, err = domain.NewCustomerBuilder().WithName("old").WithPhone("010-0000-0000").Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(store.UpsertCustomer(ctx, customer)).To(gomega.Succeed())

		meeting, err := domain.NewMeetingBuilder().WithCustomerID(customer.ID).WithDate(now.AddDate(0, 0, -2)).Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(store.UpsertMeeting(ctx, meeting)).To(gomega.Succeed())
	})

	ginkgo.AfterEach(func() {
		broker.Stop()
	})

	ginkgo.It("should advance only the status of an untouched customer", func() {
		updates, err := worker.Reconcile(ctx)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(updates.CustomerUpdates).To(gomega.HaveLen(1))

		loaded, err := store.GetCustomer(ctx, customer.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(loaded.Status).To(gomega.Equal(domain.CustomerStatusInProgress))
		gomega.Expect(loaded.Name).To(gomega.Equal("old"))
		gomega.Expect(loaded.Version).To(gomega.Equal(customer.Version + 1))
	})

	ginkgo.It("should keep a user edit made while the pass was reading", func() {
		var edited domain.Customer
		store.edit = func() {
			services := usecases.NewCustomerService(store)
			changes := customer
			changes.Name = "new"
			changes.Status = domain.CustomerStatusOnHold

			var err error
			edited, err = services.Update(ctx, changes)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		}

		updates, err := worker.Reconcile(ctx)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(updates.CustomerUpdates).To(gomega.BeEmpty())

		loaded, err := store.GetCustomer(ctx, customer.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(loaded.Status).To(gomega.Equal(domain.CustomerStatusOnHold))
		gomega.Expect(loaded.Name).To(gomega.Equal("new"))
		gomega.Expect(loaded.Version).To(gomega.Equal(edited.Version))
	})
})

package usecases_test

import (
	"context"
	"errors"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/usecases"
	mockusecases "brokerage-crm/test/unit/doubles/crm/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("CustomerService", func() {
	var (
		ctrl    *gomock.Controller
		store   *mockusecases.MockRecordStore
		service *usecases.SimpleCustomerService
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		store = mockusecases.NewMockRecordStore(ctrl)
		service = usecases.NewCustomerService(store)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.It("should wrap store failures on create", func() {
		customer, _ := domain.NewCustomerBuilder().WithName("김민수").Build()
		store.EXPECT().UpsertCustomer(gomock.Any(), customer).Return(errors.New("disk full"))

		err := service.Create(ctx, customer)
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("creating customer: disk full")))
	})

	ginkgo.It("should merge updates into the stored customer", func() {
		stored, _ := domain.NewCustomerBuilder().WithID("c-1").WithName("김민수").WithFavorite(true).Build()
		store.EXPECT().GetCustomer(gomock.Any(), domain.ID("c-1")).Return(stored, nil)
		store.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c domain.Customer) error {
			gomega.Expect(c.Status).To(gomega.Equal(domain.CustomerStatusOnHold))
			gomega.Expect(c.Version).To(gomega.Equal(domain.Version(2)))
			gomega.Expect(c.CreatedAt).To(gomega.Equal(stored.CreatedAt))
			return nil
		})

		updated, err := service.Update(ctx, domain.Customer{ID: "c-1", Name: "김민수", Status: domain.CustomerStatusOnHold})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(updated.IsFavorite).To(gomega.BeFalse())
	})

	ginkgo.It("should report missing customers", func() {
		store.EXPECT().GetCustomer(gomock.Any(), domain.ID("nope")).Return(domain.Customer{}, domain.ErrCustomerNotFound)

		_, err := service.Update(ctx, domain.Customer{ID: "nope", Name: "x"})
		gomega.Expect(err).To(gomega.MatchError(domain.ErrCustomerNotFound))
	})

	ginkgo.It("should delete meetings and activities with the customer", func() {
		store.EXPECT().GetCustomer(gomock.Any(), domain.ID("c-1")).Return(domain.Customer{ID: "c-1"}, nil)
		store.EXPECT().ListMeetings(gomock.Any()).Return([]domain.Meeting{
			{ID: "m-1", CustomerID: "c-1"},
			{ID: "m-2", CustomerID: "c-2"},
		}, nil)
		store.EXPECT().ListActivities(gomock.Any()).Return([]domain.Activity{
			{ID: "a-1", CustomerID: "c-1"},
		}, nil)

		gomock.InOrder(
			store.EXPECT().Remove(gomock.Any(), domain.CollectionMeetings, domain.ID("m-1")).Return(nil),
			store.EXPECT().Remove(gomock.Any(), domain.CollectionActivities, domain.ID("a-1")).Return(nil),
			store.EXPECT().Remove(gomock.Any(), domain.CollectionCustomers, domain.ID("c-1")).Return(nil),
		)

		gomega.Expect(service.Delete(ctx, "c-1")).To(gomega.Succeed())
	})
})

var _ = ginkgo.Describe("MeetingService", func() {
	var (
		ctrl    *gomock.Controller
		store   *mockusecases.MockRecordStore
		service *usecases.SimpleMeetingService
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		store = mockusecases.NewMockRecordStore(ctrl)
		service = usecases.NewMeetingService(store)
	})

	ginkgo.It("should refuse meetings for unknown customers", func() {
		store.EXPECT().GetCustomer(gomock.Any(), domain.ID("ghost")).Return(domain.Customer{}, domain.ErrCustomerNotFound)

		err := service.Create(context.Background(), domain.Meeting{CustomerID: "ghost"})
		gomega.Expect(err).To(gomega.MatchError(domain.ErrCustomerNotFound))
	})

	ginkgo.It("should narrow meetings to one customer", func() {
		store.EXPECT().ListMeetings(gomock.Any()).Return([]domain.Meeting{
			{ID: "m-1", CustomerID: "c-1"},
			{ID: "m-2", CustomerID: "c-2"},
		}, nil).Times(2)

		mine, err := service.FindAll(context.Background(), "c-1")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(mine).To(gomega.HaveLen(1))

		all, err := service.FindAll(context.Background(), "")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(all).To(gomega.HaveLen(2))
	})
})

var _ = ginkgo.Describe("ActivityService", func() {
	ginkgo.It("should append follow-ups and persist the activity", func() {
		ctrl := gomock.NewController(ginkgo.GinkgoT())
		store := mockusecases.NewMockRecordStore(ctrl)
		service := usecases.NewActivityService(store)

		store.EXPECT().GetActivity(gomock.Any(), domain.ID("a-1")).Return(domain.Activity{ID: "a-1", CustomerID: "c-1"}, nil)
		store.EXPECT().UpsertActivity(gomock.Any(), gomock.Any()).Return(nil)

		activity, err := service.AddFollowUp(context.Background(), "a-1", domain.FollowUp{Author: domain.FollowUpAuthorReply, Content: "네"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(activity.HasFollowUpFrom(domain.FollowUpAuthorReply)).To(gomega.BeTrue())
	})
})

var _ = ginkgo.Describe("ContractService", func() {
	ginkgo.It("should keep the progress status when the update leaves it empty", func() {
		ctrl := gomock.NewController(ginkgo.GinkgoT())
		store := mockusecases.NewMockRecordStore(ctrl)
		service := usecases.NewContractService(store)

		store.EXPECT().GetContract(gomock.Any(), domain.ID("k-1")).Return(domain.Contract{ID: "k-1", ProgressStatus: domain.ContractStatusBalance}, nil)
		store.EXPECT().UpsertContract(gomock.Any(), gomock.Any()).Return(nil)

		contract, err := service.Update(context.Background(), domain.Contract{ID: "k-1", Memo: "잔금 일정 조율"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(contract.ProgressStatus).To(gomega.Equal(domain.ContractStatusBalance))
		gomega.Expect(contract.Memo).To(gomega.Equal("잔금 일정 조율"))
	})
})

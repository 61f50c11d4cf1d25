package domain_test

import (
	"time"

	"brokerage-crm/internal/crm/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Builders", func() {
	ginkgo.Context("Customer", func() {
		ginkgo.It("should default to 신규 with a generated id", func() {
			customer, err := domain.NewCustomerBuilder().WithName("  김민수 ").WithPhone("010-1234-5678").Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(customer.ID).NotTo(gomega.BeEmpty())
			gomega.Expect(customer.Name).To(gomega.Equal("김민수"))
			gomega.Expect(customer.Status).To(gomega.Equal(domain.CustomerStatusNew))
			gomega.Expect(customer.Version).To(gomega.Equal(domain.Version(1)))
		})

		ginkgo.It("should reject a customer without name", func() {
			_, err := domain.NewCustomerBuilder().WithName("   ").Build()
			gomega.Expect(err).To(gomega.MatchError(domain.ErrNameRequired))
		})

		ginkgo.It("should bump the version on update", func() {
			customer, _ := domain.NewCustomerBuilder().WithName("A").Build()
			customer.Update(domain.Customer{Name: "B", Status: domain.CustomerStatusOnHold})
			gomega.Expect(customer.Name).To(gomega.Equal("B"))
			gomega.Expect(customer.Status).To(gomega.Equal(domain.CustomerStatusOnHold))
			gomega.Expect(customer.Version).To(gomega.Equal(domain.Version(2)))
		})

		ginkgo.It("should bump the version on a status change", func() {
			customer, _ := domain.NewCustomerBuilder().WithName("A").Build()
			advanced := customer.WithStatus(domain.CustomerStatusInProgress)
			gomega.Expect(advanced.Status).To(gomega.Equal(domain.CustomerStatusInProgress))
			gomega.Expect(advanced.Version).To(gomega.Equal(customer.Version + 1))
			gomega.Expect(customer.Status).To(gomega.Equal(domain.CustomerStatusNew))
		})
	})

	ginkgo.Context("Meeting", func() {
		ginkgo.It("should require customer and date", func() {
			_, err := domain.NewMeetingBuilder().WithDate(time.Now()).Build()
			gomega.Expect(err).To(gomega.MatchError(domain.ErrCustomerIDRequired))

			_, err = domain.NewMeetingBuilder().WithCustomerID("c-1").Build()
			gomega.Expect(err).To(gomega.MatchError(domain.ErrDateRequired))
		})
	})

	ginkgo.Context("Activity", func() {
		ginkgo.It("should find follow-ups by author", func() {
			activity, err := domain.NewActivityBuilder().
				WithCustomerID("c-1").
				WithFollowUps(domain.FollowUp{Author: "중개사", Content: "매물 안내"}).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(activity.HasFollowUpFrom(domain.FollowUpAuthorReply)).To(gomega.BeFalse())

			snapshot := activity
			activity.AddFollowUp(domain.FollowUp{Author: domain.FollowUpAuthorReply, Content: "확인했습니다"})
			gomega.Expect(activity.HasFollowUpFrom(domain.FollowUpAuthorReply)).To(gomega.BeTrue())
			gomega.Expect(activity.FollowUps[1].Date.IsZero()).To(gomega.BeFalse())
			gomega.Expect(snapshot.FollowUps).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Context("Contract", func() {
		ginkgo.It("should start in 계약서작성 and leave missing dates nil", func() {
			contract, err := domain.NewContractBuilder().
				WithBuildingName("한빛빌딩").
				WithRoomNumber("301").
				WithContractDate(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(contract.ProgressStatus).To(gomega.Equal(domain.ContractStatusDrafting))
			gomega.Expect(contract.ContractDate).NotTo(gomega.BeNil())
			gomega.Expect(contract.BalanceDate).To(gomega.BeNil())
		})

		ginkgo.It("should rank lifecycle statuses in order", func() {
			gomega.Expect(domain.ContractStatusDrafting.Rank()).To(gomega.BeNumerically("<", domain.ContractStatusBalance.Rank()))
			gomega.Expect(domain.ContractStatusBalance.Rank()).To(gomega.BeNumerically("<", domain.ContractStatusMovedIn.Rank()))
			gomega.Expect(domain.ContractStatus("해지").Rank()).To(gomega.Equal(0))
		})

		ginkgo.It("should bump the version on a progress change", func() {
			contract, err := domain.NewContractBuilder().WithBuildingName("한빛빌딩").Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			advanced := contract.WithProgressStatus(domain.ContractStatusBalance)
			gomega.Expect(advanced.ProgressStatus).To(gomega.Equal(domain.ContractStatusBalance))
			gomega.Expect(advanced.Version).To(gomega.Equal(contract.Version + 1))
		})
	})

	ginkgo.Context("Building", func() {
		ginkgo.It("should require a name", func() {
			_, err := domain.NewBuildingBuilder().WithAddress("서울").Build()
			gomega.Expect(err).To(gomega.MatchError(domain.ErrNameRequired))
		})
	})
})

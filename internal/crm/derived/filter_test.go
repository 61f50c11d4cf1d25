package derived_test

import (
	"time"

	"brokerage-crm/internal/crm/derived"
	"brokerage-crm/internal/crm/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("FilterCustomers", func() {
	var (
		customers  []domain.Customer
		meetings   []domain.Meeting
		activities []domain.Activity
	)

	ginkgo.BeforeEach(func() {
		favorite := customer("F", domain.CustomerStatusInProgress)
		favorite.IsFavorite = true
		progressing := customer("P", domain.CustomerStatusInProgress)
		progressing.Progress = "계약예정"

		customers = []domain.Customer{
			customer("A", domain.CustomerStatusNew),
			customer("B", domain.CustomerStatusNew),
			customer("C", domain.CustomerStatusInProgress),
			customer("H", domain.CustomerStatusOnHold),
			customer("L", domain.CustomerStatusLongTerm),
			favorite,
			progressing,
		}
		meetings = []domain.Meeting{
			meeting("A", at(0, 15)),
			meeting("B", at(3, 10)),
			meeting("C", at(-2, 10)),
		}
		activities = []domain.Activity{
			activity("C", at(0, 9)),
			activity("L", at(-1, 18), domain.FollowUp{Author: domain.FollowUpAuthorReply}),
			activity("H", at(-7, 9)),
			activity("F", at(-5, 9), domain.FollowUp{Author: domain.FollowUpAuthorReply}),
		}
	})

	filter := func(f domain.CustomerFilter, progress string) []string {
		return customerIDs(derived.FilterCustomers(customers, meetings, activities, f, progress, now))
	}

	ginkgo.It("should pass everything for 전체", func() {
		gomega.Expect(filter(domain.CustomerFilterAll, "")).To(gomega.HaveLen(len(customers)))
	})

	ginkgo.It("should keep favorites for 집중고객", func() {
		gomega.Expect(filter(domain.CustomerFilterFavorite, "")).To(gomega.Equal([]string{"F"}))
	})

	ginkgo.It("should keep long term customers for 장기관리고객", func() {
		gomega.Expect(filter(domain.CustomerFilterLongTerm, "")).To(gomega.Equal([]string{"L"}))
	})

	ginkgo.It("should match meetings today for 오늘미팅", func() {
		gomega.Expect(filter(domain.CustomerFilterTodayMeeting, "")).To(gomega.Equal([]string{"A"}))
	})

	ginkgo.It("should match future meetings for 미팅일확정", func() {
		gomega.Expect(filter(domain.CustomerFilterMeetingScheduled, "")).To(gomega.Equal([]string{"B"}))
	})

	ginkgo.It("should return exactly the customer contacted today for 오늘연락", func() {
		gomega.Expect(filter(domain.CustomerFilterTodayContact, "")).To(gomega.Equal([]string{"C"}))
	})

	ginkgo.It("should match yesterday's activity for 어제연락", func() {
		gomega.Expect(filter(domain.CustomerFilterYesterdayContact, "")).To(gomega.Equal([]string{"L"}))
	})

	ginkgo.It("should skip held and recently contacted customers for 연락할고객", func() {
		gomega.Expect(filter(domain.CustomerFilterToContact, "")).To(gomega.Equal([]string{"A", "B", "F", "P"}))
	})

	ginkgo.It("should flag customers with an unanswered activity for 답장대기", func() {
		gomega.Expect(filter(domain.CustomerFilterAwaitingReply, "")).To(gomega.Equal([]string{"C", "H"}))
	})

	ginkgo.It("should flag a customer once any activity lacks a reply", func() {
		activities = append(activities, activity("F", at(-1, 9)))
		gomega.Expect(filter(domain.CustomerFilterAwaitingReply, "")).To(gomega.ContainElement("F"))
	})

	ginkgo.It("should fall back to status equality with the progress refinement", func() {
		gomega.Expect(filter("진행중", "")).To(gomega.Equal([]string{"C", "F", "P"}))
		gomega.Expect(filter("진행중", "계약예정")).To(gomega.Equal([]string{"P"}))
		gomega.Expect(filter("없는상태", "")).To(gomega.BeEmpty())
	})

	ginkgo.It("should return an empty slice for no customers", func() {
		result := derived.FilterCustomers(nil, nil, nil, domain.CustomerFilterAll, "", now)
		gomega.Expect(result).NotTo(gomega.BeNil())
		gomega.Expect(result).To(gomega.BeEmpty())
	})
})

var _ = ginkgo.Describe("FilterContracts", func() {
	contracts := []domain.Contract{
		{ID: "draft-ahead", ProgressStatus: domain.ContractStatusDrafting, ContractDate: ptr(at(0, 0))},
		{ID: "draft-past", ProgressStatus: domain.ContractStatusDrafting, ContractDate: ptr(at(-1, 0))},
		{ID: "draft-nodate", ProgressStatus: domain.ContractStatusDrafting},
		{ID: "balance-ahead", ProgressStatus: domain.ContractStatusBalance, BalanceDate: ptr(at(10, 0)), ContractDate: ptr(at(-25, 0))},
		{ID: "balance-past", ProgressStatus: domain.ContractStatusBalance, BalanceDate: ptr(at(-2, 0))},
		{ID: "paid-september", ProgressStatus: domain.ContractStatusMovedIn, RemainderPaymentDate: ptr(time.Date(2026, 9, 30, 23, 0, 0, 0, seoul))},
		{ID: "paid-october", ProgressStatus: domain.ContractStatusMovedIn, RemainderPaymentDate: ptr(time.Date(2026, 10, 1, 0, 0, 0, 0, seoul))},
		{ID: "paid-november", ProgressStatus: "해지", RemainderPaymentDate: ptr(time.Date(2026, 11, 30, 0, 0, 0, 0, seoul))},
	}

	filter := func(f domain.ContractFilter) []string {
		return contractIDs(derived.FilterContracts(contracts, f, now))
	}

	ginkgo.It("should require upcoming dates for the stage filters", func() {
		gomega.Expect(filter(domain.ContractFilterDrafting)).To(gomega.Equal([]string{"draft-ahead"}))
		gomega.Expect(filter(domain.ContractFilterBalance)).To(gomega.Equal([]string{"balance-ahead"}))
	})

	ginkgo.It("should match calendar months", func() {
		gomega.Expect(filter(domain.ContractFilterThisMonthContract)).To(gomega.Equal([]string{"draft-ahead", "draft-past"}))
		gomega.Expect(filter(domain.ContractFilterThisMonthBalance)).To(gomega.Equal([]string{"balance-ahead", "balance-past"}))
		gomega.Expect(filter(domain.ContractFilterLastMonthRemainder)).To(gomega.Equal([]string{"paid-september"}))
		gomega.Expect(filter(domain.ContractFilterThisMonthRemainder)).To(gomega.Equal([]string{"paid-october"}))
		gomega.Expect(filter(domain.ContractFilterNextMonthRemainder)).To(gomega.Equal([]string{"paid-november"}))
	})

	ginkgo.It("should cross the year boundary", func() {
		january := time.Date(2027, 1, 5, 9, 0, 0, 0, seoul)
		december := []domain.Contract{{ID: "dec", RemainderPaymentDate: ptr(time.Date(2026, 12, 31, 12, 0, 0, 0, seoul))}}

		gomega.Expect(derived.FilterContracts(december, domain.ContractFilterLastMonthRemainder, january)).To(gomega.HaveLen(1))
		gomega.Expect(derived.FilterContracts(december, domain.ContractFilterNextMonthRemainder, now)).To(gomega.BeEmpty())
	})

	ginkgo.It("should pass everything for 전체 and match status otherwise", func() {
		gomega.Expect(filter(domain.ContractFilterAll)).To(gomega.HaveLen(len(contracts)))
		gomega.Expect(filter("입주완료")).To(gomega.Equal([]string{"paid-september", "paid-october"}))
		gomega.Expect(filter("해지")).To(gomega.Equal([]string{"paid-november"}))
	})
})

var _ = ginkgo.Describe("FilterRows", func() {
	rows := []domain.DynamicTableRow{
		{ID: "1", Fields: map[string]any{"category": ""}},
		{ID: "2", Fields: map[string]any{"category": "A"}},
		{ID: "3", Fields: map[string]any{"category": nil}},
		{ID: "4", Fields: map[string]any{"title": "no category"}},
		{ID: "5", Fields: map[string]any{"category": " A "}},
	}

	ginkgo.It("should keep blank and missing categories for 미분류", func() {
		result := derived.ComputeFilteredDynamicRows(rows[:3], domain.RowFilterUncategorized)
		gomega.Expect(rowIDs(result)).To(gomega.Equal([]string{"1", "3"}))

		gomega.Expect(rowIDs(derived.FilterRows(rows, domain.RowFilterUncategorized))).To(gomega.Equal([]string{"1", "3", "4"}))
	})

	ginkgo.It("should match categories exactly", func() {
		gomega.Expect(rowIDs(derived.FilterRows(rows, "A"))).To(gomega.Equal([]string{"2"}))
	})

	ginkgo.It("should pass everything for 전체", func() {
		gomega.Expect(derived.FilterRows(rows, domain.RowFilterAll)).To(gomega.HaveLen(len(rows)))
	})
})

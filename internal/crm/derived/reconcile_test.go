package derived_test

import (
	"time"

	"brokerage-crm/internal/crm/derived"
	"brokerage-crm/internal/crm/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func applyUpdates(customers []domain.Customer, contracts []domain.Contract, updates domain.StatusUpdates) ([]domain.Customer, []domain.Contract) {
	customerTargets := map[domain.ID]domain.CustomerStatus{}
	for _, u := range updates.CustomerUpdates {
		customerTargets[u.CustomerID] = u.To
	}
	contractTargets := map[domain.ID]domain.ContractStatus{}
	for _, u := range updates.ContractUpdates {
		contractTargets[u.ContractID] = u.To
	}

	nextCustomers := make([]domain.Customer, len(customers))
	for i, c := range customers {
		if to, ok := customerTargets[c.ID]; ok {
			c = c.WithStatus(to)
		}
		nextCustomers[i] = c
	}
	nextContracts := make([]domain.Contract, len(contracts))
	for i, c := range contracts {
		if to, ok := contractTargets[c.ID]; ok {
			c = c.WithProgressStatus(to)
		}
		nextContracts[i] = c
	}
	return nextCustomers, nextContracts
}

var _ = ginkgo.Describe("Reconcile", func() {
	ginkgo.Context("customers", func() {
		ginkgo.It("should move 신규 to 진행중 only after a past meeting", func() {
			customers := []domain.Customer{customer("A", domain.CustomerStatusNew), customer("B", domain.CustomerStatusNew)}
			meetings := []domain.Meeting{meeting("A", at(-1, 15)), meeting("B", at(1, 9))}

			updates := derived.ReconcileCustomers(customers, meetings, now)

			gomega.Expect(updates).To(gomega.ConsistOf(domain.CustomerStatusUpdate{
				CustomerID: "A",
				From:       domain.CustomerStatusNew,
				To:         domain.CustomerStatusInProgress,
			}))
		})

		ginkgo.It("should ignore meetings earlier today", func() {
			customers := []domain.Customer{customer("A", domain.CustomerStatusNew)}
			meetings := []domain.Meeting{meeting("A", at(0, 0)), meeting("A", time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC))}

			gomega.Expect(derived.ReconcileCustomers(customers, meetings, now)).To(gomega.BeEmpty())
		})

		ginkgo.It("should leave other statuses and favorite flags alone", func() {
			held := customer("H", domain.CustomerStatusOnHold)
			held.IsFavorite = true
			customers := []domain.Customer{held, customer("L", domain.CustomerStatusLongTerm)}
			meetings := []domain.Meeting{meeting("H", at(-10, 9)), meeting("L", at(-3, 9))}

			gomega.Expect(derived.ReconcileCustomers(customers, meetings, now)).To(gomega.BeEmpty())
		})

		ginkgo.It("should ignore meetings with a zero date", func() {
			customers := []domain.Customer{customer("A", domain.CustomerStatusNew)}
			meetings := []domain.Meeting{{CustomerID: "A"}}

			gomega.Expect(derived.ReconcileCustomers(customers, meetings, now)).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("contracts", func() {
		ginkgo.It("should move a contract signed two days ago to 잔금", func() {
			contract := domain.Contract{ID: "K1", ProgressStatus: domain.ContractStatusDrafting, ContractDate: ptr(at(-2, 11))}

			updates := derived.ReconcileContracts([]domain.Contract{contract}, now)

			gomega.Expect(updates).To(gomega.Equal([]domain.ContractStatusUpdate{{
				ContractID: "K1",
				From:       domain.ContractStatusDrafting,
				To:         domain.ContractStatusBalance,
			}}))
		})

		ginkgo.It("should wait until the day after the contract date", func() {
			signedToday := domain.Contract{ID: "K1", ProgressStatus: domain.ContractStatusDrafting, ContractDate: ptr(at(0, 1))}
			signedYesterday := domain.Contract{ID: "K2", ProgressStatus: domain.ContractStatusDrafting, ContractDate: ptr(at(-1, 23))}

			updates := derived.ReconcileContracts([]domain.Contract{signedToday, signedYesterday}, now)

			gomega.Expect(updates).To(gomega.HaveLen(1))
			gomega.Expect(updates[0].ContractID).To(gomega.Equal(domain.ID("K2")))
		})

		ginkgo.It("should prefer the balance rule", func() {
			contract := domain.Contract{
				ID:             "K1",
				ProgressStatus: domain.ContractStatusDrafting,
				ContractDate:   ptr(at(-30, 0)),
				BalanceDate:    ptr(at(-1, 0)),
			}

			target, ok := derived.ContractTarget(contract, now)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(target).To(gomega.Equal(domain.ContractStatusMovedIn))
		})

		ginkgo.It("should fall back to the contract rule while the balance date is ahead", func() {
			contract := domain.Contract{
				ID:             "K1",
				ProgressStatus: domain.ContractStatusDrafting,
				ContractDate:   ptr(at(-3, 0)),
				BalanceDate:    ptr(at(5, 0)),
			}

			target, ok := derived.ContractTarget(contract, now)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(target).To(gomega.Equal(domain.ContractStatusBalance))
		})

		ginkgo.It("should not touch contracts without dates", func() {
			contracts := []domain.Contract{
				{ID: "K1", ProgressStatus: domain.ContractStatusDrafting},
				{ID: "K2", ProgressStatus: domain.ContractStatusMovedIn, ContractDate: ptr(at(-90, 0)), BalanceDate: ptr(at(-60, 0))},
				{ID: "K3", ProgressStatus: domain.ContractStatusBalance, ContractDate: ptr(at(-9, 0))},
			}

			gomega.Expect(derived.ReconcileContracts(contracts, now)).To(gomega.BeEmpty())
		})
	})

	ginkgo.It("should never move a contract backward and settle after one pass", func() {
		statuses := []domain.ContractStatus{"", domain.ContractStatusDrafting, domain.ContractStatusBalance, domain.ContractStatusMovedIn, "해지"}
		offsets := []*int{nil, intPtr(-5), intPtr(-1), intPtr(0), intPtr(3)}

		var contracts []domain.Contract
		for i, status := range statuses {
			for j, contractOffset := range offsets {
				for k, balanceOffset := range offsets {
					c := domain.Contract{ID: domain.ID(string(rune('a'+i)) + string(rune('a'+j)) + string(rune('a'+k))), ProgressStatus: status}
					if contractOffset != nil {
						c.ContractDate = ptr(at(*contractOffset, 12))
					}
					if balanceOffset != nil {
						c.BalanceDate = ptr(at(*balanceOffset, 12))
					}
					contracts = append(contracts, c)
				}
			}
		}
		customers := []domain.Customer{customer("A", domain.CustomerStatusNew), customer("B", domain.CustomerStatusNew)}
		meetings := []domain.Meeting{meeting("A", at(-1, 9)), meeting("B", at(2, 9))}

		updates := derived.Reconcile(customers, meetings, contracts, now)
		for _, u := range updates.ContractUpdates {
			if u.From.Rank() > 0 {
				gomega.Expect(u.To.Rank()).To(gomega.BeNumerically(">", u.From.Rank()), "contract %s", u.ContractID)
			}
		}

		nextCustomers, nextContracts := applyUpdates(customers, contracts, updates)
		gomega.Expect(derived.Reconcile(nextCustomers, meetings, nextContracts, now).IsEmpty()).To(gomega.BeTrue())
	})
})

func intPtr(v int) *int {
	return &v
}

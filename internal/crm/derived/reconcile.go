package derived

import (
	"time"

	"brokerage-crm/internal/crm/domain"
)

// Reconcile computes the status corrections implied by the current date.
// It is pure: the caller applies the updates. Running it again over the
// corrected records yields no updates.
func Reconcile(customers []domain.Customer, meetings []domain.Meeting, contracts []domain.Contract, now time.Time) domain.StatusUpdates {
	return domain.StatusUpdates{
		CustomerUpdates: ReconcileCustomers(customers, meetings, now),
		ContractUpdates: ReconcileContracts(contracts, now),
	}
}

// ReconcileCustomers moves 신규 customers with a meeting before today to 진행중.
func ReconcileCustomers(customers []domain.Customer, meetings []domain.Meeting, now time.Time) []domain.CustomerStatusUpdate {
	c := newClock(now)

	met := make(map[domain.ID]bool, len(meetings))
	for _, m := range meetings {
		if c.isBeforeToday(m.Date) {
			met[m.CustomerID] = true
		}
	}

	updates := make([]domain.CustomerStatusUpdate, 0)
	for _, customer := range customers {
		if customer.Status != domain.CustomerStatusNew || !met[customer.ID] {
			continue
		}
		updates = append(updates, domain.CustomerStatusUpdate{
			CustomerID: customer.ID,
			From:       customer.Status,
			To:         domain.CustomerStatusInProgress,
		})
	}
	return updates
}

func ReconcileContracts(contracts []domain.Contract, now time.Time) []domain.ContractStatusUpdate {
	c := newClock(now)

	updates := make([]domain.ContractStatusUpdate, 0)
	for _, contract := range contracts {
		target, ok := contractTarget(contract, c)
		if !ok || target == contract.ProgressStatus {
			continue
		}
		updates = append(updates, domain.ContractStatusUpdate{
			ContractID: contract.ID,
			From:       contract.ProgressStatus,
			To:         target,
		})
	}
	return updates
}

// ContractTarget returns the status contract should hold on the day of now,
// and false when no rule applies.
func ContractTarget(contract domain.Contract, now time.Time) (domain.ContractStatus, bool) {
	return contractTarget(contract, newClock(now))
}

func contractTarget(contract domain.Contract, c clock) (domain.ContractStatus, bool) {
	status := contract.ProgressStatus

	if status != domain.ContractStatusMovedIn && c.dayPassed(contract.BalanceDate) {
		return domain.ContractStatusMovedIn, true
	}

	if status != domain.ContractStatusBalance && status != domain.ContractStatusMovedIn && c.dayPassed(contract.ContractDate) {
		return domain.ContractStatusBalance, true
	}

	return "", false
}

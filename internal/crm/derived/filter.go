package derived

import (
	"time"

	"brokerage-crm/internal/crm/domain"
)

// related groups meetings and activities by customer.
type related struct {
	meetings   map[domain.ID][]domain.Meeting
	activities map[domain.ID][]domain.Activity
}

func newRelated(meetings []domain.Meeting, activities []domain.Activity) related {
	r := related{
		meetings:   make(map[domain.ID][]domain.Meeting),
		activities: make(map[domain.ID][]domain.Activity),
	}
	for _, m := range meetings {
		r.meetings[m.CustomerID] = append(r.meetings[m.CustomerID], m)
	}
	for _, a := range activities {
		r.activities[a.CustomerID] = append(r.activities[a.CustomerID], a)
	}
	return r
}

func (r related) anyMeeting(id domain.ID, match func(domain.Meeting) bool) bool {
	for _, m := range r.meetings[id] {
		if match(m) {
			return true
		}
	}
	return false
}

func (r related) anyActivity(id domain.ID, match func(domain.Activity) bool) bool {
	for _, a := range r.activities[id] {
		if match(a) {
			return true
		}
	}
	return false
}

// FilterCustomers keeps the customers matching filter. Unknown filter names
// compare against the status, refined by progress when it is set.
func FilterCustomers(customers []domain.Customer, meetings []domain.Meeting, activities []domain.Activity, filter domain.CustomerFilter, progress string, now time.Time) []domain.Customer {
	match := customerPredicate(filter, progress, newRelated(meetings, activities), newClock(now))

	result := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if match(customer) {
			result = append(result, customer)
		}
	}
	return result
}

func customerPredicate(filter domain.CustomerFilter, progress string, r related, c clock) func(domain.Customer) bool {
	switch filter {
	case domain.CustomerFilterAll, "":
		return func(domain.Customer) bool { return true }
	case domain.CustomerFilterFavorite:
		return func(cu domain.Customer) bool { return cu.IsFavorite }
	case domain.CustomerFilterLongTerm:
		return func(cu domain.Customer) bool { return cu.Status == domain.CustomerStatusLongTerm }
	case domain.CustomerFilterTodayMeeting:
		return func(cu domain.Customer) bool {
			return r.anyMeeting(cu.ID, func(m domain.Meeting) bool { return c.isToday(m.Date) })
		}
	case domain.CustomerFilterMeetingScheduled:
		return func(cu domain.Customer) bool {
			return r.anyMeeting(cu.ID, func(m domain.Meeting) bool { return c.isAfterToday(m.Date) })
		}
	case domain.CustomerFilterTodayContact:
		return func(cu domain.Customer) bool {
			return r.anyActivity(cu.ID, func(a domain.Activity) bool { return c.isToday(a.Date) })
		}
	case domain.CustomerFilterYesterdayContact:
		return func(cu domain.Customer) bool {
			return r.anyActivity(cu.ID, func(a domain.Activity) bool { return c.isYesterday(a.Date) })
		}
	case domain.CustomerFilterToContact:
		return func(cu domain.Customer) bool {
			if cu.Status == domain.CustomerStatusOnHold {
				return false
			}
			return !r.anyActivity(cu.ID, func(a domain.Activity) bool {
				return c.isToday(a.Date) || c.isYesterday(a.Date)
			})
		}
	case domain.CustomerFilterAwaitingReply:
		// Any activity without a reply flags the customer, however many
		// activities were answered.
		return func(cu domain.Customer) bool {
			return r.anyActivity(cu.ID, func(a domain.Activity) bool {
				return !a.HasFollowUpFrom(domain.FollowUpAuthorReply)
			})
		}
	default:
		return func(cu domain.Customer) bool {
			if string(cu.Status) != string(filter) {
				return false
			}
			return progress == "" || cu.Progress == progress
		}
	}
}

// FilterContracts keeps the contracts matching filter. Unknown filter names
// compare against the progress status.
func FilterContracts(contracts []domain.Contract, filter domain.ContractFilter, now time.Time) []domain.Contract {
	match := contractPredicate(filter, newClock(now))

	result := make([]domain.Contract, 0, len(contracts))
	for _, contract := range contracts {
		if match(contract) {
			result = append(result, contract)
		}
	}
	return result
}

func contractPredicate(filter domain.ContractFilter, c clock) func(domain.Contract) bool {
	switch filter {
	case domain.ContractFilterAll, "":
		return func(domain.Contract) bool { return true }
	case domain.ContractFilterDrafting:
		return func(ct domain.Contract) bool {
			return ct.ProgressStatus == domain.ContractStatusDrafting && c.notBeforeToday(ct.ContractDate)
		}
	case domain.ContractFilterBalance:
		return func(ct domain.Contract) bool {
			return ct.ProgressStatus == domain.ContractStatusBalance && c.notBeforeToday(ct.BalanceDate)
		}
	case domain.ContractFilterThisMonthContract:
		return func(ct domain.Contract) bool { return c.inMonth(ct.ContractDate, 0) }
	case domain.ContractFilterThisMonthBalance:
		return func(ct domain.Contract) bool { return c.inMonth(ct.BalanceDate, 0) }
	case domain.ContractFilterLastMonthRemainder:
		return func(ct domain.Contract) bool { return c.inMonth(ct.RemainderPaymentDate, -1) }
	case domain.ContractFilterThisMonthRemainder:
		return func(ct domain.Contract) bool { return c.inMonth(ct.RemainderPaymentDate, 0) }
	case domain.ContractFilterNextMonthRemainder:
		return func(ct domain.Contract) bool { return c.inMonth(ct.RemainderPaymentDate, 1) }
	default:
		return func(ct domain.Contract) bool { return string(ct.ProgressStatus) == string(filter) }
	}
}

// FilterRows narrows dynamic rows by their category field.
func FilterRows(rows []domain.DynamicTableRow, filter domain.RowFilter) []domain.DynamicTableRow {
	result := make([]domain.DynamicTableRow, 0, len(rows))
	for _, row := range rows {
		category, ok := row.Category()
		switch filter {
		case domain.RowFilterAll, "":
			result = append(result, row)
		case domain.RowFilterUncategorized:
			if !ok {
				result = append(result, row)
			}
		default:
			if ok && category == string(filter) {
				result = append(result, row)
			}
		}
	}
	return result
}

// Package derived turns record snapshots into the filtered, ordered and
// status-corrected views clients render. Every function is pure and reads
// "today" from the location of the now argument.
package derived

import (
	"time"

	"brokerage-crm/internal/crm/domain"
)

// ComputeFilteredSortedCustomers filters customers and applies the order
// tied to the filter.
func ComputeFilteredSortedCustomers(customers []domain.Customer, meetings []domain.Meeting, activities []domain.Activity, filter domain.CustomerFilter, progressFilter string, now time.Time) []domain.Customer {
	filtered := FilterCustomers(customers, meetings, activities, filter, progressFilter, now)
	return SortCustomers(filtered, meetings, activities, filter, now)
}

func ComputeFilteredContracts(contracts []domain.Contract, filter domain.ContractFilter, now time.Time) []domain.Contract {
	return FilterContracts(contracts, filter, now)
}

func ComputeFilteredDynamicRows(rows []domain.DynamicTableRow, filter domain.RowFilter) []domain.DynamicTableRow {
	return FilterRows(rows, filter)
}

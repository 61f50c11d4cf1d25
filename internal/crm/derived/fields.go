package derived

import (
	"strings"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/infra/utils"
)

// normalizeKey lets sort keys arrive as created_at or createdAt.
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

func optionalTime(t *utils.Time) (any, bool) {
	if t == nil {
		return nil, true
	}
	return *t, true
}

// CustomerField exposes the sortable customer columns.
func CustomerField(c domain.Customer, key string) (any, bool) {
	switch normalizeKey(key) {
	case "id":
		return c.ID.String(), true
	case "name":
		return c.Name, true
	case "phone":
		return c.Phone, true
	case "status":
		return string(c.Status), true
	case "progress":
		return c.Progress, true
	case "isfavorite", "favorite":
		return c.IsFavorite, true
	case "source":
		return c.Source, true
	case "preferredarea":
		return c.PreferredArea, true
	case "budget":
		return c.Budget, true
	case "memo":
		return c.Memo, true
	case "createdat":
		return c.CreatedAt, true
	case "updatedat":
		return c.UpdatedAt, true
	}
	return nil, false
}

// ContractField exposes the sortable contract columns.
func ContractField(c domain.Contract, key string) (any, bool) {
	switch normalizeKey(key) {
	case "id":
		return c.ID.String(), true
	case "buildingname":
		return c.BuildingName, true
	case "roomnumber", "roomname":
		return c.RoomNumber, true
	case "landlordname":
		return c.LandlordName, true
	case "landlordphone":
		return c.LandlordPhone, true
	case "tenantname":
		return c.TenantName, true
	case "tenantphone":
		return c.TenantPhone, true
	case "contractdate":
		return optionalTime(c.ContractDate)
	case "balancedate":
		return optionalTime(c.BalanceDate)
	case "expirydate":
		return optionalTime(c.ExpiryDate)
	case "remainderpaymentdate":
		return optionalTime(c.RemainderPaymentDate)
	case "progressstatus", "status":
		return string(c.ProgressStatus), true
	case "brokeragefee":
		return c.BrokerageFee, true
	case "feestatus":
		return c.FeeStatus, true
	case "memo":
		return c.Memo, true
	case "createdat":
		return c.CreatedAt, true
	case "updatedat":
		return c.UpdatedAt, true
	}
	return nil, false
}

// RowField reads a dynamic row column. created_at falls back to the row
// timestamp when the table has no column of that name.
func RowField(r domain.DynamicTableRow, key string) (any, bool) {
	if v, ok := r.Fields[key]; ok {
		return v, true
	}
	if normalizeKey(key) == "createdat" {
		return r.CreatedAt, true
	}
	return nil, false
}

func SortCustomersBy(customers []domain.Customer, state domain.SortState) []domain.Customer {
	return SortBy(customers, state, nil, CustomerField)
}

func SortContractsBy(contracts []domain.Contract, state domain.SortState) []domain.Contract {
	return SortBy(contracts, state, nil, ContractField)
}

func SortRows(rows []domain.DynamicTableRow, state domain.SortState, table domain.DynamicTable) []domain.DynamicTableRow {
	return SortBy(rows, state, table.ColumnTypes(), RowField)
}

package domain

type CustomerStatusUpdate struct {
	CustomerID ID             `json:"customer_id"`
	From       CustomerStatus `json:"from"`
	To         CustomerStatus `json:"to"`
}

type ContractStatusUpdate struct {
	ContractID ID             `json:"contract_id"`
	From       ContractStatus `json:"from"`
	To         ContractStatus `json:"to"`
}

// StatusUpdates are the single-field corrections a reconciliation pass
// asks the store to apply.
type StatusUpdates struct {
	CustomerUpdates []CustomerStatusUpdate `json:"customer_updates"`
	ContractUpdates []ContractStatusUpdate `json:"contract_updates"`
}

func (u StatusUpdates) IsEmpty() bool {
	return len(u.CustomerUpdates) == 0 && len(u.ContractUpdates) == 0
}

func (u StatusUpdates) Len() int {
	return len(u.CustomerUpdates) + len(u.ContractUpdates)
}

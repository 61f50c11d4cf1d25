package domain

type ID string

func (id ID) String() string {
	return string(id)
}

type Version int

type Collection string

const (
	CollectionCustomers  Collection = "customers"
	CollectionMeetings   Collection = "meetings"
	CollectionActivities Collection = "activities"
	CollectionContracts  Collection = "contracts"
	CollectionBuildings  Collection = "buildings"
	CollectionTables     Collection = "tables"
	CollectionRows       Collection = "rows"
)

func (c Collection) String() string {
	return string(c)
}

func Collections() []Collection {
	return []Collection{
		CollectionCustomers,
		CollectionMeetings,
		CollectionActivities,
		CollectionContracts,
		CollectionBuildings,
		CollectionTables,
		CollectionRows,
	}
}

func (c Collection) Valid() bool {
	for _, known := range Collections() {
		if known == c {
			return true
		}
	}
	return false
}

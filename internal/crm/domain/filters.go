package domain

// CustomerFilter names a customer list filter. Values outside the known
// set are compared against the customer status.
type CustomerFilter string

const (
	CustomerFilterAll              CustomerFilter = "전체"
	CustomerFilterFavorite         CustomerFilter = "집중고객"
	CustomerFilterLongTerm         CustomerFilter = "장기관리고객"
	CustomerFilterTodayMeeting     CustomerFilter = "오늘미팅"
	CustomerFilterMeetingScheduled CustomerFilter = "미팅일확정"
	CustomerFilterTodayContact     CustomerFilter = "오늘연락"
	CustomerFilterYesterdayContact CustomerFilter = "어제연락"
	CustomerFilterToContact        CustomerFilter = "연락할고객"
	CustomerFilterAwaitingReply    CustomerFilter = "답장대기"
)

// ContractFilter names a contract list filter. Values outside the known
// set are compared against the progress status.
type ContractFilter string

const (
	ContractFilterAll                ContractFilter = "전체"
	ContractFilterDrafting           ContractFilter = "계약서작성"
	ContractFilterBalance            ContractFilter = "잔금"
	ContractFilterThisMonthContract  ContractFilter = "금월계약"
	ContractFilterThisMonthBalance   ContractFilter = "금월잔금"
	ContractFilterLastMonthRemainder ContractFilter = "전월입금"
	ContractFilterThisMonthRemainder ContractFilter = "금월입금"
	ContractFilterNextMonthRemainder ContractFilter = "다음달입금"
)

// RowFilter narrows dynamic table rows by their category field.
type RowFilter string

const (
	RowFilterAll           RowFilter = "전체"
	RowFilterUncategorized RowFilter = "미분류"
)

package model

// ExpenseRow is one synthesized row of the expenses table.
type ExpenseRow struct {
	OrganizationID string
	AccountID      string
	AccountName    string
	Total          int64
	Finalistica    int64 // mission-related share of Total
}

// RevenueRow is one synthesized row of the revenues table.
type RevenueRow struct {
	OrganizationID string
	AccountID      string
	Value          int64
}

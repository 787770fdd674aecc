package model

// AccountType classifies entries in a reference chart of accounts.
type AccountType string

const (
	// AccountTypeAnalytic marks a leaf account that receives postings directly.
	AccountTypeAnalytic AccountType = "Analítica"
	// AccountTypeSynthetic marks an aggregate account used only for rollups.
	AccountTypeSynthetic AccountType = "Sintética"
)

// Account is one entry from an expense or revenue reference file.
type Account struct {
	ID       string      `json:"id"`
	Code     string      `json:"code,omitempty"`
	Group    string      `json:"group,omitempty"`
	Subgroup string      `json:"subgroup,omitempty"`
	Type     AccountType `json:"type"`
	Name     string      `json:"name"`
}

// IsAnalytic reports whether the account is a leaf account.
func (a Account) IsAnalytic() bool {
	return a.Type == AccountTypeAnalytic
}

package seed

import (
	"fmt"

	"github.com/cleared-dev/seedgen/internal/id"
	"github.com/cleared-dev/seedgen/internal/model"
)

// ValidationError describes a single invariant violation in a generated row.
type ValidationError struct {
	Invariant    int
	Organization string
	Account      string
	Description  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s/%s]: %s", e.Invariant, e.Organization, e.Account, e.Description)
}

// ValidateExpense checks an expense row against the generation ranges.
func ValidateExpense(row model.ExpenseRow, r Ranges) []ValidationError {
	errs := validateRefs(row.OrganizationID, row.AccountID)

	// Invariant 1: total within range.
	if row.Total < r.TotalMin || row.Total > r.TotalMax {
		errs = append(errs, ValidationError{
			Invariant:    1,
			Organization: row.OrganizationID,
			Account:      row.AccountID,
			Description:  fmt.Sprintf("total %d outside [%d, %d]", row.Total, r.TotalMin, r.TotalMax),
		})
	}

	// Invariant 2: 0 <= finalistica <= total.
	if row.Finalistica < 0 || row.Finalistica > row.Total {
		errs = append(errs, ValidationError{
			Invariant:    2,
			Organization: row.OrganizationID,
			Account:      row.AccountID,
			Description:  fmt.Sprintf("finalistica %d outside [0, %d]", row.Finalistica, row.Total),
		})
	}

	return errs
}

// ValidateRevenue checks a revenue row against the generation ranges.
func ValidateRevenue(row model.RevenueRow, r Ranges) []ValidationError {
	errs := validateRefs(row.OrganizationID, row.AccountID)

	// Invariant 1: value within range.
	if row.Value < r.RevenueMin || row.Value > r.RevenueMax {
		errs = append(errs, ValidationError{
			Invariant:    1,
			Organization: row.OrganizationID,
			Account:      row.AccountID,
			Description:  fmt.Sprintf("value %d outside [%d, %d]", row.Value, r.RevenueMin, r.RevenueMax),
		})
	}

	return errs
}

func validateRefs(orgID, accountID string) []ValidationError {
	var errs []ValidationError

	// Invariant 3: well-formed organization reference.
	if _, _, err := id.ParseOrganizationID(orgID); err != nil {
		errs = append(errs, ValidationError{
			Invariant:    3,
			Organization: orgID,
			Account:      accountID,
			Description:  err.Error(),
		})
	}

	// Invariant 4: account reference present.
	if accountID == "" {
		errs = append(errs, ValidationError{
			Invariant:    4,
			Organization: orgID,
			Account:      accountID,
			Description:  "missing account id",
		})
	}

	return errs
}

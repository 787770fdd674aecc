package id

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/seedgen/internal/model"
)

// FederalID is the identifier of the federal council.
const FederalID = "cfa"

// FormatOrganizationID returns an organization ID like "cfa" or "cra-sp".
func FormatOrganizationID(orgType model.OrganizationType, state string) string {
	if orgType == model.OrganizationTypeFederal {
		return FederalID
	}
	return strings.ToLower(string(orgType)) + "-" + strings.ToLower(state)
}

// FormatRegionalName returns the display name of a regional council, e.g. "CRA-SP".
func FormatRegionalName(state string) string {
	return string(model.OrganizationTypeRegional) + "-" + strings.ToUpper(state)
}

// ParseOrganizationID splits "cra-sp" into its type and state.
// The federal ID parses to type CFA with an empty state.
func ParseOrganizationID(id string) (model.OrganizationType, string, error) {
	if id == FederalID {
		return model.OrganizationTypeFederal, "", nil
	}

	prefix, state, ok := strings.Cut(id, "-")
	if !ok || prefix != "cra" {
		return "", "", fmt.Errorf("invalid organization ID format: %q", id)
	}
	if len(state) != 2 {
		return "", "", fmt.Errorf("invalid state in organization ID %q", id)
	}
	for _, r := range state {
		if r < 'a' || r > 'z' {
			return "", "", fmt.Errorf("invalid state in organization ID %q", id)
		}
	}
	return model.OrganizationTypeRegional, strings.ToUpper(state), nil
}

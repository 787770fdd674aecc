package organizations

import (
	"github.com/cleared-dev/seedgen/internal/id"
	"github.com/cleared-dev/seedgen/internal/model"
)

// regionalStates lists the states with a regional council, in declaration order.
var regionalStates = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO",
	"MA", "MG", "MS", "MT", "PA", "PB", "PE", "PI", "PR",
	"RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
}

// Councils returns the federal council followed by the 27 regional councils.
// Each call returns a fresh slice.
func Councils() []model.Organization {
	orgs := make([]model.Organization, 0, len(regionalStates)+1)
	orgs = append(orgs, model.Organization{
		ID:    id.FederalID,
		Name:  "CFA - Conselho Federal",
		Type:  model.OrganizationTypeFederal,
		State: "DF",
	})
	for _, uf := range regionalStates {
		orgs = append(orgs, model.Organization{
			ID:    id.FormatOrganizationID(model.OrganizationTypeRegional, uf),
			Name:  id.FormatRegionalName(uf),
			Type:  model.OrganizationTypeRegional,
			State: uf,
		})
	}
	return orgs
}

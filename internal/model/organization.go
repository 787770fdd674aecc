package model

// OrganizationType distinguishes the federal council from regional ones.
type OrganizationType string

const (
	OrganizationTypeFederal  OrganizationType = "CFA"
	OrganizationTypeRegional OrganizationType = "CRA"
)

// Organization is a council that receives one seed row per account.
type Organization struct {
	ID    string
	Name  string
	Type  OrganizationType
	State string // two-letter UF code
}

package constants

const (
	// UnknownTenant stands in for a tenant the model could not name.
	UnknownTenant = "Unknown Tenant"
	// PortfolioOwner is the REIT the scorecard rubric is written for.
	PortfolioOwner = "FCPT"
	// ScorecardTitle prefixes the header cell.
	ScorecardTitle = PortfolioOwner + " Scorecard"
)

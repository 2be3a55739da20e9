package scoring

import (
	"github.com/joseph-ayodele/om-scorecard/constants"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

// Numeric attributes accept anything deal.ParseNumeric does.

func RestaurantAutoMedical(val string) float64 {
	return RestaurantAutoMedicalRules.Lookup(val).Score
}

func RestaurantAutoMedicalComment(tenant, val string) string {
	return render(RestaurantAutoMedicalRules.Lookup(val).Comment, commentVars{tenant: tenant})
}

func SingleTenant(val string) float64 {
	return SingleTenantRules.Lookup(val).Score
}

func SingleTenantComment(val string) string {
	return SingleTenantRules.Lookup(val).Comment
}

// PortfolioTarget scores both the target-brand and target-geography lines.
func PortfolioTarget() float64 { return PortfolioTargetScore }

func PortfolioBrandComment(tenant string) string {
	return tenant + " is a target brand for " + constants.PortfolioOwner
}

func PortfolioGeographyComment(state string) string {
	if state == "" {
		return "Location is an attractive market for " + constants.PortfolioOwner
	}
	return state + " is an attractive market for " + constants.PortfolioOwner
}

func Acreage(v any) float64 {
	return AcreageTable.Lookup(deal.ParseNumeric(v).Value).Score
}

func AcreageComment(v any) string {
	n := deal.ParseNumeric(v)
	return render(AcreageTable.Lookup(n.Value).Comment, commentVars{value: n.String()})
}

func DriveThru(val string) float64 {
	return DriveThruRules.Lookup(val).Score
}

func DriveThruComment(val, tenant string) string {
	return render(DriveThruRules.Lookup(val).Comment, commentVars{tenant: tenant})
}

func BoxSize(v any) float64 {
	return BoxSizeTable.Lookup(deal.ParseNumeric(v).Value).Score
}

func BoxSizeComment(v any) string {
	n := deal.ParseNumeric(v)
	return render(BoxSizeTable.Lookup(n.Value).Comment, commentVars{value: grouped0(n.Value)})
}

func NationalLocations(v any) float64 {
	return NationalLocationsTable.Lookup(deal.ParseNumeric(v).Value).Score
}

func NationalLocationsComment(v any, tenant string) string {
	n := deal.ParseNumeric(v)
	return render(NationalLocationsTable.Lookup(n.Value).Comment, commentVars{tenant: tenant, value: grouped0(n.Value)})
}

func LeaseStructure(val string) float64 {
	return LeaseStructureRules.Lookup(val).Score
}

func LeaseStructureComment(val string) string {
	return LeaseStructureRules.Lookup(val).Comment
}

func LeaseTerm(v any) float64 {
	return LeaseTermTable.Lookup(deal.ParseNumeric(v).Value).Score
}

func LeaseTermComment(v any) string {
	n := deal.ParseNumeric(v)
	return render(LeaseTermTable.Lookup(n.Value).Comment, commentVars{value: grouped1(n.Value)})
}

func rentBand(rent float64, bt constants.BuildingType) Band {
	t, ok := AbsoluteRentTables[bt]
	if !ok {
		return unknownRentBand
	}
	return t.Lookup(rent)
}

func AbsoluteRent(v any, bt constants.BuildingType) float64 {
	return rentBand(deal.ParseNumeric(v).Value, bt).Score
}

func AbsoluteRentComment(v any, bt constants.BuildingType) string {
	n := deal.ParseNumeric(v)
	return render(rentBand(n.Value, bt).Comment, commentVars{value: grouped0(n.Value)})
}

func RentGrowth(v any) float64 {
	return RentGrowthTable.Lookup(deal.ParseNumeric(v).Value).Score
}

func RentGrowthComment(v any) string {
	n := deal.ParseNumeric(v)
	return render(RentGrowthTable.Lookup(n.Value).Comment, commentVars{value: fixed1(n.Value)})
}

// HeaderAddress is the title line written above the rubric.
func HeaderAddress(addr deal.Address, tenant string) string {
	line := addr.OneLine()
	if line == "" {
		return constants.ScorecardTitle + ": " + tenant
	}
	return constants.ScorecardTitle + ": " + tenant + ", " + line
}

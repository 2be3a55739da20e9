package scoring

import (
	"github.com/joseph-ayodele/om-scorecard/constants"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

// Attribute names one scored line of the scorecard.
type Attribute string

const (
	AttrRestaurantAutoMedical Attribute = "restaurant_auto_medical"
	AttrSingleTenant          Attribute = "single_tenant"
	AttrPortfolioBrand        Attribute = "portfolio_target_brand"
	AttrPortfolioGeography    Attribute = "portfolio_target_geography"
	AttrAcreage               Attribute = "acreage"
	AttrDriveThru             Attribute = "drive_thru_carry_out"
	AttrBoxSize               Attribute = "box_size"
	AttrNationalLocations     Attribute = "national_locations"
	AttrLeaseStructure        Attribute = "lease_structure"
	AttrLeaseTerm             Attribute = "lease_term"
	AttrAbsoluteRent          Attribute = "absolute_rent"
	AttrRentGrowth            Attribute = "rent_growth"
)

// Attributes lists every scored attribute in template order.
var Attributes = []Attribute{
	AttrRestaurantAutoMedical,
	AttrSingleTenant,
	AttrPortfolioBrand,
	AttrPortfolioGeography,
	AttrAcreage,
	AttrDriveThru,
	AttrBoxSize,
	AttrNationalLocations,
	AttrLeaseStructure,
	AttrLeaseTerm,
	AttrAbsoluteRent,
	AttrRentGrowth,
}

// Entry is one scored line.
type Entry struct {
	Attribute Attribute `json:"attribute"`
	Score     float64   `json:"score"`
	Label     string    `json:"label"`
	Comment   string    `json:"comment"`
}

type Scorecard struct {
	Header       string                 `json:"header"`
	Tenant       string                 `json:"tenant"`
	BuildingType constants.BuildingType `json:"building_type"`
	Entries      []Entry                `json:"entries"`
}

// Total sums every entry's score.
func (s Scorecard) Total() float64 {
	var sum float64
	for _, e := range s.Entries {
		sum += e.Score
	}
	return sum
}

func (s Scorecard) Entry(a Attribute) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Attribute == a {
			return e, true
		}
	}
	return Entry{}, false
}

func bandEntry(a Attribute, b Band, vars commentVars) Entry {
	return Entry{Attribute: a, Score: b.Score, Label: b.Label, Comment: render(b.Comment, vars)}
}

func ruleEntry(a Attribute, r Rule, vars commentVars) Entry {
	return Entry{Attribute: a, Score: r.Score, Label: r.Label, Comment: render(r.Comment, vars)}
}

// Score runs the rubric over normalized fields.
func Score(f deal.Fields) Scorecard {
	tenant := f.Tenant(constants.UnknownTenant)
	state := f.Address.State.String()
	driveThru := f.DriveThruCarryOut.String()
	bt := constants.BuildingTypeFromDriveThru(driveThru)

	acreage := deal.ParseNumeric(f.Acreage)
	box := deal.ParseNumeric(f.BoxSize)
	locations := deal.ParseNumeric(f.NationalLocations)
	term := deal.ParseNumeric(f.LeaseTerm.Years)
	rent := deal.ParseNumeric(f.AbsoluteRent)
	growth := deal.ParseNumeric(f.RentGrowth)

	entries := []Entry{
		ruleEntry(AttrRestaurantAutoMedical, RestaurantAutoMedicalRules.Lookup(f.RestaurantAutoMedical.String()), commentVars{tenant: tenant}),
		ruleEntry(AttrSingleTenant, SingleTenantRules.Lookup(f.SingleTenant.String()), commentVars{}),
		{Attribute: AttrPortfolioBrand, Score: PortfolioTarget(), Label: "target", Comment: PortfolioBrandComment(tenant)},
		{Attribute: AttrPortfolioGeography, Score: PortfolioTarget(), Label: "target", Comment: PortfolioGeographyComment(state)},
		bandEntry(AttrAcreage, AcreageTable.Lookup(acreage.Value), commentVars{value: acreage.String()}),
		ruleEntry(AttrDriveThru, DriveThruRules.Lookup(driveThru), commentVars{tenant: tenant}),
		bandEntry(AttrBoxSize, BoxSizeTable.Lookup(box.Value), commentVars{value: grouped0(box.Value)}),
		bandEntry(AttrNationalLocations, NationalLocationsTable.Lookup(locations.Value), commentVars{tenant: tenant, value: grouped0(locations.Value)}),
		ruleEntry(AttrLeaseStructure, LeaseStructureRules.Lookup(f.LeaseStructure.String()), commentVars{}),
		bandEntry(AttrLeaseTerm, LeaseTermTable.Lookup(term.Value), commentVars{value: grouped1(term.Value)}),
		bandEntry(AttrAbsoluteRent, rentBand(rent.Value, bt), commentVars{value: grouped0(rent.Value)}),
		bandEntry(AttrRentGrowth, RentGrowthTable.Lookup(growth.Value), commentVars{value: fixed1(growth.Value)}),
	}

	return Scorecard{
		Header:       HeaderAddress(f.Address, tenant),
		Tenant:       tenant,
		BuildingType: bt,
		Entries:      entries,
	}
}

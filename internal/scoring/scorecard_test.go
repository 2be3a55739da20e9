package scoring

import (
	"testing"

	"github.com/joseph-ayodele/om-scorecard/constants"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

func sampleFields() deal.Fields {
	return deal.Normalize(deal.Fields{
		LeaseStructure:        deal.Text("NNN"),
		LeaseTerm:             deal.LeaseTerm{Years: deal.Text("12.5")},
		AbsoluteRent:          deal.Int(185000),
		RentGrowth:            deal.Float(1.5),
		Acreage:               deal.Float(1.0),
		RestaurantAutoMedical: deal.Text("Yes"),
		SingleTenant:          deal.Text("Yes"),
		DriveThruCarryOut:     deal.Text("CDR"),
		BoxSize:               deal.Int(4500),
		Address: deal.Address{
			Line1: deal.Text("10 Elm St"),
			City:  deal.Text("Dayton"),
			State: deal.Text("OH"),
			Zip:   deal.Text("45402"),
		},
		YearBuilt:         deal.Int(2015),
		CurrentTenant:     deal.Text("Olive Garden"),
		NationalLocations: deal.Int(900),
	})
}

func TestScore(t *testing.T) {
	sc := Score(sampleFields())

	if len(sc.Entries) != len(Attributes) {
		t.Fatalf("got %d entries, want %d", len(sc.Entries), len(Attributes))
	}
	for i, a := range Attributes {
		if sc.Entries[i].Attribute != a {
			t.Errorf("entry %d is %s, want %s", i, sc.Entries[i].Attribute, a)
		}
	}
	if sc.BuildingType != constants.CDR {
		t.Errorf("building type = %s, want CDR", sc.BuildingType)
	}
	if sc.Header != "FCPT Scorecard: Olive Garden, 10 Elm St Dayton, OH 45402" {
		t.Errorf("header = %q", sc.Header)
	}

	want := map[Attribute]struct {
		score   float64
		comment string
	}{
		AttrRestaurantAutoMedical: {2, "Olive Garden is a restaurant/auto/medical tenant"},
		AttrSingleTenant:          {2, "Free-standing, single-tenant asset"},
		AttrPortfolioBrand:        {1, "Olive Garden is a target brand for FCPT"},
		AttrPortfolioGeography:    {1, "OH is an attractive market for FCPT"},
		AttrAcreage:               {4, "Moderate parcel size of 1.0 acres"},
		AttrDriveThru:             {2, "Olive Garden has carry-out capability"},
		AttrBoxSize:               {2, "Optimal box size of 4,500 square feet"},
		AttrNationalLocations:     {2.5, "Olive Garden has strong national presence with 900 locations"},
		AttrLeaseStructure:        {1, "NNN lease structure"},
		AttrLeaseTerm:             {4, "Long remaining lease term of 12.5 years"},
		AttrAbsoluteRent:          {7, "Attractive rent of $185,000 for CDR"},
		AttrRentGrowth:            {1.5, "Strong annual rent growth of 1.5%"},
	}
	for a, w := range want {
		e, ok := sc.Entry(a)
		if !ok {
			t.Fatalf("missing entry %s", a)
		}
		if e.Score != w.score {
			t.Errorf("%s score = %v, want %v", a, e.Score, w.score)
		}
		if e.Comment != w.comment {
			t.Errorf("%s comment = %q, want %q", a, e.Comment, w.comment)
		}
	}
	if got := sc.Total(); got != 30 {
		t.Errorf("total = %v, want 30", got)
	}
}

func TestScoreEmptyFields(t *testing.T) {
	sc := Score(deal.Normalize(deal.Fields{}))
	if sc.Tenant != constants.UnknownTenant {
		t.Errorf("tenant = %q", sc.Tenant)
	}
	if sc.BuildingType != constants.QSR {
		t.Errorf("building type = %s, want QSR", sc.BuildingType)
	}
	e, _ := sc.Entry(AttrAbsoluteRent)
	// a missing rent parses as 0, which is the cheapest bucket
	if e.Score != 8 {
		t.Errorf("absolute rent score = %v, want 8", e.Score)
	}
	e, _ = sc.Entry(AttrDriveThru)
	if e.Score != 0 || e.Comment != "Drive-thru/carry-out availability not specified" {
		t.Errorf("drive-thru entry = %+v", e)
	}
	e, _ = sc.Entry(AttrPortfolioGeography)
	if e.Comment != "Location is an attractive market for FCPT" {
		t.Errorf("geography comment = %q", e.Comment)
	}
}

package scoring

import (
	"testing"

	"github.com/joseph-ayodele/om-scorecard/constants"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

func TestAcreage(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"0.4", 0},
		{"0.5", 2},
		{"0.6", 2},
		{"0.75", 4},
		{"0.9", 4},
		{"1.25", 5},
		{"1.3", 5},
		{"1.75", 6},
		{"1.8", 6},
		{"2.25", 6},
		{"2.3", 7},
		{"3.0", 7},
		{"", 0},
		{nil, 0},
		{"1.5 acres", 5},
	}
	for _, tc := range cases {
		if got := Acreage(tc.in); got != tc.want {
			t.Errorf("Acreage(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAcreageComment(t *testing.T) {
	cases := map[string]string{
		"1.0":  "Moderate parcel size of 1.0 acres",
		"2.8":  "Large parcel size of 2.8 acres",
		"0.3":  "Very small parcel size of 0.3 acres",
		"2":    "Good parcel size of 2 acres",
		"0.55": "Small parcel size of 0.55 acres",
	}
	for in, want := range cases {
		if got := AcreageComment(in); got != want {
			t.Errorf("AcreageComment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAbsoluteRent(t *testing.T) {
	cases := []struct {
		in   string
		bt   constants.BuildingType
		want float64
	}{
		{"169999", constants.CDR, 8},
		{"170000", constants.CDR, 7},
		{"209999", constants.CDR, 7},
		{"210000", constants.CDR, 6},
		{"250000", constants.CDR, 5},
		{"285000", constants.CDR, 3},
		{"329999", constants.CDR, 3},
		{"330000", constants.CDR, 0},
		{"89999", constants.QSR, 8},
		{"90000", constants.QSR, 7},
		{"110000", constants.QSR, 6},
		{"135000", constants.QSR, 5},
		{"150000", constants.QSR, 3},
		{"170001", constants.QSR, 0},
		{"$1,000", constants.BuildingType("OTHER"), 0},
	}
	for _, tc := range cases {
		if got := AbsoluteRent(tc.in, tc.bt); got != tc.want {
			t.Errorf("AbsoluteRent(%q, %s) = %v, want %v", tc.in, tc.bt, got, tc.want)
		}
	}
}

func TestAbsoluteRentComment(t *testing.T) {
	if got, want := AbsoluteRentComment("85000", constants.QSR), "Very attractive rent of $85,000 for QSR"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := AbsoluteRentComment("$300,000", constants.CDR), "Very high rent of $300,000 for CDR"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := AbsoluteRentComment("1200", constants.BuildingType("OTHER")), "Rent: $1,200"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBoxSize(t *testing.T) {
	cases := []struct {
		in      string
		score   float64
		comment string
	}{
		{"2,800 SF", 2, "Optimal box size of 2,800 square feet"},
		{"2000", 2, "Optimal box size of 2,000 square feet"},
		{"9000", 2, "Optimal box size of 9,000 square feet"},
		{"1999", 0, "Box size of 1,999 square feet is below optimal range"},
		{"9001", 0, "Box size of 9,001 square feet is above optimal range"},
	}
	for _, tc := range cases {
		if got := BoxSize(tc.in); got != tc.score {
			t.Errorf("BoxSize(%q) = %v, want %v", tc.in, got, tc.score)
		}
		if got := BoxSizeComment(tc.in); got != tc.comment {
			t.Errorf("BoxSizeComment(%q) = %q, want %q", tc.in, got, tc.comment)
		}
	}
}

func TestNationalLocations(t *testing.T) {
	cases := []struct {
		in    string
		score float64
	}{
		{"601", 2.5},
		{"600", 1.5},
		{"301", 1.5},
		{"300", 1},
		{"101", 1},
		{"100", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := NationalLocations(tc.in); got != tc.score {
			t.Errorf("NationalLocations(%q) = %v, want %v", tc.in, got, tc.score)
		}
	}
	if got, want := NationalLocationsComment("1,500", "Taco Bell"), "Taco Bell has strong national presence with 1,500 locations"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLeaseTerm(t *testing.T) {
	cases := []struct {
		in    any
		score float64
	}{
		{"15.5", 5},
		{"15", 4},
		{"10", 4},
		{"9.99", 3},
		{"7.5", 3},
		{"5", 2},
		{"3", 1},
		{"2.9", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := LeaseTerm(tc.in); got != tc.score {
			t.Errorf("LeaseTerm(%v) = %v, want %v", tc.in, got, tc.score)
		}
	}
	if got, want := LeaseTermComment("12.34"), "Long remaining lease term of 12.3 years"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRentGrowth(t *testing.T) {
	cases := []struct {
		in      string
		score   float64
		comment string
	}{
		{"0.4", 0, "Minimal annual rent growth of 0.4%"},
		{"0.5", 1, "Moderate annual rent growth of 0.5%"},
		{"1.25", 1.5, "Strong annual rent growth of 1.2%"},
		{"1.8", 1.5, "Strong annual rent growth of 1.8%"},
		{"2.25", 1.5, "Strong annual rent growth of 2.2%"},
		{"2.5", 0, "Very high annual rent growth of 2.5%"},
	}
	for _, tc := range cases {
		if got := RentGrowth(tc.in); got != tc.score {
			t.Errorf("RentGrowth(%q) = %v, want %v", tc.in, got, tc.score)
		}
		if got := RentGrowthComment(tc.in); got != tc.comment {
			t.Errorf("RentGrowthComment(%q) = %q, want %q", tc.in, got, tc.comment)
		}
	}
}

func TestTextAttributes(t *testing.T) {
	if RestaurantAutoMedical(" YES ") != 2 || RestaurantAutoMedical("no") != 0 {
		t.Error("restaurant/auto/medical should only score an explicit yes")
	}
	if got, want := RestaurantAutoMedicalComment("Wendy's", "Yes"), "Wendy's is a restaurant/auto/medical tenant"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if SingleTenant("Yes") != 2 || SingleTenant("") != 0 {
		t.Error("single tenant should only score an explicit yes")
	}
	if got := SingleTenantComment("no"); got != "Multi-tenant property" {
		t.Errorf("got %q", got)
	}

	lease := []struct {
		in    string
		score float64
	}{
		{"Absolute NNN", 1},
		{"NNN Master Lease", 1.5},
		{"NN", 0},
		{"Meaningful LL obligations", 0},
		{"", 0},
		{"Gross", 0},
	}
	for _, tc := range lease {
		if got := LeaseStructure(tc.in); got != tc.score {
			t.Errorf("LeaseStructure(%q) = %v, want %v", tc.in, got, tc.score)
		}
	}
	if got := LeaseStructureComment(""); got != "Lease structure not specified" {
		t.Errorf("got %q", got)
	}
}

func TestDriveThru(t *testing.T) {
	cases := []struct {
		in      string
		score   float64
		comment string
	}{
		{"QSR", 2, "Arby's has a drive-thru"},
		{"cdr", 2, "Arby's has carry-out capability"},
		{"NA", 2, "Not applicable for this tenant type"},
		{"na", 2, "Not applicable for this tenant type"},
		{"", 0, "Drive-thru/carry-out availability not specified"},
		{"none", 0, "No drive-thru or carry-out capability"},
	}
	for _, tc := range cases {
		if got := DriveThru(tc.in); got != tc.score {
			t.Errorf("DriveThru(%q) = %v, want %v", tc.in, got, tc.score)
		}
		if got := DriveThruComment(tc.in, "Arby's"); got != tc.comment {
			t.Errorf("DriveThruComment(%q) = %q, want %q", tc.in, got, tc.comment)
		}
	}
}

func TestPortfolioComments(t *testing.T) {
	if PortfolioTarget() != 1 {
		t.Fatal("portfolio target is a constant 1")
	}
	if got := PortfolioBrandComment("Sonic"); got != "Sonic is a target brand for FCPT" {
		t.Errorf("got %q", got)
	}
	if got := PortfolioGeographyComment("TX"); got != "TX is an attractive market for FCPT" {
		t.Errorf("got %q", got)
	}
	if got := PortfolioGeographyComment(""); got != "Location is an attractive market for FCPT" {
		t.Errorf("got %q", got)
	}
}

func TestHeaderAddress(t *testing.T) {
	addr := deal.Address{
		Line1: deal.Text("123 Main St"),
		City:  deal.Text("Austin"),
		State: deal.Text("TX"),
		Zip:   deal.Text("78701"),
	}
	if got, want := HeaderAddress(addr, "Chick-fil-A"), "FCPT Scorecard: Chick-fil-A, 123 Main St Austin, TX 78701"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := HeaderAddress(deal.Address{}, "Chick-fil-A"), "FCPT Scorecard: Chick-fil-A"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

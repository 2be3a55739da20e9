package export

import (
	"strings"

	"github.com/joseph-ayodele/om-scorecard/internal/scoring"
)

// HeaderCell holds the "FCPT Scorecard: ..." title.
const HeaderCell = "C3"

// Cells is where one attribute lands in the template. Comment is a merged
// range; only its top-left anchor is written.
type Cells struct {
	Score   string
	Comment string
}

// Anchor is the top-left cell of the comment range.
func (c Cells) Anchor() string {
	anchor, _, _ := strings.Cut(c.Comment, ":")
	return anchor
}

// Layout is the template's cell contract.
var Layout = map[scoring.Attribute]Cells{
	scoring.AttrRestaurantAutoMedical: {Score: "L8", Comment: "N7:N8"},
	scoring.AttrSingleTenant:          {Score: "L10", Comment: "N9:N10"},
	scoring.AttrPortfolioBrand:        {Score: "L12", Comment: "N11:N12"},
	scoring.AttrPortfolioGeography:    {Score: "L14", Comment: "N13:N14"},
	scoring.AttrAcreage:               {Score: "L30", Comment: "N29:N30"},
	scoring.AttrDriveThru:             {Score: "L36", Comment: "N35:N36"},
	scoring.AttrBoxSize:               {Score: "L38", Comment: "N37:N38"},
	scoring.AttrNationalLocations:     {Score: "L62", Comment: "N60:N62"},
	scoring.AttrLeaseStructure:        {Score: "L72", Comment: "N71:N72"},
	scoring.AttrLeaseTerm:             {Score: "L74", Comment: "N73:N74"},
	scoring.AttrAbsoluteRent:          {Score: "L78", Comment: "N75:N78"},
	scoring.AttrRentGrowth:            {Score: "L81", Comment: "N79:N81"},
}

package scoring

import (
	"github.com/joseph-ayodele/om-scorecard/constants"
)

// Comment templates may reference {tenant}, {value} and {state}.

var AcreageTable = Table{
	Bands: []Band{
		above(2.25, 7, "large", "Large parcel size of {value} acres"),
		closed(1.75, 2.25, 6, "good", "Good parcel size of {value} acres"),
		rightOpen(1.25, 1.75, 5, "adequate", "Adequate parcel size of {value} acres"),
		rightOpen(0.75, 1.25, 4, "moderate", "Moderate parcel size of {value} acres"),
		rightOpen(0.5, 0.75, 2, "small", "Small parcel size of {value} acres"),
	},
	Fallback: otherwise(0, "very small", "Very small parcel size of {value} acres"),
}

var BoxSizeTable = Table{
	Bands: []Band{
		closed(2000, 9000, 2, "optimal", "Optimal box size of {value} square feet"),
		below(2000, 0, "below range", "Box size of {value} square feet is below optimal range"),
	},
	Fallback: otherwise(0, "above range", "Box size of {value} square feet is above optimal range"),
}

var NationalLocationsTable = Table{
	Bands: []Band{
		above(600, 2.5, "strong", "{tenant} has strong national presence with {value} locations"),
		leftOpen(300, 600, 1.5, "moderate", "{tenant} has moderate national presence with {value} locations"),
		leftOpen(100, 300, 1, "limited", "{tenant} has limited national presence with {value} locations"),
	},
	Fallback: otherwise(0, "minimal", "{tenant} has minimal national presence with {value} locations"),
}

var LeaseTermTable = Table{
	Bands: []Band{
		above(15, 5, "very long", "Very long remaining lease term of {value} years"),
		closed(10, 15, 4, "long", "Long remaining lease term of {value} years"),
		rightOpen(7.5, 10, 3, "moderate", "Moderate remaining lease term of {value} years"),
		rightOpen(5, 7.5, 2, "short", "Short remaining lease term of {value} years"),
		rightOpen(3, 5, 1, "very short", "Very short remaining lease term of {value} years"),
	},
	Fallback: otherwise(0, "extremely short", "Extremely short remaining lease term of {value} years"),
}

var RentGrowthTable = Table{
	Bands: []Band{
		below(0.5, 0, "minimal", "Minimal annual rent growth of {value}%"),
		rightOpen(0.5, 1.25, 1, "moderate", "Moderate annual rent growth of {value}%"),
		closed(1.25, 2.25, 1.5, "strong", "Strong annual rent growth of {value}%"),
	},
	Fallback: otherwise(0, "very high", "Very high annual rent growth of {value}%"),
}

// AbsoluteRentTables holds one table per building type. Thresholds are
// annual dollars.
var AbsoluteRentTables = map[constants.BuildingType]Table{
	constants.CDR: {
		Bands: []Band{
			below(170000, 8, "very attractive", "Very attractive rent of ${value} for CDR"),
			rightOpen(170000, 210000, 7, "attractive", "Attractive rent of ${value} for CDR"),
			rightOpen(210000, 250000, 6, "moderate", "Moderate rent of ${value} for CDR"),
			rightOpen(250000, 285000, 5, "high", "High rent of ${value} for CDR"),
			rightOpen(285000, 330000, 3, "very high", "Very high rent of ${value} for CDR"),
		},
		Fallback: otherwise(0, "extremely high", "Extremely high rent of ${value} for CDR"),
	},
	constants.QSR: {
		Bands: []Band{
			below(90000, 8, "very attractive", "Very attractive rent of ${value} for QSR"),
			rightOpen(90000, 110000, 7, "attractive", "Attractive rent of ${value} for QSR"),
			rightOpen(110000, 135000, 6, "moderate", "Moderate rent of ${value} for QSR"),
			rightOpen(135000, 150000, 5, "high", "High rent of ${value} for QSR"),
			rightOpen(150000, 170000, 3, "very high", "Very high rent of ${value} for QSR"),
		},
		Fallback: otherwise(0, "extremely high", "Extremely high rent of ${value} for QSR"),
	},
}

// unknownRentBand scores rent for a building type with no table.
var unknownRentBand = otherwise(0, "unrated", "Rent: ${value}")

var RestaurantAutoMedicalRules = Rules{
	Rules: []Rule{
		{Match: equals("yes"), Score: 2, Label: "yes", Comment: "{tenant} is a restaurant/auto/medical tenant"},
	},
	Fallback: Rule{Score: 0, Label: "no", Comment: "Not a restaurant/auto/medical tenant"},
}

var SingleTenantRules = Rules{
	Rules: []Rule{
		{Match: equals("yes"), Score: 2, Label: "yes", Comment: "Free-standing, single-tenant asset"},
	},
	Fallback: Rule{Score: 0, Label: "no", Comment: "Multi-tenant property"},
}

// DriveThruRules treats "na" case-insensitively, so a non-restaurant tenant
// reported as "NA" scores like a drive-thru or carry-out operator.
var DriveThruRules = Rules{
	Rules: []Rule{
		{Match: isEmpty, Score: 0, Label: "unspecified", Comment: "Drive-thru/carry-out availability not specified"},
		{Match: equals("na"), Score: 2, Label: "not applicable", Comment: "Not applicable for this tenant type"},
		{Match: contains("qsr"), Score: 2, Label: "drive-thru", Comment: "{tenant} has a drive-thru"},
		{Match: contains("cdr"), Score: 2, Label: "carry-out", Comment: "{tenant} has carry-out capability"},
	},
	Fallback: Rule{Score: 0, Label: "none", Comment: "No drive-thru or carry-out capability"},
}

var LeaseStructureRules = Rules{
	Rules: []Rule{
		{Match: isEmpty, Score: 0, Label: "unspecified", Comment: "Lease structure not specified"},
		{Match: contains("master lease"), Score: 1.5, Label: "master lease", Comment: "Master lease provides additional tenant credit support"},
		{Match: contains("nnn"), Score: 1, Label: "nnn", Comment: "NNN lease structure"},
		{Match: equals("nn"), Score: 0, Label: "nn", Comment: "NN lease structure with some landlord responsibilities"},
		{Match: contains("meaningful ll obligations"), Score: 0, Label: "ll obligations", Comment: "Significant landlord obligations under lease"},
	},
	Fallback: Rule{Score: 0, Label: "standard", Comment: "Standard lease structure"},
}

// PortfolioTargetScore is awarded to both portfolio-target lines.
const PortfolioTargetScore = 1

package constants

// PayloadKeywords mark the OM lines worth sending to the model. A page whose
// text contains none of them is skipped by table detection.
var PayloadKeywords = []string{
	"LEASE", "RENT", "ACRE", "ADDRESS", "TENANT",
	"CURRENT", "GLA", "CAP RATE", "YEAR BUILT", "DRIVE-THRU", "CARRY-OUT",
}

// KeywordWindow is the number of context lines kept above and below a hit.
const KeywordWindow = 2

const (
	// MinTableCells is the fewest non-empty cells a real table has.
	MinTableCells = 10
	// MinWordsPerCell is the lowest average word count per non-empty cell.
	MinWordsPerCell = 1.5
	// MaxGoodTables stops table scanning once reached.
	MaxGoodTables = 3
)

package constants

// Stage names a step of a scorecard build; it is attached to logs and errors.
type Stage string

const (
	StagePayload   Stage = "PAYLOAD"   // document -> payload text
	StageInterpret Stage = "INTERPRET" // payload -> fields
	StageTemplate  Stage = "TEMPLATE"  // template retrieval
	StageWrite     Stage = "WRITE"     // fields -> workbook
	StageDone      Stage = "DONE"
)

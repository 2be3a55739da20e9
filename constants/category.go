package constants

import (
	"strings"
)

// BuildingType selects the absolute-rent table.
type BuildingType string

const (
	// CDR is a carry-out restaurant.
	CDR BuildingType = "CDR"
	// QSR is a quick-service restaurant with a drive-thru.
	QSR BuildingType = "QSR"
)

var allBuildingTypes = []BuildingType{CDR, QSR}

func BuildingTypes() []string {
	result := make([]string, len(allBuildingTypes))
	for i, bt := range allBuildingTypes {
		result[i] = string(bt)
	}
	return result
}

// BuildingTypeFromDriveThru classifies the drive-thru/carry-out answer.
// Anything mentioning "cdr" is carry-out; everything else, including an
// empty answer, falls back to QSR.
func BuildingTypeFromDriveThru(val string) BuildingType {
	if strings.Contains(strings.ToLower(val), "cdr") {
		return CDR
	}
	return QSR
}

// Canonicalize maps a free-form label onto a known building type.
func Canonicalize(input string) (BuildingType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return QSR, false
	}

	synonyms := map[string]BuildingType{
		"carry-out":     CDR,
		"carryout":      CDR,
		"carry out":     CDR,
		"drive-thru":    QSR,
		"drive thru":    QSR,
		"drive-through": QSR,
		"quick service": QSR,
	}
	if bt, ok := synonyms[normalized]; ok {
		return bt, true
	}

	for _, bt := range allBuildingTypes {
		if normalized == strings.ToLower(string(bt)) {
			return bt, true
		}
	}
	return QSR, false
}

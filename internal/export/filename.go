package export

import (
	"strings"
	"time"
	"unicode"
)

var filenameReplacer = strings.NewReplacer(
	"/", "-", `\`, "-", ":", "-", "|", "-",
	"*", "_", "?", "_",
	`"`, "'",
	"<", "(", ">", ")",
	"\n", " ", "\r", " ", "\t", " ",
)

// SanitizeFilename makes name safe on common filesystems.
func SanitizeFilename(name string) string {
	s := filenameReplacer.Replace(name)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.Trim(s, ". ")
}

// OutputFilename names a built scorecard, e.g.
// "Auto Scorecard - Taco Bell (Austin, TX) 2025.03.15 v1.xlsx".
func OutputFilename(tenant, cityState string, day time.Time) string {
	name := "Auto Scorecard - " + strings.TrimSpace(tenant)
	if cs := strings.TrimSpace(cityState); cs != "" {
		name += " (" + cs + ")"
	}
	name += " " + day.Format("2006.01.02") + " v1"
	return SanitizeFilename(name) + ".xlsx"
}

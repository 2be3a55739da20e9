package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// grouped0 renders 12500 as "12,500".
func grouped0(v float64) string { return printer.Sprintf("%.0f", v) }

// grouped1 renders 12.25 as "12.2" and 1234.5 as "1,234.5".
func grouped1(v float64) string { return printer.Sprintf("%.1f", v) }

func fixed1(v float64) string { return fmt.Sprintf("%.1f", v) }

type commentVars struct {
	tenant string
	value  string
	state  string
}

func render(tpl string, vars commentVars) string {
	return strings.NewReplacer(
		"{tenant}", vars.tenant,
		"{value}", vars.value,
		"{state}", vars.state,
	).Replace(tpl)
}

package deal

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reNumericRun = regexp.MustCompile(`[\d.]+`)

// Numeric is a parsed attribute value. IsFloat records whether the source
// was written with a decimal point so comments can echo it faithfully.
type Numeric struct {
	Value   float64
	IsFloat bool
}

func (n Numeric) String() string {
	if n.IsFloat {
		return FormatFloat(n.Value)
	}
	return strconv.FormatFloat(n.Value, 'f', 0, 64)
}

// ParseNumeric extracts the first number from v. Null and empty values are
// 0, numbers pass through, and strings yield their first run of digits and
// decimal points after thousands separators are removed. Only the first
// number of a string is used.
func ParseNumeric(v any) Numeric {
	switch t := v.(type) {
	case nil:
		return Numeric{}
	case Numeric:
		return t
	case Scalar:
		if t.kind == KindNumber {
			return parseLiteral(t.text)
		}
		return parseNumericString(t.text)
	case json.Number:
		return parseLiteral(t.String())
	case int:
		return Numeric{Value: float64(t)}
	case int64:
		return Numeric{Value: float64(t)}
	case float64:
		return Numeric{Value: t, IsFloat: true}
	case float32:
		return Numeric{Value: float64(t), IsFloat: true}
	case string:
		return parseNumericString(t)
	default:
		return parseNumericString(fmt.Sprint(t))
	}
}

func parseLiteral(lit string) Numeric {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Numeric{}
	}
	return Numeric{Value: f, IsFloat: strings.ContainsAny(lit, ".eE")}
}

func parseNumericString(s string) Numeric {
	s = strings.ReplaceAll(s, ",", "")
	for _, run := range reNumericRun.FindAllString(s, -1) {
		// a bare "." (as in "approx.") is punctuation, not a number
		if !strings.ContainsAny(run, "0123456789") {
			continue
		}
		if strings.Contains(run, ".") {
			f, err := strconv.ParseFloat(run, 64)
			if err != nil {
				return Numeric{}
			}
			return Numeric{Value: f, IsFloat: true}
		}
		n, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(run, 64)
			if ferr != nil {
				return Numeric{}
			}
			return Numeric{Value: f}
		}
		return Numeric{Value: float64(n)}
	}
	return Numeric{}
}

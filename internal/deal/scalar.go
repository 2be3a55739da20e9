package deal

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind classifies a Scalar.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

// Scalar is one attribute value as the model returned it: null, text, or a
// number. Numbers keep their display form ("1.0" stays "1.0").
type Scalar struct {
	kind Kind
	text string
}

func Null() Scalar { return Scalar{} }

func Text(s string) Scalar { return Scalar{kind: KindText, text: s} }

// Number builds a numeric scalar from a JSON number literal.
func Number(literal string) Scalar {
	return Scalar{kind: KindNumber, text: numberString(literal)}
}

func Float(f float64) Scalar { return Scalar{kind: KindNumber, text: FormatFloat(f)} }

func Int(n int64) Scalar { return Scalar{kind: KindNumber, text: strconv.FormatInt(n, 10)} }

func (s Scalar) Kind() Kind   { return s.kind }
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// String returns the text form; null is "".
func (s Scalar) String() string { return s.text }

// AsText converts numbers to their text form and null to "".
func (s Scalar) AsText() Scalar {
	return Text(s.text)
}

// ScalarOf converts a decoded JSON value. Objects and arrays cannot be
// scored and become null.
func ScalarOf(v any) Scalar {
	switch t := v.(type) {
	case nil:
		return Null()
	case Scalar:
		return t
	case string:
		return Text(t)
	case json.Number:
		return Number(t.String())
	case float64:
		return Float(t)
	case float32:
		return Float(float64(t))
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case bool:
		if t {
			return Text("Yes")
		}
		return Text("No")
	default:
		return Null()
	}
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		return []byte(s.text), nil
	default:
		return json.Marshal(s.text)
	}
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	*s = ScalarOf(v)
	return nil
}

func decodeAny(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// FormatFloat renders a float the way a Python str() would for everyday
// values: shortest form, always with a decimal point.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func numberString(literal string) string {
	if !strings.ContainsAny(literal, ".eE") {
		return literal
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return literal
	}
	return FormatFloat(f)
}

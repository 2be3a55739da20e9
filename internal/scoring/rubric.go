// Package scoring maps normalized deal fields onto the scorecard rubric.
//
// Every attribute is described once, either as a breakpoint Table (numeric
// attributes) or an ordered Rules list (text attributes). The score and the
// comment for a value both come from the same lookup, so a comment can never
// describe a different bucket than the one that was scored.
package scoring

import (
	"math"
	"strings"
)

// Band is one row of a breakpoint table. Bounds are inclusive unless the
// matching Open flag is set.
type Band struct {
	Min, Max         float64
	MinOpen, MaxOpen bool
	Score            float64
	Label            string
	// Comment is a template; see render.
	Comment string
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if b.MinOpen {
		if v <= b.Min {
			return false
		}
	} else if v < b.Min {
		return false
	}
	if b.MaxOpen {
		if v >= b.Max {
			return false
		}
	} else if v > b.Max {
		return false
	}
	return true
}

// Table is an ordered list of bands; the first band containing a value wins
// and Fallback takes everything else.
type Table struct {
	Bands    []Band
	Fallback Band
}

func (t Table) Lookup(v float64) Band {
	for _, b := range t.Bands {
		if b.Contains(v) {
			return b
		}
	}
	return t.Fallback
}

// Rule matches a trimmed, lower-cased text value.
type Rule struct {
	Match   func(v string) bool
	Score   float64
	Label   string
	Comment string
}

// Rules is an ordered rule list with a fallback.
type Rules struct {
	Rules    []Rule
	Fallback Rule
}

func (r Rules) Lookup(raw string) Rule {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range r.Rules {
		if rule.Match(v) {
			return rule
		}
	}
	return r.Fallback
}

func above(min, score float64, label, comment string) Band {
	return Band{Min: min, MinOpen: true, Max: math.Inf(1), Score: score, Label: label, Comment: comment}
}

func below(max, score float64, label, comment string) Band {
	return Band{Min: math.Inf(-1), Max: max, MaxOpen: true, Score: score, Label: label, Comment: comment}
}

// closed is [min, max].
func closed(min, max, score float64, label, comment string) Band {
	return Band{Min: min, Max: max, Score: score, Label: label, Comment: comment}
}

// rightOpen is [min, max).
func rightOpen(min, max, score float64, label, comment string) Band {
	return Band{Min: min, Max: max, MaxOpen: true, Score: score, Label: label, Comment: comment}
}

// leftOpen is (min, max].
func leftOpen(min, max, score float64, label, comment string) Band {
	return Band{Min: min, MinOpen: true, Max: max, Score: score, Label: label, Comment: comment}
}

func otherwise(score float64, label, comment string) Band {
	return Band{Score: score, Label: label, Comment: comment}
}

func equals(s string) func(string) bool {
	return func(v string) bool { return v == s }
}

func contains(s string) func(string) bool {
	return func(v string) bool { return strings.Contains(v, s) }
}

func isEmpty(v string) bool { return v == "" }

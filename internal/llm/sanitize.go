package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

// keySynonyms maps labels the model sometimes uses onto attribute keys.
// Matching is case-insensitive.
var keySynonyms = map[string]string{
	"lease type":                   deal.KeyLeaseStructure,
	"remaining lease term":         deal.KeyLeaseTerm,
	"lease expiration":             deal.KeyLeaseTerm,
	"annual rent":                  deal.KeyAbsoluteRent,
	"base rent":                    deal.KeyAbsoluteRent,
	"noi":                          deal.KeyAbsoluteRent,
	"rent increases":               deal.KeyRentGrowth,
	"rent escalations":             deal.KeyRentGrowth,
	"lot size":                     deal.KeyAcreage,
	"land area":                    deal.KeyAcreage,
	"restaurant/auto/medical":      deal.KeyRestaurantAutoMedical,
	"single tenant":                deal.KeySingleTenant,
	"drive-thru":                   deal.KeyDriveThruCarryOut,
	"drive-thru / carry-out":       deal.KeyDriveThruCarryOut,
	"drive-thru (qsr)":             deal.KeyDriveThruCarryOut,
	"building size":                deal.KeyBoxSize,
	"gla":                          deal.KeyBoxSize,
	"property address":             deal.KeyAddress,
	"tenant":                       deal.KeyCurrentTenant,
	"national locations":           deal.KeyNationalLocations,
	"number of locations":          deal.KeyNationalLocations,
	"number of national locations": deal.KeyNationalLocations,
}

// StripCodeFences returns the outermost JSON object in raw, dropping any
// markdown fence or prose around it.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	if i, j := strings.Index(s, "{"), strings.LastIndex(s, "}"); i >= 0 && j > i {
		s = s[i : j+1]
	}
	return strings.TrimSpace(s)
}

// NormalizeAndSanitizeJSON
// - strips code fences
// - renames known synonyms onto attribute keys
// - drops keys that are not attributes
// The returned notes list every change.
func NormalizeAndSanitizeJSON(raw string, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	dec := json.NewDecoder(strings.NewReader(StripCodeFences(raw)))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}
	if m == nil {
		return nil, nil, fmt.Errorf("sanitize: not an object")
	}

	known := make(map[string]string, len(deal.RequiredKeys))
	for _, k := range deal.RequiredKeys {
		known[strings.ToLower(k)] = k
	}

	out := make(map[string]any, len(m))
	var notes []string
	// exact keys first so a synonym never overwrites a real value
	for k, v := range m {
		if canon, ok := known[strings.ToLower(strings.TrimSpace(k))]; ok {
			if k != canon {
				notes = append(notes, k+"->"+canon)
			}
			out[canon] = v
		}
	}
	for k, v := range m {
		lk := strings.ToLower(strings.TrimSpace(k))
		if _, ok := known[lk]; ok {
			continue
		}
		canon, ok := keySynonyms[lk]
		if !ok {
			notes = append(notes, k+"(unknown)")
			continue
		}
		if _, exists := out[canon]; exists {
			notes = append(notes, k+"(duplicate)")
			continue
		}
		out[canon] = v
		notes = append(notes, k+"->"+canon)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, notes, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(notes) > 0 {
		logger.Warn("llm.interpret.sanitize", "changes", notes)
	}
	return bytes.TrimSpace(buf.Bytes()), notes, nil
}

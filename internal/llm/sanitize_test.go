package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                     "{\"a\":1}",
		"```json\n{\"a\":1}\n```":       "{\"a\":1}",
		"```\n{\"a\":1}\n```":           "{\"a\":1}",
		"Here you go: {\"a\":1} thanks": "{\"a\":1}",
		"no object":                     "no object",
	}
	for in, want := range cases {
		if got := StripCodeFences(in); got != want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeAndSanitizeJSON(t *testing.T) {
	raw := `{"current tenant": "Sonic", "Tenant": "ignored", "GLA": "1,500 SF", "Cap Rate": "6%", "Acreage": 0.75}`
	out, notes, err := NormalizeAndSanitizeJSON(raw, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	if m["Current Tenant"] != "Sonic" {
		t.Errorf("Current Tenant = %v", m["Current Tenant"])
	}
	if m["Box Size"] != "1,500 SF" {
		t.Errorf("Box Size = %v", m["Box Size"])
	}
	if _, ok := m["Cap Rate"]; ok {
		t.Error("unknown key survived")
	}
	if !strings.Contains(string(out), `"Acreage":0.75`) {
		t.Errorf("number literal changed: %s", out)
	}
	joined := strings.Join(notes, ",")
	for _, want := range []string{"Cap Rate(unknown)", "Tenant(duplicate)", "GLA->Box Size"} {
		if !strings.Contains(joined, want) {
			t.Errorf("notes %q missing %q", joined, want)
		}
	}
}

func TestNormalizeAndSanitizeJSONRejects(t *testing.T) {
	for _, raw := range []string{"", "null", "[]", "{"} {
		if _, _, err := NormalizeAndSanitizeJSON(raw, quietLogger()); err == nil {
			t.Errorf("NormalizeAndSanitizeJSON(%q) succeeded", raw)
		}
	}
}

func TestValidateFields(t *testing.T) {
	if err := ValidateFields([]byte(modelJSON)); err != nil {
		t.Errorf("valid output rejected: %v", err)
	}
	if err := ValidateFields([]byte(`{"Lease Structure": "NNN"}`)); err == nil {
		t.Error("missing keys accepted")
	}
	bad := strings.Replace(modelJSON, `"Acreage": 1.0`, `"Acreage": [1, 2]`, 1)
	if err := ValidateFields([]byte(bad)); err == nil {
		t.Error("array value accepted")
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("PAYLOAD")
	for _, want := range []string{
		"1. Lease Structure",
		"13. Number of National Locations",
		`"Drive-Thru (QSR) / Carry-out (CDR)": "QSR"`,
		DataStart + "\nPAYLOAD\n" + DataEnd,
		`If not a restaurant, return "NA".`,
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

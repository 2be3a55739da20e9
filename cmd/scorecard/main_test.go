package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/scoring"
)

const fieldsJSON = `{
	"Lease Structure": "NNN",
	"Lease Term": 12.5,
	"Absolute Rent": 185000,
	"Rent Growth": 1.5,
	"Acreage": 1.0,
	"Restaurant/Auto/Medical?": "Yes",
	"Single Tenant?": "Yes",
	"Drive-Thru (QSR) / Carry-out (CDR)": "CDR",
	"Box Size": 4500,
	"Address": {"Line 1": "10 Elm St", "City": "Dayton", "State": "OH", "Zip": "45402"},
	"Year Built": 2015,
	"Current Tenant": "Olive Garden",
	"Number of National Locations": 900
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	wd, werr := os.Getwd()
	if werr != nil {
		t.Fatal(werr)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreJSON(t *testing.T) {
	out, err := run(t, fieldsJSON, "score", "--json", "-")
	if err != nil {
		t.Fatal(err)
	}
	var sc scoring.Scorecard
	if err := json.Unmarshal([]byte(out), &sc); err != nil {
		t.Fatalf("%v: %s", err, out)
	}
	if sc.Total() != 30 {
		t.Errorf("total = %v", sc.Total())
	}
	if sc.BuildingType != "CDR" {
		t.Errorf("building type = %s", sc.BuildingType)
	}
}

func TestScoreBuildingTypeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.json")
	if err := os.WriteFile(path, []byte(fieldsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "score", "--building-type", "drive-thru", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "building type: QSR") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("missing total line:\n%s", out)
	}

	_, err = run(t, "", "score", "--building-type", "warehouse", path)
	if common.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v (%v)", common.Code(err), err)
	}
}

func TestScoreBadInput(t *testing.T) {
	_, err := run(t, "{not json", "score", "-")
	if common.ExitCode(common.Code(err)) != 2 {
		t.Errorf("err = %v", err)
	}
}

func TestPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "om.txt")
	text := strings.Repeat("intro ", 40) + "Annual Rent: $150,000" + strings.Repeat(" outro", 40)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "payload", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Annual Rent: $150,000") {
		t.Errorf("payload = %q", out)
	}
}

func TestBuildNeedsInput(t *testing.T) {
	_, err := run(t, "", "build")
	if common.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v", err)
	}
}

func TestScoreResolvesLeaseExpiration(t *testing.T) {
	cases := []struct {
		expiration string
		score      float64
	}{
		{"June 2045", 5},
		{"June 2034", 3},
		{"June 2005", 0},
	}
	for _, tc := range cases {
		t.Run(tc.expiration, func(t *testing.T) {
			in := `{"Current Tenant": "Taco Bell", "Lease Term": {"expiration_date": "` + tc.expiration + `", "remaining_years": null}}`
			out, err := run(t, in, "score", "--json", "--as-of", "2025-06-02", "-")
			if err != nil {
				t.Fatal(err)
			}
			var sc scoring.Scorecard
			if err := json.Unmarshal([]byte(out), &sc); err != nil {
				t.Fatalf("%v: %s", err, out)
			}
			e, ok := sc.Entry(scoring.AttrLeaseTerm)
			if !ok {
				t.Fatal("no lease term entry")
			}
			if e.Score != tc.score {
				t.Errorf("score = %v (%q), want %v", e.Score, e.Comment, tc.score)
			}
		})
	}

	if _, err := run(t, fieldsJSON, "score", "--as-of", "06/02/2025", "-"); common.Code(err) != codes.InvalidArgument {
		t.Errorf("bad --as-of: err = %v", err)
	}
}

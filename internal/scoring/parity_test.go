package scoring

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/joseph-ayodele/om-scorecard/constants"
)

// Each comment's opening words identify its bucket. These maps are written
// out by hand so they check the tables instead of restating them.
var (
	acreageByComment = map[string]float64{
		"Large parcel":      7,
		"Good parcel":       6,
		"Adequate parcel":   5,
		"Moderate parcel":   4,
		"Small parcel":      2,
		"Very small parcel": 0,
	}
	leaseTermByComment = map[string]float64{
		"Very long":       5,
		"Long":            4,
		"Moderate":        3,
		"Short":           2,
		"Very short":      1,
		"Extremely short": 0,
	}
	rentGrowthByComment = map[string]float64{
		"Minimal":   0,
		"Moderate":  1,
		"Strong":    1.5,
		"Very high": 0,
	}
	rentByComment = map[string]float64{
		"Very attractive": 8,
		"Attractive":      7,
		"Moderate":        6,
		"High":            5,
		"Very high":       3,
		"Extremely high":  0,
	}
	boxByComment = map[string]float64{
		"Optimal box": 2,
		"Box size":    0,
	}
)

func bucketOf(t *testing.T, comment string, buckets map[string]float64) float64 {
	t.Helper()
	best := ""
	for prefix := range buckets {
		if strings.HasPrefix(comment, prefix+" ") && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		t.Fatalf("comment %q matches no bucket", comment)
	}
	return buckets[best]
}

func locationsBucket(t *testing.T, comment string) float64 {
	t.Helper()
	switch {
	case strings.Contains(comment, " strong "):
		return 2.5
	case strings.Contains(comment, " moderate "):
		return 1.5
	case strings.Contains(comment, " limited "):
		return 1
	case strings.Contains(comment, " minimal "):
		return 0
	}
	t.Fatalf("comment %q matches no bucket", comment)
	return 0
}

// sample draws values clustered around each breakpoint plus uniform noise.
func sample(rng *rand.Rand, breakpoints []float64, max float64) string {
	var v float64
	if rng.Intn(3) == 0 {
		v = rng.Float64() * max
	} else {
		bp := breakpoints[rng.Intn(len(breakpoints))]
		v = bp + float64(rng.Intn(5)-2)*0.01*max/100
	}
	if v < 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestCommentScoreParity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 5000

	for i := 0; i < n; i++ {
		v := sample(rng, []float64{0.5, 0.75, 1.25, 1.75, 2.25}, 5)
		if got, want := Acreage(v), bucketOf(t, AcreageComment(v), acreageByComment); got != want {
			t.Fatalf("acreage %s: score %v, comment bucket %v", v, got, want)
		}

		v = sample(rng, []float64{3, 5, 7.5, 10, 15}, 30)
		if got, want := LeaseTerm(v), bucketOf(t, LeaseTermComment(v), leaseTermByComment); got != want {
			t.Fatalf("lease term %s: score %v, comment bucket %v", v, got, want)
		}

		v = sample(rng, []float64{0.5, 1.25, 2.25}, 4)
		if got, want := RentGrowth(v), bucketOf(t, RentGrowthComment(v), rentGrowthByComment); got != want {
			t.Fatalf("rent growth %s: score %v, comment bucket %v", v, got, want)
		}

		v = sample(rng, []float64{2000, 9000}, 15000)
		if got, want := BoxSize(v), bucketOf(t, BoxSizeComment(v), boxByComment); got != want {
			t.Fatalf("box size %s: score %v, comment bucket %v", v, got, want)
		}

		v = sample(rng, []float64{100, 300, 600}, 2000)
		if got, want := NationalLocations(v), locationsBucket(t, NationalLocationsComment(v, "Tenant")); got != want {
			t.Fatalf("locations %s: score %v, comment bucket %v", v, got, want)
		}

		for _, bt := range []constants.BuildingType{constants.CDR, constants.QSR} {
			v = sample(rng, []float64{90000, 110000, 135000, 150000, 170000, 210000, 250000, 285000, 330000}, 400000)
			if got, want := AbsoluteRent(v, bt), bucketOf(t, AbsoluteRentComment(v, bt), rentByComment); got != want {
				t.Fatalf("rent %s (%s): score %v, comment bucket %v", v, bt, got, want)
			}
		}
	}
}

func TestTextRuleParity(t *testing.T) {
	inputs := []string{"", "yes", "YES", "no", "NA", "na", "QSR", "cdr", "both qsr/cdr", "nnn", "NN", "master lease", "meaningful ll obligations", "gross"}
	for _, in := range inputs {
		score, comment := DriveThru(in), DriveThruComment(in, "T")
		negative := strings.HasPrefix(comment, "No ") || strings.HasSuffix(comment, "not specified")
		if (score == 0) != negative {
			t.Errorf("drive-thru %q: score %v with comment %q", in, score, comment)
		}
		if (RestaurantAutoMedical(in) == 2) == strings.HasPrefix(RestaurantAutoMedicalComment("T", in), "Not ") {
			t.Errorf("restaurant %q disagrees with its comment", in)
		}
		if (SingleTenant(in) == 2) == strings.HasPrefix(SingleTenantComment(in), "Multi") {
			t.Errorf("single tenant %q disagrees with its comment", in)
		}
	}
}

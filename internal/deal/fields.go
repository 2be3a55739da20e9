// Package deal holds the OM attribute set the model extracts and the
// deterministic helpers that prepare it for scoring.
package deal

import (
	"encoding/json"
	"strings"
)

// Attribute keys exactly as they appear in the model's JSON.
const (
	KeyLeaseStructure        = "Lease Structure"
	KeyLeaseTerm             = "Lease Term"
	KeyAbsoluteRent          = "Absolute Rent"
	KeyRentGrowth            = "Rent Growth"
	KeyAcreage               = "Acreage"
	KeyRestaurantAutoMedical = "Restaurant/Auto/Medical?"
	KeySingleTenant          = "Single Tenant?"
	KeyDriveThruCarryOut     = "Drive-Thru (QSR) / Carry-out (CDR)"
	KeyBoxSize               = "Box Size"
	KeyAddress               = "Address"
	KeyYearBuilt             = "Year Built"
	KeyCurrentTenant         = "Current Tenant"
	KeyNationalLocations     = "Number of National Locations"
)

// RequiredKeys lists the 13 attributes every Fields value carries.
var RequiredKeys = []string{
	KeyLeaseStructure,
	KeyLeaseTerm,
	KeyAbsoluteRent,
	KeyRentGrowth,
	KeyAcreage,
	KeyRestaurantAutoMedical,
	KeySingleTenant,
	KeyDriveThruCarryOut,
	KeyBoxSize,
	KeyAddress,
	KeyYearBuilt,
	KeyCurrentTenant,
	KeyNationalLocations,
}

// Fields is the extracted attribute set. Every key is always present; a
// value the model did not find is a null Scalar.
type Fields struct {
	LeaseStructure        Scalar    `json:"Lease Structure"`
	LeaseTerm             LeaseTerm `json:"Lease Term"`
	AbsoluteRent          Scalar    `json:"Absolute Rent"`
	RentGrowth            Scalar    `json:"Rent Growth"`
	Acreage               Scalar    `json:"Acreage"`
	RestaurantAutoMedical Scalar    `json:"Restaurant/Auto/Medical?"`
	SingleTenant          Scalar    `json:"Single Tenant?"`
	DriveThruCarryOut     Scalar    `json:"Drive-Thru (QSR) / Carry-out (CDR)"`
	BoxSize               Scalar    `json:"Box Size"`
	Address               Address   `json:"Address"`
	YearBuilt             Scalar    `json:"Year Built"`
	CurrentTenant         Scalar    `json:"Current Tenant"`
	NationalLocations     Scalar    `json:"Number of National Locations"`
}

// Address is the four-part property address.
type Address struct {
	Line1 Scalar `json:"Line 1"`
	City  Scalar `json:"City"`
	State Scalar `json:"State"`
	Zip   Scalar `json:"Zip"`
}

func (a Address) IsZero() bool {
	return a.Line1.IsNull() && a.City.IsNull() && a.State.IsNull() && a.Zip.IsNull()
}

// CityState renders "City, State" without dangling separators.
func (a Address) CityState() string {
	return strings.Trim(a.City.String()+", "+a.State.String(), " ,")
}

// OneLine renders "Line 1 City, State Zip" without dangling separators.
func (a Address) OneLine() string {
	s := strings.TrimSpace(a.Line1.String() + " " + a.City.String())
	s = strings.Trim(s+", "+a.State.String(), " ,")
	return strings.TrimSpace(s + " " + a.Zip.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case map[string]any:
		*a = Address{
			Line1: ScalarOf(t["Line 1"]),
			City:  ScalarOf(t["City"]),
			State: ScalarOf(t["State"]),
			Zip:   ScalarOf(t["Zip"]),
		}
	case string:
		// a single-line address keeps its text in Line 1
		*a = Address{Line1: Text(t)}
	default:
		*a = Address{}
	}
	return nil
}

// LeaseTerm is either the model's {expiration_date, remaining_years} object
// or, once resolved, a bare years value (Expiration empty).
type LeaseTerm struct {
	Expiration string
	Years      Scalar
}

// Collapsed reports whether the term is a bare years value.
func (l LeaseTerm) Collapsed() bool { return l.Expiration == "" }

func (l LeaseTerm) MarshalJSON() ([]byte, error) {
	if l.Collapsed() {
		return l.Years.MarshalJSON()
	}
	return json.Marshal(struct {
		ExpirationDate string `json:"expiration_date"`
		RemainingYears Scalar `json:"remaining_years"`
	}{l.Expiration, l.Years})
}

func (l *LeaseTerm) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	if m, ok := v.(map[string]any); ok {
		*l = LeaseTerm{
			Expiration: strings.TrimSpace(ScalarOf(m["expiration_date"]).String()),
			Years:      ScalarOf(m["remaining_years"]),
		}
		return nil
	}
	*l = LeaseTerm{Years: ScalarOf(v)}
	return nil
}

// Tenant returns the tenant name, or fallback when the model found none.
func (f Fields) Tenant(fallback string) string {
	if t := strings.TrimSpace(f.CurrentTenant.String()); t != "" {
		return t
	}
	return fallback
}

// Map renders the fields as a generic map keyed by attribute name.
func (f Fields) Map() map[string]any {
	b, _ := json.Marshal(f)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// DecodeFields parses a JSON object into Fields. Unknown keys are ignored
// and absent keys stay null.
func DecodeFields(b []byte) (Fields, error) {
	var f Fields
	if err := json.Unmarshal(b, &f); err != nil {
		return Fields{}, err
	}
	return f, nil
}

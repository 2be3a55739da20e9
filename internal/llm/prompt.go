package llm

import (
	"strconv"
	"strings"
)

const (
	DataStart = "--DATA START--"
	DataEnd   = "--DATA END--"
)

// exampleSchema is shown to the model verbatim.
const exampleSchema = `{
"Lease Structure": "NNN",
"Lease Term": {
    "expiration_date": "June 2029",
    "remaining_years": 5.4
},
"Absolute Rent": 120000,
"Rent Growth": "3% annually",
"Acreage": 0.83,
"Restaurant/Auto/Medical?": "Yes",
"Single Tenant?": "Yes",
"Drive-Thru (QSR) / Carry-out (CDR)": "QSR",
"Box Size": "2,300 sqft",
"Address": {
    "Line 1": "123 Main St",
    "City": "Cedar Rapids",
    "State": "IA",
    "Zip": "52404"
},
"Year Built": 2015,
"Current Tenant": "Taco Bell",
"Number of National Locations": 7500
}`

var promptFields = []string{
	"Lease Structure",
	"Lease Term (IMPORTANT: Extract the exact lease expiration date AND calculate remaining years)",
	"Absolute Rent",
	"Rent Growth",
	"Acreage",
	"Is Current Tenant a Restaurant, Auto, or Medical Facility? (Yes or No)",
	"Is The Building Currently a Single Tenant Building? (Yes or No)",
	"Does the operator have a Drive-Thru (QSR) or Carry-out (CDR) available?",
	"Box Size",
	"Address (Split into dictionary with the following keys: 'Line 1', 'City', 'State', 'Zip')",
	"Year Built",
	"Current Tenant (restaurant, auto shop, medical operator name)",
	"Number of National Locations",
}

var promptRules = []string{
	"If a field is not found in the data, set its value to null.",
	`For Lease Term: You MUST extract the exact lease expiration date (e.g., "June 2029", "6/30/2029").`,
	`For Lease Term: The value should be an object with two keys: "expiration_date" (the exact expiration date as found in the text) and "remaining_years" (the years between today and the expiration date).`,
	"For field 4: List the percent growth. If it is only one bump over a multi year period, calculate the average annual bump (ex. 10% over five years = 2%).",
	"For field 4: If the rent growth is not listed, calculate the in-place percentage growth of the current rent rate.",
	"For field 7: if the answer is No, also note whether the building is >50%, >33%, or <33% restaurant.",
	`For field 8: if the tenant is a restaurant, determine if it qualifies as QSR or CDR. If not a restaurant, return "NA".`,
	"For field 12: prefer the franchise name over the operator's legal entity name.",
	"For field 13: estimate the national presence and provide the number of U.S. locations of the specific type of restaurant, auto shop, or medical clinic.",
}

// BuildPrompt renders the extraction prompt around payload.
func BuildPrompt(payload string) string {
	var b strings.Builder
	b.WriteString("You are an expert data extractor.\n\n")
	b.WriteString("Please extract and interpret the following key fields:\n\n")
	for i, f := range promptFields {
		b.WriteString(strconv.Itoa(i+1) + ". " + f + "\n")
	}
	b.WriteString("\nInstructions:\n")
	for _, r := range promptRules {
		b.WriteString("- " + r + "\n")
	}
	b.WriteString("\nReturn only a JSON object that exactly matches the schema below. If a value is unknown, return null.\n\n")
	b.WriteString("Schema (example format):\n\n")
	b.WriteString(exampleSchema)
	b.WriteString("\n" + DataStart + "\n")
	b.WriteString(payload)
	b.WriteString("\n" + DataEnd + "\n")
	return b.String()
}

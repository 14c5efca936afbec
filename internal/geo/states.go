package geo

import "strings"

// US state codes and names, plus DC. Vendor coverage lists and resolved
// lead locations may use either form, so lookups go both directions.
var stateNameByCode = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DE": "Delaware",
	"DC": "District of Columbia",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
}

var stateCodeByName = func() map[string]string {
	m := make(map[string]string, len(stateNameByCode))
	for code, name := range stateNameByCode {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// StateName returns the full name for a two-letter code.
func StateName(code string) (string, bool) {
	name, ok := stateNameByCode[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// StateCode returns the two-letter code for a full state name.
func StateCode(name string) (string, bool) {
	code, ok := stateCodeByName[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// NormalizeState accepts a state code or full name in any casing and
// returns both canonical forms.
func NormalizeState(value string) (code string, name string, ok bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", "", false
	}
	if len(trimmed) == 2 {
		if name, found := StateName(trimmed); found {
			return strings.ToUpper(trimmed), name, true
		}
	}
	if code, found := StateCode(trimmed); found {
		return code, stateNameByCode[code], true
	}
	return "", "", false
}

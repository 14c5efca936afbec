package routing

import (
	"fmt"
	"strings"

	"github.com/docksidelabs/leadrouter-backend/internal/geo"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

// CoversLocation checks the vendor's declared service area against the
// lead's location. loc is nil when the ZIP could not be resolved; only
// global and exact-ZIP coverage can match in that case.
func CoversLocation(vendor *models.Vendor, zip string, loc *geo.Location) bool {
	switch vendor.CoverageType {
	case enums.CoverageTypeGlobal:
		return true

	case enums.CoverageTypeNational:
		return loc != nil && loc.StateCode != ""

	case enums.CoverageTypeState:
		if loc == nil || loc.StateCode == "" {
			return false
		}
		return stateListContains(vendor.CoverageStates, loc.StateCode)

	case enums.CoverageTypeCounty:
		if loc == nil || loc.County == "" || loc.StateCode == "" {
			return false
		}
		return countyListContains(vendor.CoverageCounties, loc.County, loc.StateCode)

	case enums.CoverageTypeZip:
		normalized, err := geo.NormalizeZip(zip)
		if err != nil {
			return false
		}
		for _, covered := range vendor.CoverageZips {
			cn, err := geo.NormalizeZip(covered)
			if err != nil {
				continue
			}
			if cn == normalized {
				return true
			}
		}
		return false
	}

	return false
}

// stateListContains matches a target state code against entries that may
// be codes or full names in any casing.
func stateListContains(entries []string, targetCode string) bool {
	for _, entry := range entries {
		code, _, ok := geo.NormalizeState(entry)
		if !ok {
			continue
		}
		if code == targetCode {
			return true
		}
	}
	return false
}

// countyListContains matches "{County}, {State}" entries where the
// county may carry a "County" suffix and the state may be a code or a
// full name.
func countyListContains(entries []string, targetCounty, targetStateCode string) bool {
	wantCounty := normalizeCounty(targetCounty)
	for _, entry := range entries {
		countyPart, statePart, found := strings.Cut(entry, ",")
		if !found {
			continue
		}
		if normalizeCounty(countyPart) != wantCounty {
			continue
		}
		code, _, ok := geo.NormalizeState(statePart)
		if ok && code == targetStateCode {
			return true
		}
	}
	return false
}

func normalizeCounty(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, " county")
	return s
}

// coverageMatchReason renders a human-readable explanation for stats
// and logs.
func coverageMatchReason(vendor *models.Vendor, zip string, loc *geo.Location) string {
	switch vendor.CoverageType {
	case enums.CoverageTypeGlobal:
		return "global coverage"
	case enums.CoverageTypeNational:
		return "national coverage"
	case enums.CoverageTypeState:
		if loc != nil {
			return fmt.Sprintf("state coverage: %s", loc.StateCode)
		}
		return "state coverage"
	case enums.CoverageTypeCounty:
		if loc != nil {
			return fmt.Sprintf("county coverage: %s, %s", loc.County, loc.StateCode)
		}
		return "county coverage"
	case enums.CoverageTypeZip:
		return fmt.Sprintf("zip coverage: %s", zip)
	default:
		return fmt.Sprintf("coverage type: %s", vendor.CoverageType)
	}
}

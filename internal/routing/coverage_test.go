package routing

import (
	"testing"

	"github.com/docksidelabs/leadrouter-backend/internal/geo"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

var fortLauderdale = &geo.Location{
	Zip:       "33301",
	StateCode: "FL",
	StateName: "Florida",
	County:    "Broward",
}

func TestGlobalCoverageAlwaysMatches(t *testing.T) {
	v := &models.Vendor{CoverageType: enums.CoverageTypeGlobal}
	if !CoversLocation(v, "33301", fortLauderdale) {
		t.Error("global should match resolved locations")
	}
	if !CoversLocation(v, "33301", nil) {
		t.Error("global should match unresolved locations")
	}
}

func TestNationalCoverageNeedsResolvedState(t *testing.T) {
	v := &models.Vendor{CoverageType: enums.CoverageTypeNational}
	if !CoversLocation(v, "33301", fortLauderdale) {
		t.Error("national should match when the state resolved")
	}
	if CoversLocation(v, "33301", nil) {
		t.Error("national must not match without a resolved state")
	}
}

func TestStateCoverageMatchesCodesAndNames(t *testing.T) {
	cases := []struct {
		states []string
		want   bool
	}{
		{[]string{"FL"}, true},
		{[]string{"fl"}, true},
		{[]string{"Florida"}, true},
		{[]string{"florida "}, true},
		{[]string{"GA", "Texas"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		v := &models.Vendor{CoverageType: enums.CoverageTypeState, CoverageStates: tc.states}
		if got := CoversLocation(v, "33301", fortLauderdale); got != tc.want {
			t.Errorf("states=%v got %v want %v", tc.states, got, tc.want)
		}
	}

	v := &models.Vendor{CoverageType: enums.CoverageTypeState, CoverageStates: []string{"FL"}}
	if CoversLocation(v, "33301", nil) {
		t.Error("state coverage must not match without a resolved state")
	}
}

func TestCountyCoverageAcceptsListedVariants(t *testing.T) {
	variants := []string{
		"Broward, FL",
		"Broward County, FL",
		"Broward, Florida",
		"Broward County, Florida",
		"broward county, florida",
	}
	for _, entry := range variants {
		v := &models.Vendor{CoverageType: enums.CoverageTypeCounty, CoverageCounties: []string{entry}}
		if !CoversLocation(v, "33301", fortLauderdale) {
			t.Errorf("county entry %q should match Broward/FL", entry)
		}
	}

	misses := []string{
		"Miami-Dade, FL",
		"Broward, GA",
		"Broward",
	}
	for _, entry := range misses {
		v := &models.Vendor{CoverageType: enums.CoverageTypeCounty, CoverageCounties: []string{entry}}
		if CoversLocation(v, "33301", fortLauderdale) {
			t.Errorf("county entry %q should not match Broward/FL", entry)
		}
	}
}

func TestCountyCoverageNeedsResolvedLocation(t *testing.T) {
	v := &models.Vendor{CoverageType: enums.CoverageTypeCounty, CoverageCounties: []string{"Broward, FL"}}
	if CoversLocation(v, "33301", nil) {
		t.Error("county coverage must not match without resolved county/state")
	}
}

func TestZipCoverageNormalizesBothSides(t *testing.T) {
	v := &models.Vendor{CoverageType: enums.CoverageTypeZip, CoverageZips: []string{" 33301-4000 ", "33139"}}
	if !CoversLocation(v, "33301", fortLauderdale) {
		t.Error("zip+4 entry should normalize and match")
	}
	if !CoversLocation(v, "33139-0001", nil) {
		t.Error("zip match should not require a resolved location")
	}
	if CoversLocation(v, "33401", fortLauderdale) {
		t.Error("uncovered zip should not match")
	}

	malformed := &models.Vendor{CoverageType: enums.CoverageTypeZip, CoverageZips: []string{"abc", ""}}
	if CoversLocation(malformed, "33301", fortLauderdale) {
		t.Error("malformed zip entries should be skipped, not matched")
	}
}

package enums

import "strings"

// CoverageType is the scope of a vendor's declared service area.
type CoverageType string

const (
	CoverageTypeGlobal   CoverageType = "global"
	CoverageTypeNational CoverageType = "national"
	CoverageTypeState    CoverageType = "state"
	CoverageTypeCounty   CoverageType = "county"
	CoverageTypeZip      CoverageType = "zip"
)

func (c CoverageType) IsValid() bool {
	switch c {
	case CoverageTypeGlobal, CoverageTypeNational, CoverageTypeState, CoverageTypeCounty, CoverageTypeZip:
		return true
	}
	return false
}

func (c CoverageType) String() string {
	return string(c)
}

func ParseCoverageType(value string) (CoverageType, bool) {
	coverage := CoverageType(strings.ToLower(strings.TrimSpace(value)))
	return coverage, coverage.IsValid()
}

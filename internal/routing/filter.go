// Package routing matches leads to vendors and commits assignments.
package routing

import (
	"github.com/docksidelabs/leadrouter-backend/internal/taxonomy"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

// Filter applies the service-match half of vendor eligibility. Coverage
// is handled separately in coverage.go.
type Filter struct {
	tax *taxonomy.Taxonomy
}

func NewFilter(tax *taxonomy.Taxonomy) *Filter {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Filter{tax: tax}
}

// StatusEligible applies the status policy and availability gate.
func (f *Filter) StatusEligible(vendor *models.Vendor, policy enums.StatusPolicy) bool {
	if !policy.Allows(vendor.Status) {
		return false
	}
	return vendor.TakingNewWork
}

// MatchesService reports whether the vendor offers the requested
// service name, which may be a category, subcategory, or leaf service.
//
// Vendors listing at least one leaf service are matched strictly: only
// an exact leaf match qualifies, and category or subcategory requests
// are rejected outright so generic leads never reach a narrowly
// specialized vendor. Vendors listing only categories or subcategories
// match more broadly, in both directions of the hierarchy.
func (f *Filter) MatchesService(vendor *models.Vendor, requested string) bool {
	if requested == "" || len(vendor.ServicesOffered) == 0 {
		return false
	}

	strict := false
	for _, offered := range vendor.ServicesOffered {
		if f.tax.IsLeaf(offered) {
			strict = true
			break
		}
	}

	if strict {
		for _, offered := range vendor.ServicesOffered {
			if taxonomy.Equal(offered, requested) {
				return true
			}
		}
		// Category and subcategory requests never match a leaf-level vendor.
		return false
	}

	// Exact match at any level.
	for _, offered := range vendor.ServicesOffered {
		if taxonomy.Equal(offered, requested) {
			return true
		}
	}

	// Requested service sits under a category the vendor lists.
	if parent, ok := f.tax.CategoryOf(requested); ok {
		for _, offered := range vendor.ServicesOffered {
			if taxonomy.Equal(offered, parent) {
				return true
			}
		}
	}

	// Requested name is a category and the vendor lists a child of it.
	if f.tax.IsCategory(requested) {
		for _, offered := range vendor.ServicesOffered {
			if parent, ok := f.tax.CategoryOf(offered); ok && taxonomy.Equal(parent, requested) {
				return true
			}
		}
	}

	return false
}

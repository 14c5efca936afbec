package routing

import (
	"testing"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

func vendorOffering(services ...string) *models.Vendor {
	return &models.Vendor{
		Status:          enums.VendorStatusActive,
		TakingNewWork:   true,
		ServicesOffered: services,
	}
}

func TestStatusEligibleLivePolicy(t *testing.T) {
	f := NewFilter(nil)

	cases := []struct {
		status  enums.VendorStatus
		taking  bool
		allowed bool
	}{
		{enums.VendorStatusActive, true, true},
		{enums.VendorStatusActive, false, false},
		{enums.VendorStatusPending, true, false},
		{enums.VendorStatusInactive, true, false},
		{enums.VendorStatusSuspended, true, false},
		{enums.VendorStatusMissingInSource, true, false},
	}
	for _, tc := range cases {
		v := &models.Vendor{Status: tc.status, TakingNewWork: tc.taking}
		if got := f.StatusEligible(v, enums.StatusPolicyLive); got != tc.allowed {
			t.Errorf("live policy: status=%s taking=%v got %v want %v", tc.status, tc.taking, got, tc.allowed)
		}
	}
}

func TestStatusEligibleTestPolicyAdmitsPendingAndMissing(t *testing.T) {
	f := NewFilter(nil)

	allowed := []enums.VendorStatus{
		enums.VendorStatusActive,
		enums.VendorStatusPending,
		enums.VendorStatusMissingInSource,
	}
	for _, status := range allowed {
		v := &models.Vendor{Status: status, TakingNewWork: true}
		if !f.StatusEligible(v, enums.StatusPolicyTest) {
			t.Errorf("test policy should admit %s", status)
		}
	}

	blocked := []enums.VendorStatus{
		enums.VendorStatusInactive,
		enums.VendorStatusSuspended,
		enums.VendorStatusDeactivated,
	}
	for _, status := range blocked {
		v := &models.Vendor{Status: status, TakingNewWork: true}
		if f.StatusEligible(v, enums.StatusPolicyTest) {
			t.Errorf("test policy should block %s", status)
		}
	}
}

func TestMatchesServiceExact(t *testing.T) {
	f := NewFilter(nil)

	v := vendorOffering("Boat Oil Change")
	if !f.MatchesService(v, "boat oil change") {
		t.Error("case-insensitive exact match should succeed")
	}
	if f.MatchesService(v, "Bottom Painting") {
		t.Error("unrelated subcategory should not match")
	}
}

func TestMatchesServiceVendorListsCategory(t *testing.T) {
	f := NewFilter(nil)

	// Vendor lists the whole category; any child subcategory matches.
	v := vendorOffering("Boat Maintenance")
	if !f.MatchesService(v, "Boat Oil Change") {
		t.Error("subcategory request should match vendor's parent category")
	}
	if !f.MatchesService(v, "Boat Maintenance") {
		t.Error("category request should match exactly")
	}
	if f.MatchesService(v, "Fiberglass Repair") {
		t.Error("subcategory of a different category should not match")
	}
}

func TestMatchesServiceCategoryRequestMatchesChildVendor(t *testing.T) {
	f := NewFilter(nil)

	// Vendor lists a subcategory; a request for the parent category matches.
	v := vendorOffering("Bottom Painting")
	if !f.MatchesService(v, "Boat Maintenance") {
		t.Error("category request should match vendor offering a child service")
	}
	if f.MatchesService(v, "Marine Systems") {
		t.Error("category without vendor children should not match")
	}
}

func TestMatchesServiceStrictLeafVendor(t *testing.T) {
	f := NewFilter(nil)

	// Vendor specifies leaf services: only exact leaf requests match.
	v := vendorOffering("AC Maintenance & Servicing", "Refrigerant Charging & Leak Repair")

	if !f.MatchesService(v, "AC Maintenance & Servicing") {
		t.Error("exact leaf request should match")
	}
	if f.MatchesService(v, "Yacht AC Service") {
		t.Error("subcategory request must not reach a leaf-level vendor")
	}
	if f.MatchesService(v, "Marine Systems") {
		t.Error("category request must not reach a leaf-level vendor")
	}
	if f.MatchesService(v, "New AC Install or Replacement") {
		t.Error("sibling leaf the vendor does not list should not match")
	}
}

func TestMatchesServiceStrictAppliesWithMixedListings(t *testing.T) {
	f := NewFilter(nil)

	// One leaf listing switches the whole vendor to strict matching.
	v := vendorOffering("Boat Maintenance", "Hull Crack or Structural Repair")
	if f.MatchesService(v, "Boat Oil Change") {
		t.Error("vendor with any leaf listing must not match broad requests")
	}
	if !f.MatchesService(v, "Boat Maintenance") {
		t.Error("strict vendors still match their own listings exactly")
	}
}

func TestMatchesServiceEmptyInputs(t *testing.T) {
	f := NewFilter(nil)

	if f.MatchesService(vendorOffering(), "Boat Maintenance") {
		t.Error("vendor with no services should never match")
	}
	if f.MatchesService(vendorOffering("Boat Maintenance"), "") {
		t.Error("empty request should never match")
	}
}

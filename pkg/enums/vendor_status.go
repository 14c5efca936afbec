package enums

import "strings"

// VendorStatus mirrors the lifecycle reported by the upstream vendor
// directory sync.
type VendorStatus string

const (
	VendorStatusActive          VendorStatus = "active"
	VendorStatusPending         VendorStatus = "pending"
	VendorStatusInactive        VendorStatus = "inactive"
	VendorStatusSuspended       VendorStatus = "suspended"
	VendorStatusMissingInSource VendorStatus = "missing_in_source"
	VendorStatusDeactivated     VendorStatus = "deactivated"
)

func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusActive,
		VendorStatusPending,
		VendorStatusInactive,
		VendorStatusSuspended,
		VendorStatusMissingInSource,
		VendorStatusDeactivated:
		return true
	}
	return false
}

func (s VendorStatus) String() string {
	return string(s)
}

func ParseVendorStatus(value string) (VendorStatus, bool) {
	status := VendorStatus(strings.ToLower(strings.TrimSpace(value)))
	return status, status.IsValid()
}

// StatusPolicy selects which vendor statuses may receive leads.
type StatusPolicy string

const (
	// StatusPolicyLive admits active vendors only.
	StatusPolicyLive StatusPolicy = "live"
	// StatusPolicyTest admits everything except hard-disabled vendors, so
	// staging accounts can exercise routing before their vendors go live.
	StatusPolicyTest StatusPolicy = "test"
)

func (p StatusPolicy) IsValid() bool {
	return p == StatusPolicyLive || p == StatusPolicyTest
}

// Allows reports whether a vendor in the given status is routable under
// this policy.
func (p StatusPolicy) Allows(status VendorStatus) bool {
	switch p {
	case StatusPolicyTest:
		switch status {
		case VendorStatusInactive, VendorStatusSuspended, VendorStatusDeactivated:
			return false
		}
		return status.IsValid()
	default:
		return status == VendorStatusActive
	}
}

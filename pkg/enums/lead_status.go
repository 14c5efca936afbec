package enums

import "strings"

// LeadStatus is the assignment lifecycle of a lead.
type LeadStatus string

const (
	LeadStatusUnassigned  LeadStatus = "unassigned"
	LeadStatusAssigned    LeadStatus = "assigned"
	LeadStatusReassigning LeadStatus = "reassigning"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusUnassigned, LeadStatusAssigned, LeadStatusReassigning:
		return true
	}
	return false
}

func (s LeadStatus) String() string {
	return string(s)
}

func ParseLeadStatus(value string) (LeadStatus, bool) {
	status := LeadStatus(strings.ToLower(strings.TrimSpace(value)))
	return status, status.IsValid()
}

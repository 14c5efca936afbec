package enums

// OutboxEventType names the routing events staged for publication.
type OutboxEventType string

const (
	OutboxEventLeadAssigned       OutboxEventType = "routing.lead_assigned"
	OutboxEventLeadReassigned     OutboxEventType = "routing.lead_reassigned"
	OutboxEventReassignmentFailed OutboxEventType = "routing.reassignment_failed"
)

func (t OutboxEventType) IsValid() bool {
	switch t {
	case OutboxEventLeadAssigned, OutboxEventLeadReassigned, OutboxEventReassignmentFailed:
		return true
	}
	return false
}

func (t OutboxEventType) String() string {
	return string(t)
}

// OutboxAggregateType is the entity an outbox event describes.
type OutboxAggregateType string

const (
	OutboxAggregateLead OutboxAggregateType = "lead"
)

func (t OutboxAggregateType) String() string {
	return string(t)
}

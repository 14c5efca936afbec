package enums

// RoutingMethod records which branch of the hybrid selector produced an
// assignment.
type RoutingMethod string

const (
	RoutingMethodPerformance RoutingMethod = "performance"
	RoutingMethodRoundRobin  RoutingMethod = "round_robin"
)

func (m RoutingMethod) IsValid() bool {
	return m == RoutingMethodPerformance || m == RoutingMethodRoundRobin
}

func (m RoutingMethod) String() string {
	return string(m)
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RoutingMetrics records assignment and reassignment outcomes.
type RoutingMetrics struct {
	assignments   *prometheus.CounterVec
	conflicts     prometheus.Counter
	reassignments *prometheus.CounterVec
	matchDuration prometheus.Histogram
	poolSize      prometheus.Histogram
}

// NewRoutingMetrics registers the routing metrics on the provided registerer.
func NewRoutingMetrics(reg prometheus.Registerer) *RoutingMetrics {
	if reg == nil {
		return &RoutingMetrics{}
	}
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_assignments_total",
		Help: "Lead assignments committed, by selection method.",
	}, []string{"method"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routing_assignment_conflicts_total",
		Help: "Assignment attempts lost to a concurrent committer.",
	})
	reassignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_reassignments_total",
		Help: "Reassignment attempts, by outcome.",
	}, []string{"outcome"})
	matchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routing_match_duration_seconds",
		Help:    "Time spent filtering the vendor pool for a lead.",
		Buckets: prometheus.DefBuckets,
	})
	poolSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routing_matched_pool_size",
		Help:    "Number of vendors matched per routed lead.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
	reg.MustRegister(assignments, conflicts, reassignments, matchDuration, poolSize)
	return &RoutingMetrics{
		assignments:   assignments,
		conflicts:     conflicts,
		reassignments: reassignments,
		matchDuration: matchDuration,
		poolSize:      poolSize,
	}
}

// IncAssignment increments the assignment counter for the selection method.
func (m *RoutingMetrics) IncAssignment(method string) {
	if m == nil || m.assignments == nil {
		return
	}
	m.assignments.WithLabelValues(normalizeLabel(method)).Inc()
}

// IncConflict increments the lost-race counter.
func (m *RoutingMetrics) IncConflict() {
	if m == nil || m.conflicts == nil {
		return
	}
	m.conflicts.Inc()
}

// IncReassignment increments the reassignment counter for the outcome.
func (m *RoutingMetrics) IncReassignment(outcome string) {
	if m == nil || m.reassignments == nil {
		return
	}
	m.reassignments.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveMatch records how long matching took and how many vendors survived.
func (m *RoutingMetrics) ObserveMatch(duration time.Duration, matched int) {
	if m == nil || m.matchDuration == nil {
		return
	}
	m.matchDuration.Observe(duration.Seconds())
	m.poolSize.Observe(float64(matched))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

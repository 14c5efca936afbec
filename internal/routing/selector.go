package routing

import (
	"math/rand"
	"sort"
	"time"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

// neverAssigned sorts vendors with no assignment history to the front
// of the rotation.
var neverAssigned = time.Time{}

// Selector picks one vendor from an eligible pool using the account's
// hybrid configuration: performance_percentage of leads go to the best
// closer, the rest rotate round-robin. The dice roll is injectable for
// tests.
type Selector struct {
	roll func() int // uniform in [1,100]
}

func NewSelector() *Selector {
	return &Selector{
		roll: func() int { return rand.Intn(100) + 1 },
	}
}

// NewSelectorWithRoll builds a selector with a fixed dice source.
func NewSelectorWithRoll(roll func() int) *Selector {
	if roll == nil {
		return NewSelector()
	}
	return &Selector{roll: roll}
}

// Select returns the chosen vendor and which branch produced it. The
// pool must be non-empty.
func (s *Selector) Select(pool []models.Vendor, performancePercentage int) (*models.Vendor, enums.RoutingMethod) {
	if len(pool) == 0 {
		return nil, ""
	}

	if s.roll() <= performancePercentage {
		return selectByPerformance(pool), enums.RoutingMethodPerformance
	}
	return selectByRoundRobin(pool), enums.RoutingMethodRoundRobin
}

func lastAssigned(v *models.Vendor) time.Time {
	if v.LastLeadAssigned == nil {
		return neverAssigned
	}
	return *v.LastLeadAssigned
}

// selectByPerformance picks the highest close rate, breaking ties in
// favor of the vendor waiting longest.
func selectByPerformance(pool []models.Vendor) *models.Vendor {
	sorted := make([]models.Vendor, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LeadClosePercentage != sorted[j].LeadClosePercentage {
			return sorted[i].LeadClosePercentage > sorted[j].LeadClosePercentage
		}
		return lastAssigned(&sorted[i]).Before(lastAssigned(&sorted[j]))
	})
	return &sorted[0]
}

// selectByRoundRobin picks the vendor waiting longest; never-assigned
// vendors go first.
func selectByRoundRobin(pool []models.Vendor) *models.Vendor {
	sorted := make([]models.Vendor, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lastAssigned(&sorted[i]).Before(lastAssigned(&sorted[j]))
	})
	return &sorted[0]
}

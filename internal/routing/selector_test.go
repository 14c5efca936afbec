package routing

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

func ts(daysAgo int) *time.Time {
	t := time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
	return &t
}

func poolOf(vendors ...models.Vendor) []models.Vendor {
	for i := range vendors {
		if vendors[i].ID == uuid.Nil {
			vendors[i].ID = uuid.New()
		}
	}
	return vendors
}

func TestSelectUsesPerformanceBranchWhenRollWithinPercentage(t *testing.T) {
	s := NewSelectorWithRoll(func() int { return 30 })
	pool := poolOf(
		models.Vendor{CompanyName: "low", LeadClosePercentage: 10, LastLeadAssigned: ts(10)},
		models.Vendor{CompanyName: "high", LeadClosePercentage: 90, LastLeadAssigned: ts(1)},
	)

	chosen, method := s.Select(pool, 30)
	if method != enums.RoutingMethodPerformance {
		t.Fatalf("roll 30 with pct 30 should use performance, got %s", method)
	}
	if chosen.CompanyName != "high" {
		t.Fatalf("performance branch should pick best closer, got %s", chosen.CompanyName)
	}
}

func TestSelectFallsToRoundRobinAboveThreshold(t *testing.T) {
	s := NewSelectorWithRoll(func() int { return 31 })
	pool := poolOf(
		models.Vendor{CompanyName: "recent", LeadClosePercentage: 90, LastLeadAssigned: ts(1)},
		models.Vendor{CompanyName: "waiting", LeadClosePercentage: 10, LastLeadAssigned: ts(30)},
	)

	chosen, method := s.Select(pool, 30)
	if method != enums.RoutingMethodRoundRobin {
		t.Fatalf("roll 31 with pct 30 should use round robin, got %s", method)
	}
	if chosen.CompanyName != "waiting" {
		t.Fatalf("round robin should pick the longest-waiting vendor, got %s", chosen.CompanyName)
	}
}

func TestPerformanceTieBreaksOnOldestAssignment(t *testing.T) {
	s := NewSelectorWithRoll(func() int { return 1 })
	pool := poolOf(
		models.Vendor{CompanyName: "recent", LeadClosePercentage: 50, LastLeadAssigned: ts(1)},
		models.Vendor{CompanyName: "older", LeadClosePercentage: 50, LastLeadAssigned: ts(20)},
	)

	chosen, _ := s.Select(pool, 100)
	if chosen.CompanyName != "older" {
		t.Fatalf("tie on close rate should go to the vendor waiting longest, got %s", chosen.CompanyName)
	}
}

func TestRoundRobinPrefersNeverAssigned(t *testing.T) {
	s := NewSelectorWithRoll(func() int { return 100 })
	pool := poolOf(
		models.Vendor{CompanyName: "assigned", LastLeadAssigned: ts(365)},
		models.Vendor{CompanyName: "fresh", LastLeadAssigned: nil},
	)

	chosen, _ := s.Select(pool, 0)
	if chosen.CompanyName != "fresh" {
		t.Fatalf("never-assigned vendor should be first in rotation, got %s", chosen.CompanyName)
	}
}

func TestSelectZeroPercentageNeverUsesPerformance(t *testing.T) {
	s := NewSelectorWithRoll(func() int { return 1 })
	pool := poolOf(models.Vendor{CompanyName: "only"})

	_, method := s.Select(pool, 0)
	if method != enums.RoutingMethodRoundRobin {
		t.Fatalf("pct 0 must always round robin, got %s", method)
	}
}

func TestSelectEmptyPool(t *testing.T) {
	s := NewSelector()
	chosen, method := s.Select(nil, 50)
	if chosen != nil || method != "" {
		t.Fatal("empty pool must select nothing")
	}
}

func TestSelectDoesNotMutatePoolOrder(t *testing.T) {
	s := NewSelectorWithRoll(func() int { return 100 })
	pool := poolOf(
		models.Vendor{CompanyName: "a", LastLeadAssigned: ts(1)},
		models.Vendor{CompanyName: "b", LastLeadAssigned: ts(10)},
	)

	s.Select(pool, 0)
	if pool[0].CompanyName != "a" || pool[1].CompanyName != "b" {
		t.Fatal("selection must not reorder the caller's pool")
	}
}

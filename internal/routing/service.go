package routing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/internal/accounts"
	"github.com/docksidelabs/leadrouter-backend/internal/geo"
	"github.com/docksidelabs/leadrouter-backend/internal/leads"
	"github.com/docksidelabs/leadrouter-backend/internal/vendors"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	"github.com/docksidelabs/leadrouter-backend/pkg/metrics"
	"github.com/docksidelabs/leadrouter-backend/pkg/outbox"
)

const defaultBulkConcurrency = 4

type service struct {
	vendorRepo  vendors.Repository
	leadRepo    leads.Repository
	accountRepo accounts.Repository
	resolver    geo.Resolver
	tx          txRunner
	outbox      outboxPublisher
	filter      *Filter
	selector    *Selector
	routing     *metrics.RoutingMetrics
	logg        *logger.Logger

	bulkConcurrency int
}

// Options tunes optional service behavior.
type Options struct {
	BulkConcurrency int
	Selector        *Selector
	Filter          *Filter
}

// NewService wires the routing engine. All repository, resolver, tx,
// outbox, and logger dependencies are required.
func NewService(
	vendorRepo vendors.Repository,
	leadRepo leads.Repository,
	accountRepo accounts.Repository,
	resolver geo.Resolver,
	tx txRunner,
	publisher outboxPublisher,
	routingMetrics *metrics.RoutingMetrics,
	logg *logger.Logger,
	opts Options,
) (Service, error) {
	if vendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	if leadRepo == nil {
		return nil, fmt.Errorf("lead repository is required")
	}
	if accountRepo == nil {
		return nil, fmt.Errorf("account repository is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("geo resolver is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("outbox publisher is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}

	filter := opts.Filter
	if filter == nil {
		filter = NewFilter(nil)
	}
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector()
	}
	concurrency := opts.BulkConcurrency
	if concurrency <= 0 {
		concurrency = defaultBulkConcurrency
	}

	return &service{
		vendorRepo:      vendorRepo,
		leadRepo:        leadRepo,
		accountRepo:     accountRepo,
		resolver:        resolver,
		tx:              tx,
		outbox:          publisher,
		filter:          filter,
		selector:        selector,
		routing:         routingMetrics,
		logg:            logg,
		bulkConcurrency: concurrency,
	}, nil
}

// FindMatchingVendors filters the account's roster down to vendors that
// pass status, availability, service, and coverage checks. Per-vendor
// data problems skip that vendor rather than failing the whole pool.
func (s *service) FindMatchingVendors(ctx context.Context, req MatchRequest) ([]MatchedVendor, error) {
	started := time.Now()

	loc := s.resolveLocation(ctx, req.Zip)

	roster, err := s.vendorRepo.ListByAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	policy := enums.StatusPolicyLive
	if req.TestMode {
		policy = enums.StatusPolicyTest
	}

	excluded := make(map[uuid.UUID]struct{}, len(req.ExcludeVendorIDs))
	for _, id := range req.ExcludeVendorIDs {
		excluded[id] = struct{}{}
	}

	target := req.serviceToMatch()
	matched := make([]MatchedVendor, 0, len(roster))
	for i := range roster {
		vendor := &roster[i]
		if _, skip := excluded[vendor.ID]; skip {
			continue
		}
		if !s.filter.StatusEligible(vendor, policy) {
			continue
		}
		if !s.filter.MatchesService(vendor, target) {
			continue
		}
		if !CoversLocation(vendor, req.Zip, loc) {
			continue
		}
		matched = append(matched, MatchedVendor{
			Vendor:      *vendor,
			MatchReason: coverageMatchReason(vendor, req.Zip, loc),
		})
	}

	s.routing.ObserveMatch(time.Since(started), len(matched))

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"account_id": req.AccountID.String(),
		"service":    target,
		"zip":        req.Zip,
		"matched":    len(matched),
	})
	s.logg.Info(logCtx, "vendor pool matched")
	return matched, nil
}

// resolveLocation maps the zip to a location. Unknown and malformed ZIPs
// resolve to nil rather than failing the lookup, so ZIP-exact and global
// coverage can still match.
func (s *service) resolveLocation(ctx context.Context, zip string) *geo.Location {
	loc, err := s.resolver.ResolveZip(ctx, zip)
	if err != nil {
		s.logg.Warn(ctx, "zip resolution failed; continuing without state/county")
		return nil
	}
	return loc
}

// SelectVendorFromPool applies the account's hybrid selection policy to
// an already-filtered pool.
func (s *service) SelectVendorFromPool(ctx context.Context, accountID uuid.UUID, pool []MatchedVendor) (*models.Vendor, enums.RoutingMethod, error) {
	if len(pool) == 0 {
		return nil, "", nil
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, "", err
	}

	flattened := make([]models.Vendor, len(pool))
	for i := range pool {
		flattened[i] = pool[i].Vendor
	}

	chosen, method := s.selector.Select(flattened, account.PerformancePercentage)
	if chosen == nil {
		return nil, "", nil
	}

	logCtx := s.logg.WithVendorID(ctx, chosen.ID.String())
	s.logg.Info(s.logg.WithField(logCtx, "method", method.String()), "vendor selected from pool")
	return chosen, method, nil
}

// CommitAssignment writes the assignment with a compare-and-set and, in
// the same transaction, advances the vendor rotation clock and stages
// the assignment event. Returns false when a concurrent committer beat
// us to the lead.
func (s *service) CommitAssignment(ctx context.Context, leadID, vendorID uuid.UUID, method enums.RoutingMethod) (bool, error) {
	var won bool
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		won, txErr = s.leadRepo.WithTx(tx).AssignIfUnassigned(ctx, leadID, vendorID, time.Now().UTC())
		if txErr != nil {
			return txErr
		}
		if !won {
			return nil
		}
		if touchErr := s.vendorRepo.WithTx(tx).TouchLastLeadAssigned(ctx, vendorID); touchErr != nil {
			return touchErr
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventLeadAssigned,
			AggregateType: enums.OutboxAggregateLead,
			AggregateID:   leadID,
			Version:       1,
			Data: LeadAssignedEvent{
				LeadID:   leadID,
				VendorID: vendorID,
				Method:   method,
			},
		})
	})
	if err != nil {
		return false, err
	}

	logCtx := s.logg.WithLeadID(s.logg.WithVendorID(ctx, vendorID.String()), leadID.String())
	if won {
		s.routing.IncAssignment(method.String())
		s.logg.Info(logCtx, "lead assignment committed")
	} else {
		s.routing.IncConflict()
		s.logg.Info(logCtx, "lead assignment lost race")
	}
	return won, nil
}

// RouteLead runs the full pipeline for one lead: resolve geography,
// match, select, commit. Already-assigned leads are a no-op success.
func (s *service) RouteLead(ctx context.Context, leadID uuid.UUID) (*AssignmentResult, error) {
	ctx = s.logg.WithLeadID(ctx, leadID.String())

	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.AssignedVendorID != nil {
		return &AssignmentResult{
			LeadID:   leadID,
			Assigned: true,
			VendorID: lead.AssignedVendorID,
		}, nil
	}

	account, err := s.accountRepo.FindByID(ctx, lead.AccountID)
	if err != nil {
		return nil, err
	}

	if err := s.persistResolvedGeo(ctx, lead); err != nil {
		return nil, err
	}

	pool, err := s.FindMatchingVendors(ctx, MatchRequest{
		AccountID:       lead.AccountID,
		ServiceCategory: lead.ServiceCategory,
		SpecificService: lead.SpecificService,
		Zip:             lead.Zip,
		TestMode:        account.TestMode,
	})
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		s.logg.Warn(ctx, "no eligible vendors for lead")
		return &AssignmentResult{LeadID: leadID, Assigned: false}, nil
	}

	chosen, method, err := s.SelectVendorFromPool(ctx, lead.AccountID, pool)
	if err != nil {
		return nil, err
	}

	won, err := s.CommitAssignment(ctx, leadID, chosen.ID, method)
	if err != nil {
		return nil, err
	}
	if !won {
		// Another committer assigned the lead while we were selecting.
		current, findErr := s.leadRepo.FindByID(ctx, leadID)
		if findErr != nil {
			return nil, findErr
		}
		return &AssignmentResult{
			LeadID:      leadID,
			Assigned:    current.AssignedVendorID != nil,
			VendorID:    current.AssignedVendorID,
			MatchedPool: len(pool),
		}, nil
	}

	vendorID := chosen.ID
	return &AssignmentResult{
		LeadID:      leadID,
		Assigned:    true,
		VendorID:    &vendorID,
		Method:      method,
		MatchedPool: len(pool),
	}, nil
}

func (s *service) persistResolvedGeo(ctx context.Context, lead *models.Lead) error {
	loc := s.resolveLocation(ctx, lead.Zip)
	if loc == nil {
		return nil
	}
	if lead.ResolvedState != nil && *lead.ResolvedState == loc.StateCode {
		return nil
	}
	lead.ResolvedState = &loc.StateCode
	lead.ResolvedCounty = &loc.County
	return s.leadRepo.UpdateResolvedGeo(ctx, lead.ID, &loc.StateCode, &loc.County)
}

// Reassign releases the lead from its current vendor and routes it to a
// different one. When excludePrevious is set the previous vendor is kept
// out of the new pool. If nobody else qualifies the lead stays unassigned
// in the reassigning state and a failure event is staged.
func (s *service) Reassign(ctx context.Context, leadID uuid.UUID, excludePrevious bool) (*ReassignmentResult, error) {
	ctx = s.logg.WithLeadID(ctx, leadID.String())

	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.AssignedVendorID == nil && lead.Status != enums.LeadStatusReassigning {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "lead has no assignment to reassign")
	}

	var previous uuid.UUID
	if lead.AssignedVendorID != nil {
		previous = *lead.AssignedVendorID
		released, relErr := s.leadRepo.BeginReassignment(ctx, leadID, previous)
		if relErr != nil {
			return nil, relErr
		}
		if !released {
			s.routing.IncReassignment(string(OutcomeConflict))
			return &ReassignmentResult{
				LeadID:           leadID,
				PreviousVendorID: previous,
				Outcome:          OutcomeConflict,
			}, nil
		}
	}

	account, err := s.accountRepo.FindByID(ctx, lead.AccountID)
	if err != nil {
		return nil, err
	}

	req := MatchRequest{
		AccountID:       lead.AccountID,
		ServiceCategory: lead.ServiceCategory,
		SpecificService: lead.SpecificService,
		Zip:             lead.Zip,
		TestMode:        account.TestMode,
	}
	if excludePrevious && previous != uuid.Nil {
		req.ExcludeVendorIDs = []uuid.UUID{previous}
	}

	pool, err := s.FindMatchingVendors(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		if emitErr := s.emitReassignmentFailed(ctx, leadID, previous); emitErr != nil {
			return nil, emitErr
		}
		s.routing.IncReassignment(string(OutcomeNoAlternative))
		s.logg.Warn(ctx, "no alternative vendor; lead left in reassigning state")
		return &ReassignmentResult{
			LeadID:           leadID,
			PreviousVendorID: previous,
			Outcome:          OutcomeNoAlternative,
		}, nil
	}

	chosen, method, err := s.SelectVendorFromPool(ctx, lead.AccountID, pool)
	if err != nil {
		return nil, err
	}

	won, err := s.commitReassignment(ctx, leadID, previous, chosen.ID, method)
	if err != nil {
		return nil, err
	}
	if !won {
		s.routing.IncReassignment(string(OutcomeConflict))
		return &ReassignmentResult{
			LeadID:           leadID,
			PreviousVendorID: previous,
			Outcome:          OutcomeConflict,
		}, nil
	}

	s.routing.IncReassignment(string(OutcomeReassigned))
	newVendorID := chosen.ID
	return &ReassignmentResult{
		LeadID:           leadID,
		PreviousVendorID: previous,
		NewVendorID:      &newVendorID,
		Outcome:          OutcomeReassigned,
		Method:           method,
	}, nil
}

func (s *service) commitReassignment(ctx context.Context, leadID, previousVendorID, newVendorID uuid.UUID, method enums.RoutingMethod) (bool, error) {
	var won bool
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		won, txErr = s.leadRepo.WithTx(tx).AssignIfUnassigned(ctx, leadID, newVendorID, time.Now().UTC())
		if txErr != nil {
			return txErr
		}
		if !won {
			return nil
		}
		if touchErr := s.vendorRepo.WithTx(tx).TouchLastLeadAssigned(ctx, newVendorID); touchErr != nil {
			return touchErr
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventLeadReassigned,
			AggregateType: enums.OutboxAggregateLead,
			AggregateID:   leadID,
			Version:       1,
			Data: LeadReassignedEvent{
				LeadID:           leadID,
				PreviousVendorID: previousVendorID,
				NewVendorID:      newVendorID,
				Method:           method,
			},
		})
	})
	if err != nil {
		return false, err
	}
	if won {
		s.routing.IncAssignment(method.String())
	}
	return won, nil
}

func (s *service) emitReassignmentFailed(ctx context.Context, leadID, previousVendorID uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventReassignmentFailed,
			AggregateType: enums.OutboxAggregateLead,
			AggregateID:   leadID,
			Version:       1,
			Data: ReassignmentFailedEvent{
				LeadID:           leadID,
				PreviousVendorID: previousVendorID,
				Reason:           "no alternative vendor matched",
			},
		})
	})
}

// BulkReassign runs reassignments concurrently with a bounded worker
// pool. Individual failures do not stop the batch; the combined error
// reports every lead that failed.
func (s *service) BulkReassign(ctx context.Context, leadIDs []uuid.UUID) ([]ReassignmentResult, error) {
	if len(leadIDs) == 0 {
		return nil, nil
	}

	var (
		mu      sync.Mutex
		results []ReassignmentResult
		errs    error
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.bulkConcurrency)

	for _, id := range leadIDs {
		leadID := id
		group.Go(func() error {
			result, err := s.Reassign(groupCtx, leadID, true)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("lead %s: %w", leadID, err))
				return nil
			}
			results = append(results, *result)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return results, errs
}

// UpdateConfiguration stores the account's performance percentage dial.
func (s *service) UpdateConfiguration(ctx context.Context, accountID uuid.UUID, performancePercentage int) error {
	if performancePercentage < 0 || performancePercentage > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "performance percentage must be between 0 and 100")
	}
	if err := s.accountRepo.UpdatePerformancePercentage(ctx, accountID, performancePercentage); err != nil {
		return err
	}
	logCtx := s.logg.WithAccountID(ctx, accountID.String())
	s.logg.Info(s.logg.WithField(logCtx, "performance_percentage", performancePercentage), "routing configuration updated")
	return nil
}

// GetStats reports the account's roster composition and configuration.
func (s *service) GetStats(ctx context.Context, accountID uuid.UUID) (*Stats, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	roster, err := s.vendorRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Configuration: Configuration{
			PerformancePercentage: account.PerformancePercentage,
			RoundRobinPercentage:  100 - account.PerformancePercentage,
		},
		TotalVendors:         len(roster),
		CoverageDistribution: make(map[string]int),
	}
	for i := range roster {
		vendor := &roster[i]
		if vendor.Status == enums.VendorStatusActive {
			stats.ActiveVendors++
		}
		if vendor.TakingNewWork {
			stats.VendorsTakingWork++
		}
		stats.CoverageDistribution[vendor.CoverageType.String()]++
	}
	return stats, nil
}

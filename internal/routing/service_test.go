package routing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/internal/accounts"
	"github.com/docksidelabs/leadrouter-backend/internal/geo"
	"github.com/docksidelabs/leadrouter-backend/internal/leads"
	"github.com/docksidelabs/leadrouter-backend/internal/vendors"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	"github.com/docksidelabs/leadrouter-backend/pkg/outbox"
)

type stubVendorRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*models.Vendor
	touched []uuid.UUID
}

func newStubVendorRepo(vendorList ...*models.Vendor) *stubVendorRepo {
	r := &stubVendorRepo{byID: map[uuid.UUID]*models.Vendor{}}
	for _, v := range vendorList {
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		r.byID[v.ID] = v
	}
	return r
}

func (r *stubVendorRepo) WithTx(tx *gorm.DB) vendors.Repository { return r }

func (r *stubVendorRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Vendor
	for _, v := range r.byID {
		if v.AccountID == accountID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
	}
	copied := *v
	return &copied, nil
}

func (r *stubVendorRepo) TouchLastLeadAssigned(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if v, ok := r.byID[id]; ok {
		v.LastLeadAssigned = &now
	}
	r.touched = append(r.touched, id)
	return nil
}

type stubLeadRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Lead
}

func newStubLeadRepo(leadList ...*models.Lead) *stubLeadRepo {
	r := &stubLeadRepo{byID: map[uuid.UUID]*models.Lead{}}
	for _, l := range leadList {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.byID[l.ID] = l
	}
	return r
}

func (r *stubLeadRepo) WithTx(tx *gorm.DB) leads.Repository { return r }

func (r *stubLeadRepo) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	r.byID[lead.ID] = lead
	return lead, nil
}

func (r *stubLeadRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	copied := *l
	return &copied, nil
}

func (r *stubLeadRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Lead, error) {
	return nil, nil
}

func (r *stubLeadRepo) AssignIfUnassigned(ctx context.Context, leadID, vendorID uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[leadID]
	if !ok {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	if l.AssignedVendorID != nil {
		return false, nil
	}
	l.AssignedVendorID = &vendorID
	l.AssignedAt = &at
	l.Status = enums.LeadStatusAssigned
	return true, nil
}

func (r *stubLeadRepo) BeginReassignment(ctx context.Context, leadID, fromVendorID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[leadID]
	if !ok || l.AssignedVendorID == nil || *l.AssignedVendorID != fromVendorID {
		return false, nil
	}
	l.AssignedVendorID = nil
	l.AssignedAt = nil
	l.Status = enums.LeadStatusReassigning
	return true, nil
}

func (r *stubLeadRepo) UpdateResolvedGeo(ctx context.Context, leadID uuid.UUID, state, county *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.byID[leadID]; ok {
		l.ResolvedState = state
		l.ResolvedCounty = county
	}
	return nil
}

type stubAccountRepo struct {
	account *models.Account
	updated map[uuid.UUID]int
}

func (r *stubAccountRepo) WithTx(tx *gorm.DB) accounts.Repository { return r }

func (r *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if r.account == nil || r.account.ID != id {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}
	copied := *r.account
	return &copied, nil
}

func (r *stubAccountRepo) UpdatePerformancePercentage(ctx context.Context, id uuid.UUID, percentage int) error {
	if r.updated == nil {
		r.updated = map[uuid.UUID]int{}
	}
	r.updated[id] = percentage
	return nil
}

type stubResolver struct {
	loc *geo.Location
}

func (r *stubResolver) ResolveZip(ctx context.Context, zip string) (*geo.Location, error) {
	if _, err := geo.NormalizeZip(zip); err != nil {
		return nil, err
	}
	return r.loc, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type stubPublisher struct {
	mu     sync.Mutex
	events []outbox.DomainEvent
}

func (p *stubPublisher) Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *stubPublisher) eventTypes() []enums.OutboxEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]enums.OutboxEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType)
	}
	return out
}

type fixture struct {
	svc       Service
	vendors   *stubVendorRepo
	leads     *stubLeadRepo
	accounts  *stubAccountRepo
	publisher *stubPublisher
}

func newFixture(t *testing.T, account *models.Account, vendorList []*models.Vendor, leadList []*models.Lead, roll int) *fixture {
	t.Helper()

	vrepo := newStubVendorRepo(vendorList...)
	lrepo := newStubLeadRepo(leadList...)
	arepo := &stubAccountRepo{account: account}
	publisher := &stubPublisher{}
	logg := logger.New(logger.Options{ServiceName: "test"})

	svc, err := NewService(
		vrepo, lrepo, arepo,
		&stubResolver{loc: fortLauderdale},
		stubTxRunner{}, publisher, nil, logg,
		Options{Selector: NewSelectorWithRoll(func() int { return roll })},
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return &fixture{svc: svc, vendors: vrepo, leads: lrepo, accounts: arepo, publisher: publisher}
}

func activeVendor(accountID uuid.UUID, name string, services ...string) *models.Vendor {
	return &models.Vendor{
		ID:              uuid.New(),
		AccountID:       accountID,
		CompanyName:     name,
		Status:          enums.VendorStatusActive,
		TakingNewWork:   true,
		ServicesOffered: services,
		CoverageType:    enums.CoverageTypeGlobal,
	}
}

func unassignedLead(accountID uuid.UUID, category string) *models.Lead {
	return &models.Lead{
		ID:              uuid.New(),
		AccountID:       accountID,
		CustomerName:    "Test Customer",
		ServiceCategory: category,
		Zip:             "33301",
		Status:          enums.LeadStatusUnassigned,
	}
}

func TestRouteLeadAssignsAndEmits(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID, PerformancePercentage: 0}
	vendor := activeVendor(accountID, "Marine Pros", "Boat Maintenance")
	lead := unassignedLead(accountID, "Boat Maintenance")

	f := newFixture(t, account, []*models.Vendor{vendor}, []*models.Lead{lead}, 100)

	result, err := f.svc.RouteLead(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("RouteLead: %v", err)
	}
	if !result.Assigned {
		t.Fatal("expected assignment")
	}
	if result.VendorID == nil || *result.VendorID != vendor.ID {
		t.Fatalf("expected vendor %s, got %v", vendor.ID, result.VendorID)
	}
	if result.Method != enums.RoutingMethodRoundRobin {
		t.Fatalf("pct 0 should round robin, got %s", result.Method)
	}

	stored, _ := f.leads.FindByID(context.Background(), lead.ID)
	if stored.Status != enums.LeadStatusAssigned {
		t.Fatalf("expected assigned status, got %s", stored.Status)
	}
	if stored.ResolvedState == nil || *stored.ResolvedState != "FL" {
		t.Fatal("expected resolved state to be persisted")
	}

	if len(f.vendors.touched) != 1 || f.vendors.touched[0] != vendor.ID {
		t.Fatal("expected vendor rotation clock to advance")
	}

	types := f.publisher.eventTypes()
	if len(types) != 1 || types[0] != enums.OutboxEventLeadAssigned {
		t.Fatalf("expected one lead_assigned event, got %v", types)
	}
}

func TestRouteLeadAlreadyAssignedIsNoOp(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	existing := uuid.New()
	lead := unassignedLead(accountID, "Boat Maintenance")
	lead.AssignedVendorID = &existing
	lead.Status = enums.LeadStatusAssigned

	f := newFixture(t, account, nil, []*models.Lead{lead}, 100)

	result, err := f.svc.RouteLead(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("RouteLead: %v", err)
	}
	if !result.Assigned || result.VendorID == nil || *result.VendorID != existing {
		t.Fatal("already-assigned lead should report its current vendor")
	}
	if len(f.publisher.eventTypes()) != 0 {
		t.Fatal("no events should be emitted for a no-op route")
	}
}

func TestRouteLeadNoEligibleVendors(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	// vendor offers an unrelated category
	vendor := activeVendor(accountID, "Towing Co", "Boat Towing")
	lead := unassignedLead(accountID, "Boat Maintenance")

	f := newFixture(t, account, []*models.Vendor{vendor}, []*models.Lead{lead}, 100)

	result, err := f.svc.RouteLead(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("RouteLead: %v", err)
	}
	if result.Assigned {
		t.Fatal("expected no assignment")
	}
	if len(f.publisher.eventTypes()) != 0 {
		t.Fatal("no events expected when nothing matched")
	}
}

func TestRouteLeadTestModeAdmitsPendingVendor(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID, TestMode: true}
	vendor := activeVendor(accountID, "Pending LLC", "Boat Maintenance")
	vendor.Status = enums.VendorStatusPending
	lead := unassignedLead(accountID, "Boat Maintenance")

	f := newFixture(t, account, []*models.Vendor{vendor}, []*models.Lead{lead}, 100)

	result, err := f.svc.RouteLead(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("RouteLead: %v", err)
	}
	if !result.Assigned {
		t.Fatal("test-mode account should route to pending vendors")
	}
}

func TestFindMatchingVendorsMalformedZipDegradesToGlobal(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	vendor := activeVendor(accountID, "Worldwide Marine", "Boat Maintenance")

	f := newFixture(t, account, []*models.Vendor{vendor}, nil, 100)

	pool, err := f.svc.FindMatchingVendors(context.Background(), MatchRequest{
		AccountID:       accountID,
		ServiceCategory: "Boat Maintenance",
		Zip:             "not-a-zip",
	})
	if err != nil {
		t.Fatalf("FindMatchingVendors: %v", err)
	}
	if len(pool) != 1 {
		t.Fatalf("global-coverage vendor should still match, got %d", len(pool))
	}
	if pool[0].Vendor.ID != vendor.ID {
		t.Fatalf("unexpected vendor %s", pool[0].Vendor.ID)
	}
}

func TestReassignPicksDifferentVendor(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	first := activeVendor(accountID, "First", "Boat Maintenance")
	second := activeVendor(accountID, "Second", "Boat Maintenance")
	lead := unassignedLead(accountID, "Boat Maintenance")
	now := time.Now()
	lead.AssignedVendorID = &first.ID
	lead.AssignedAt = &now
	lead.Status = enums.LeadStatusAssigned

	f := newFixture(t, account, []*models.Vendor{first, second}, []*models.Lead{lead}, 100)

	result, err := f.svc.Reassign(context.Background(), lead.ID, true)
	if err != nil {
		t.Fatalf("Reassign: %v", err)
	}
	if result.Outcome != OutcomeReassigned {
		t.Fatalf("expected reassigned, got %s", result.Outcome)
	}
	if result.NewVendorID == nil || *result.NewVendorID != second.ID {
		t.Fatal("previous vendor must be excluded from the new pool")
	}

	types := f.publisher.eventTypes()
	if len(types) != 1 || types[0] != enums.OutboxEventLeadReassigned {
		t.Fatalf("expected one lead_reassigned event, got %v", types)
	}
}

func TestReassignNoAlternativeLeavesLeadReassigning(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	only := activeVendor(accountID, "Only", "Boat Maintenance")
	lead := unassignedLead(accountID, "Boat Maintenance")
	now := time.Now()
	lead.AssignedVendorID = &only.ID
	lead.AssignedAt = &now
	lead.Status = enums.LeadStatusAssigned

	f := newFixture(t, account, []*models.Vendor{only}, []*models.Lead{lead}, 100)

	result, err := f.svc.Reassign(context.Background(), lead.ID, true)
	if err != nil {
		t.Fatalf("Reassign: %v", err)
	}
	if result.Outcome != OutcomeNoAlternative {
		t.Fatalf("expected no_alternative, got %s", result.Outcome)
	}

	stored, _ := f.leads.FindByID(context.Background(), lead.ID)
	if stored.AssignedVendorID != nil {
		t.Fatal("lead must be left unassigned")
	}
	if stored.Status != enums.LeadStatusReassigning {
		t.Fatalf("lead must stay in reassigning state, got %s", stored.Status)
	}

	types := f.publisher.eventTypes()
	if len(types) != 1 || types[0] != enums.OutboxEventReassignmentFailed {
		t.Fatalf("expected reassignment_failed event, got %v", types)
	}
}

func TestReassignWithoutExclusionReadmitsPreviousVendor(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	only := activeVendor(accountID, "Only", "Boat Maintenance")
	lead := unassignedLead(accountID, "Boat Maintenance")
	now := time.Now()
	lead.AssignedVendorID = &only.ID
	lead.AssignedAt = &now
	lead.Status = enums.LeadStatusAssigned

	f := newFixture(t, account, []*models.Vendor{only}, []*models.Lead{lead}, 100)

	result, err := f.svc.Reassign(context.Background(), lead.ID, false)
	if err != nil {
		t.Fatalf("Reassign: %v", err)
	}
	if result.Outcome != OutcomeReassigned {
		t.Fatalf("expected reassigned, got %s", result.Outcome)
	}
	if result.NewVendorID == nil || *result.NewVendorID != only.ID {
		t.Fatal("previous vendor should be back in the pool")
	}
}

func TestReassignUnassignedLeadIsStateConflict(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	lead := unassignedLead(accountID, "Boat Maintenance")

	f := newFixture(t, account, nil, []*models.Lead{lead}, 100)

	_, err := f.svc.Reassign(context.Background(), lead.ID, true)
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestBulkReassignAggregatesFailures(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	first := activeVendor(accountID, "First", "Boat Maintenance")
	second := activeVendor(accountID, "Second", "Boat Maintenance")

	lead := unassignedLead(accountID, "Boat Maintenance")
	now := time.Now()
	lead.AssignedVendorID = &first.ID
	lead.AssignedAt = &now
	lead.Status = enums.LeadStatusAssigned

	f := newFixture(t, account, []*models.Vendor{first, second}, []*models.Lead{lead}, 100)

	missing := uuid.New()
	results, err := f.svc.BulkReassign(context.Background(), []uuid.UUID{lead.ID, missing})
	if err == nil {
		t.Fatal("expected aggregated error for the missing lead")
	}
	if len(results) != 1 {
		t.Fatalf("expected one successful result, got %d", len(results))
	}
	if results[0].Outcome != OutcomeReassigned {
		t.Fatalf("expected reassigned outcome, got %s", results[0].Outcome)
	}
}

func TestUpdateConfigurationValidatesRange(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID}
	f := newFixture(t, account, nil, nil, 100)

	for _, invalid := range []int{-1, 101} {
		err := f.svc.UpdateConfiguration(context.Background(), accountID, invalid)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %d, got %v", invalid, err)
		}
	}

	if err := f.svc.UpdateConfiguration(context.Background(), accountID, 40); err != nil {
		t.Fatalf("valid percentage rejected: %v", err)
	}
	if f.accounts.updated[accountID] != 40 {
		t.Fatal("expected percentage to be stored")
	}
}

func TestGetStats(t *testing.T) {
	accountID := uuid.New()
	account := &models.Account{ID: accountID, PerformancePercentage: 25}

	active := activeVendor(accountID, "A", "Boat Maintenance")
	pending := activeVendor(accountID, "B", "Boat Maintenance")
	pending.Status = enums.VendorStatusPending
	pending.TakingNewWork = false
	pending.CoverageType = enums.CoverageTypeState

	f := newFixture(t, account, []*models.Vendor{active, pending}, nil, 100)

	stats, err := f.svc.GetStats(context.Background(), accountID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalVendors != 2 || stats.ActiveVendors != 1 || stats.VendorsTakingWork != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Configuration.PerformancePercentage != 25 || stats.Configuration.RoundRobinPercentage != 75 {
		t.Fatalf("unexpected configuration: %+v", stats.Configuration)
	}
	if stats.CoverageDistribution["global"] != 1 || stats.CoverageDistribution["state"] != 1 {
		t.Fatalf("unexpected distribution: %v", stats.CoverageDistribution)
	}
}

package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/internal/leads"
	internalrouting "github.com/docksidelabs/leadrouter-backend/internal/routing"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

type stubLeadsRepo struct {
	create func(ctx context.Context, lead *models.Lead) (*models.Lead, error)
}

func (s *stubLeadsRepo) WithTx(tx *gorm.DB) leads.Repository { return s }

func (s *stubLeadsRepo) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if s.create != nil {
		return s.create(ctx, lead)
	}
	lead.ID = uuid.New()
	return lead, nil
}

func (s *stubLeadsRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	panic("not implemented")
}

func (s *stubLeadsRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Lead, error) {
	panic("not implemented")
}

func (s *stubLeadsRepo) AssignIfUnassigned(ctx context.Context, leadID, vendorID uuid.UUID, at time.Time) (bool, error) {
	panic("not implemented")
}

func (s *stubLeadsRepo) BeginReassignment(ctx context.Context, leadID, fromVendorID uuid.UUID) (bool, error) {
	panic("not implemented")
}

func (s *stubLeadsRepo) UpdateResolvedGeo(ctx context.Context, leadID uuid.UUID, state, county *string) error {
	return nil
}

type stubRouter struct {
	routeLead func(ctx context.Context, leadID uuid.UUID) (*internalrouting.AssignmentResult, error)
}

func (s *stubRouter) FindMatchingVendors(ctx context.Context, req internalrouting.MatchRequest) ([]internalrouting.MatchedVendor, error) {
	panic("not implemented")
}

func (s *stubRouter) SelectVendorFromPool(ctx context.Context, accountID uuid.UUID, pool []internalrouting.MatchedVendor) (*models.Vendor, enums.RoutingMethod, error) {
	panic("not implemented")
}

func (s *stubRouter) CommitAssignment(ctx context.Context, leadID, vendorID uuid.UUID, method enums.RoutingMethod) (bool, error) {
	panic("not implemented")
}

func (s *stubRouter) RouteLead(ctx context.Context, leadID uuid.UUID) (*internalrouting.AssignmentResult, error) {
	if s.routeLead != nil {
		return s.routeLead(ctx, leadID)
	}
	return &internalrouting.AssignmentResult{LeadID: leadID}, nil
}

func (s *stubRouter) Reassign(ctx context.Context, leadID uuid.UUID, excludePrevious bool) (*internalrouting.ReassignmentResult, error) {
	panic("not implemented")
}

func (s *stubRouter) BulkReassign(ctx context.Context, leadIDs []uuid.UUID) ([]internalrouting.ReassignmentResult, error) {
	panic("not implemented")
}

func (s *stubRouter) UpdateConfiguration(ctx context.Context, accountID uuid.UUID, pct int) error {
	panic("not implemented")
}

func (s *stubRouter) GetStats(ctx context.Context, accountID uuid.UUID) (*internalrouting.Stats, error) {
	panic("not implemented")
}

func intakeBody(accountID uuid.UUID) string {
	payload := map[string]any{
		"account_id":       accountID,
		"customer_name":    "Sam Rivera",
		"customer_email":   "sam@example.com",
		"service_category": "Boat Maintenance",
		"specific_service": "Boat Oil Change",
		"zip":              "33301",
		"estimated_value":  450.50,
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestLeadIntakeCreatesAndRoutes(t *testing.T) {
	accountID := uuid.New()
	leadID := uuid.New()
	vendorID := uuid.New()

	repo := &stubLeadsRepo{
		create: func(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
			if lead.AccountID != accountID {
				t.Fatalf("unexpected account id %s", lead.AccountID)
			}
			if lead.Status != enums.LeadStatusUnassigned {
				t.Fatalf("new lead should start unassigned, got %s", lead.Status)
			}
			if lead.SpecificService == nil || *lead.SpecificService != "Boat Oil Change" {
				t.Fatal("specific service not carried through")
			}
			lead.ID = leadID
			return lead, nil
		},
	}
	svc := &stubRouter{
		routeLead: func(ctx context.Context, id uuid.UUID) (*internalrouting.AssignmentResult, error) {
			if id != leadID {
				t.Fatalf("routed wrong lead %s", id)
			}
			return &internalrouting.AssignmentResult{
				LeadID:   leadID,
				Assigned: true,
				VendorID: &vendorID,
				Method:   enums.RoutingMethodPerformance,
			}, nil
		},
	}

	handler := LeadIntake(repo, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/leads", strings.NewReader(intakeBody(accountID)))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			LeadID uuid.UUID `json:"lead_id"`
			Routed bool      `json:"routed"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.LeadID != leadID || !envelope.Data.Routed {
		t.Fatal("intake response missing routing outcome")
	}
}

func TestLeadIntakeRejectsInvalidBody(t *testing.T) {
	handler := LeadIntake(&stubLeadsRepo{}, &stubRouter{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/leads", strings.NewReader(`{"customer_name":"x"}`))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLeadIntakeKeepsLeadOnRoutingFailure(t *testing.T) {
	accountID := uuid.New()
	svc := &stubRouter{
		routeLead: func(ctx context.Context, id uuid.UUID) (*internalrouting.AssignmentResult, error) {
			return nil, errors.New("resolver down")
		},
	}

	handler := LeadIntake(&stubLeadsRepo{}, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/leads", strings.NewReader(intakeBody(accountID)))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("stored lead should still 201, got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Routed       bool   `json:"routed"`
			RoutingError string `json:"routing_error"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Routed || envelope.Data.RoutingError == "" {
		t.Fatal("routing failure should be reported alongside the stored lead")
	}
}

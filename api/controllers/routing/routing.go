package routing

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/docksidelabs/leadrouter-backend/api/responses"
	"github.com/docksidelabs/leadrouter-backend/api/validators"
	internalrouting "github.com/docksidelabs/leadrouter-backend/internal/routing"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
)

// FindMatches returns the eligible vendor pool for a hypothetical lead
// without committing anything. Operators use it to preview routing.
func FindMatches(svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "routing service unavailable"))
			return
		}

		accountID, err := validators.ParseQueryUUID(r, "account_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		serviceCategory := strings.TrimSpace(r.URL.Query().Get("service_category"))
		if serviceCategory == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "service_category is required"))
			return
		}

		testMode, err := validators.ParseQueryBool(r, "test_mode", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		req := internalrouting.MatchRequest{
			AccountID:       accountID,
			ServiceCategory: serviceCategory,
			Zip:             strings.TrimSpace(r.URL.Query().Get("zip")),
			TestMode:        testMode,
		}
		if specific := strings.TrimSpace(r.URL.Query().Get("specific_service")); specific != "" {
			req.SpecificService = &specific
		}

		pool, err := svc.FindMatchingVendors(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"matches": pool,
			"count":   len(pool),
		})
	}
}

type assignRequest struct {
	VendorID *uuid.UUID `json:"vendor_id,omitempty"`
	Method   string     `json:"method,omitempty"`
}

// AssignLead routes an unassigned lead. With an explicit vendor_id in the
// body the selection step is skipped and the commit goes straight to that
// vendor.
func AssignLead(svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "routing service unavailable"))
			return
		}

		leadID, err := validators.ParseURLParamUUID(r, "leadId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req assignRequest
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		if req.VendorID != nil {
			method := enums.RoutingMethod(req.Method)
			if req.Method == "" {
				method = enums.RoutingMethodRoundRobin
			}
			if !method.IsValid() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "method must be performance or round_robin"))
				return
			}

			won, err := svc.CommitAssignment(r.Context(), leadID, *req.VendorID, method)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !won {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "lead is already assigned"))
				return
			}
			responses.WriteSuccess(w, internalrouting.AssignmentResult{
				LeadID:   leadID,
				Assigned: true,
				VendorID: req.VendorID,
				Method:   method,
			})
			return
		}

		result, err := svc.RouteLead(r.Context(), leadID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

type reassignRequest struct {
	ExcludePrevious *bool `json:"exclude_previous,omitempty"`
}

// ReassignLead pulls an assigned lead back and routes it to a different
// vendor. The previous vendor is excluded from the new pool unless the
// body sets exclude_previous to false.
func ReassignLead(svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "routing service unavailable"))
			return
		}

		leadID, err := validators.ParseURLParamUUID(r, "leadId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req reassignRequest
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		excludePrevious := true
		if req.ExcludePrevious != nil {
			excludePrevious = *req.ExcludePrevious
		}

		result, err := svc.Reassign(r.Context(), leadID, excludePrevious)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

type bulkReassignRequest struct {
	LeadIDs []uuid.UUID `json:"lead_ids" validate:"required,min=1,max=500"`
}

// BulkReassign reassigns many leads; each lead is an independent unit of
// work, so partial failure still returns the per-lead outcomes.
func BulkReassign(svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "routing service unavailable"))
			return
		}

		var req bulkReassignRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		results, err := svc.BulkReassign(r.Context(), req.LeadIDs)
		if err != nil && len(results) == 0 {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload := map[string]any{
			"results": results,
			"total":   len(req.LeadIDs),
		}
		if err != nil {
			payload["partial_failure"] = err.Error()
		}
		responses.WriteSuccess(w, payload)
	}
}

type updateConfigRequest struct {
	PerformancePercentage *int `json:"performance_percentage" validate:"required,min=0,max=100"`
}

// UpdateConfiguration sets the account's performance/round-robin split.
func UpdateConfiguration(svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "routing service unavailable"))
			return
		}

		accountID, err := validators.ParseURLParamUUID(r, "accountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateConfigRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateConfiguration(r.Context(), accountID, *req.PerformancePercentage); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, internalrouting.Configuration{
			PerformancePercentage: *req.PerformancePercentage,
			RoundRobinPercentage:  100 - *req.PerformancePercentage,
		})
	}
}

// Stats returns the account's routing posture summary.
func Stats(svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "routing service unavailable"))
			return
		}

		accountID, err := validators.ParseURLParamUUID(r, "accountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.GetStats(r.Context(), accountID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

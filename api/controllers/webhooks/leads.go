package webhooks

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docksidelabs/leadrouter-backend/api/responses"
	"github.com/docksidelabs/leadrouter-backend/api/validators"
	"github.com/docksidelabs/leadrouter-backend/internal/leads"
	internalrouting "github.com/docksidelabs/leadrouter-backend/internal/routing"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
)

type leadIntakeRequest struct {
	AccountID       uuid.UUID       `json:"account_id" validate:"required"`
	CustomerName    string          `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerEmail   *string         `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone   *string         `json:"customer_phone,omitempty" validate:"omitempty,max=32"`
	ServiceCategory string          `json:"service_category" validate:"required,min=1,max=200"`
	SpecificService *string         `json:"specific_service,omitempty" validate:"omitempty,max=200"`
	Zip             string          `json:"zip" validate:"required,min=5,max=10"`
	EstimatedValue  decimal.Decimal `json:"estimated_value,omitempty"`
	SourceForm      *string         `json:"source_form,omitempty" validate:"omitempty,max=100"`
}

// LeadIntake accepts an already-normalized lead from an upstream form
// provider, persists it, and routes it synchronously. Routing failure does
// not lose the lead; it stays unassigned for a later routing attempt.
func LeadIntake(repo leads.Repository, svc internalrouting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lead intake unavailable"))
			return
		}

		var req leadIntakeRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead := &models.Lead{
			AccountID:       req.AccountID,
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ServiceCategory: strings.TrimSpace(req.ServiceCategory),
			SpecificService: req.SpecificService,
			Zip:             strings.TrimSpace(req.Zip),
			EstimatedValue:  req.EstimatedValue,
			Status:          enums.LeadStatusUnassigned,
			SourceForm:      req.SourceForm,
		}

		created, err := repo.Create(r.Context(), lead)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist lead"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithLeadID(ctx, created.ID.String())
		}

		result, routeErr := svc.RouteLead(ctx, created.ID)
		if routeErr != nil {
			// The lead is stored; report intake success with the routing
			// failure attached so the caller can retry the assignment.
			if logg != nil {
				logg.Error(ctx, "intake.route_failed", routeErr)
			}
			responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
				"lead_id":       created.ID,
				"routed":        false,
				"routing_error": routeErr.Error(),
			})
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"lead_id":    created.ID,
			"routed":     result.Assigned,
			"assignment": result,
		})
	}
}

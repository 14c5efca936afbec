package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/docksidelabs/leadrouter-backend/api/controllers"
	routingcontrollers "github.com/docksidelabs/leadrouter-backend/api/controllers/routing"
	webhookcontrollers "github.com/docksidelabs/leadrouter-backend/api/controllers/webhooks"
	"github.com/docksidelabs/leadrouter-backend/api/middleware"
	"github.com/docksidelabs/leadrouter-backend/internal/leads"
	internalrouting "github.com/docksidelabs/leadrouter-backend/internal/routing"
	"github.com/docksidelabs/leadrouter-backend/pkg/config"
	"github.com/docksidelabs/leadrouter-backend/pkg/db"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	"github.com/docksidelabs/leadrouter-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	leadsRepo leads.Repository,
	routingSvc internalrouting.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/webhooks", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, logg))
		r.Post("/leads", webhookcontrollers.LeadIntake(leadsRepo, routingSvc, logg))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))
		r.Get("/ping", controllers.AdminPing())

		r.Route("/v1/routing", func(r chi.Router) {
			r.Get("/vendors/match", routingcontrollers.FindMatches(routingSvc, logg))

			r.Route("/leads", func(r chi.Router) {
				r.Post("/reassign", routingcontrollers.BulkReassign(routingSvc, logg))
				r.Post("/{leadId}/assign", routingcontrollers.AssignLead(routingSvc, logg))
				r.Post("/{leadId}/reassign", routingcontrollers.ReassignLead(routingSvc, logg))
			})

			r.Route("/accounts/{accountId}", func(r chi.Router) {
				r.Get("/stats", routingcontrollers.Stats(routingSvc, logg))
				// Changing the split reshapes every future assignment, so
				// only admins get the dial.
				r.With(middleware.RequireRole(string(enums.APIRoleAdmin), logg)).
					Put("/config", routingcontrollers.UpdateConfiguration(routingSvc, logg))
			})
		})
	})

	return r
}

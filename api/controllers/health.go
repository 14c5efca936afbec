package controllers

import (
	"context"
	"net/http"

	"github.com/docksidelabs/leadrouter-backend/api/responses"
	"github.com/docksidelabs/leadrouter-backend/pkg/config"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LeadRouter-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when every backing dependency answers.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LeadRouter-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		for name, p := range map[string]pinger{"db": dbP, "redis": redisP} {
			if p == nil {
				checks[name] = "skipped"
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "health.dependency", err)
				}
				continue
			}
			checks[name] = "up"
		}

		if !healthy {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]any{
				"status": "degraded",
				"checks": checks,
			})
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status": "ready",
			"checks": checks,
		})
	}
}

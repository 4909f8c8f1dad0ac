package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/pebworks/steelquote-backend/api/responses"
	"github.com/pebworks/steelquote-backend/pkg/config"
	"github.com/pebworks/steelquote-backend/pkg/db"
	"github.com/pebworks/steelquote-backend/pkg/logger"
	"github.com/pebworks/steelquote-backend/pkg/redis"
)

const healthCheckTimeout = 3 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SteelQuote-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings each dependency and reports per-component status. Any
// failing component turns the overall response into a 503.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SteelQuote-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		components := map[string]string{}
		healthy := true

		components["database"] = pingStatus(ctx, logg, "database", func(ctx context.Context) error {
			if dbP == nil {
				return nil
			}
			return dbP.Ping(ctx)
		}, &healthy)
		components["redis"] = pingStatus(ctx, logg, "redis", func(ctx context.Context) error {
			if redisP == nil {
				return nil
			}
			return redisP.Ping(ctx)
		}, &healthy)

		status := http.StatusOK
		overall := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		responses.WriteSuccessStatus(w, status, map[string]any{
			"status":     overall,
			"components": components,
		})
	}
}

func pingStatus(ctx context.Context, logg *logger.Logger, name string, ping func(context.Context) error, healthy *bool) string {
	if err := ping(ctx); err != nil {
		*healthy = false
		if logg != nil {
			logg.Error(logg.WithField(ctx, "component", name), "health.check.failed", err)
		}
		return "down"
	}
	return "ok"
}

// Package httptransport assembles the public HTTP surface from the domain handlers.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"papertrail/internal/platform/metrics"
	"papertrail/internal/platform/middleware"
	"papertrail/internal/transport/http/shared"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/platform/httputil"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing dependency is usable.
type HealthCheck func(ctx context.Context) error

// RouterConfig carries the cross-cutting settings of the router.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	Development    bool
	Health         HealthCheck
}

// NewRouter wires the middleware chain, operational endpoints, and every domain handler.
func NewRouter(cfg RouterConfig, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestTime)
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	if cfg.Development {
		r.Use(middleware.CORS())
	}

	r.NotFound(shared.NotFound)
	r.MethodNotAllowed(shared.MethodNotAllowed)

	r.Get("/healthz", healthHandler(cfg.Logger, cfg.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func healthHandler(logger *slog.Logger, check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if check != nil {
			if err := check(ctx); err != nil {
				logger.ErrorContext(ctx, "health check failed",
					"request_id", middleware.GetRequestID(ctx),
					"error", err.Error(),
				)
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "database unavailable"))
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"papertrail/internal/transport/http/shared"
)

// Service defines the bill catalog operations exposed over HTTP.
type Service interface {
	Subjects(ctx context.Context) ([]string, error)
}

type Handler struct {
	logger *slog.Logger
	bills  Service
}

func New(bills Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, bills: bills}
}

// Register registers the bill routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/bills/subjects", h.handleSubjects)
}

func (h *Handler) handleSubjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjects, err := h.bills.Subjects(ctx)
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load bill subjects")
		return
	}
	shared.WriteJSON(w, subjects)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"papertrail/internal/donation/models"
	"papertrail/internal/transport/http/shared"
	id "papertrail/pkg/domain"
)

// Service defines the donation operations exposed over HTTP.
type Service interface {
	Summary(ctx context.Context, politicianID id.PoliticianID) ([]models.IndustryTotal, error)
	FilteredSummary(ctx context.Context, politicianID id.PoliticianID, topic string) ([]models.IndustryTotal, error)
	Contributions(ctx context.Context, donorID id.DonorID) ([]models.Contribution, error)
}

// Handler serves donation summaries and donor histories.
type Handler struct {
	logger    *slog.Logger
	donations Service
}

// New creates a donation Handler.
func New(donations Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, donations: donations}
}

// Register registers the donation routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/politician/{id:[0-9]+}/donations/summary", h.handleSummary)
	r.Get("/api/politician/{id:[0-9]+}/donations/summary/filtered", h.handleFilteredSummary)
	r.Get("/api/donor/{id:[0-9]+}/donations", h.handleDonorDonations)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	politicianID, err := shared.PoliticianIDParam(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	totals, err := h.donations.Summary(ctx, politicianID)
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load donation summary")
		return
	}
	shared.WriteJSON(w, toSummaryResponse(totals))
}

func (h *Handler) handleFilteredSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	politicianID, err := shared.PoliticianIDParam(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	totals, err := h.donations.FilteredSummary(ctx, politicianID, r.URL.Query().Get("topic"))
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load filtered donation summary")
		return
	}
	shared.WriteJSON(w, toSummaryResponse(totals))
}

func (h *Handler) handleDonorDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donorID, err := shared.DonorIDParam(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	items, err := h.donations.Contributions(ctx, donorID)
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load donor donations")
		return
	}
	shared.WriteJSON(w, toContributionsResponse(items))
}

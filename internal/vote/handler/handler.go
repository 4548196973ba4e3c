package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"papertrail/internal/platform/middleware"
	"papertrail/internal/transport/http/shared"
	"papertrail/internal/vote/models"
)

// Service defines the vote history operation exposed over HTTP.
type Service interface {
	History(ctx context.Context, q models.HistoryQuery) (*models.HistoryPage, error)
}

// Handler serves a politician's paged voting record.
type Handler struct {
	logger *slog.Logger
	votes  Service
}

// New creates a vote Handler.
func New(votes Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, votes: votes}
}

// Register registers the vote routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/politician/{id:[0-9]+}/votes", h.handleVotes)
}

// handleVotes accepts page, sort, and the repeatable type and subject parameters.
func (h *Handler) handleVotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	politicianID, err := shared.PoliticianIDParam(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	params := r.URL.Query()
	page, err := models.ParsePage(params.Get("page"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid page parameter",
			"request_id", middleware.GetRequestID(ctx),
			"page", params.Get("page"),
		)
		shared.WriteError(w, err)
		return
	}

	result, err := h.votes.History(ctx, models.HistoryQuery{
		Filter: models.Filter{
			PoliticianID: politicianID,
			BillTypes:    params["type"],
			Subjects:     params["subject"],
		},
		Page: page,
		Sort: models.ParseSortOrder(params.Get("sort")),
	})
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load vote history")
		return
	}
	shared.WriteJSON(w, toHistoryResponse(result))
}

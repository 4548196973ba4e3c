package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"papertrail/internal/donor"
	"papertrail/internal/transport/http/shared"
	id "papertrail/pkg/domain"
)

// Service defines the donor lookups exposed over HTTP.
type Service interface {
	Search(ctx context.Context, name string) ([]donor.Donor, error)
	Get(ctx context.Context, donorID id.DonorID) (*donor.Donor, error)
}

// Handler serves donor search and profile lookups.
type Handler struct {
	logger *slog.Logger
	donors Service
}

func New(donors Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, donors: donors}
}

// Register registers the donor routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/donors/search", h.handleSearch)
	r.Get("/api/donor/{id:[0-9]+}", h.handleGet)
}

// Response is the JSON shape of a donor.
type Response struct {
	DonorID   id.DonorID `json:"donorid"`
	Name      string     `json:"name"`
	DonorType string     `json:"donortype"`
	Employer  *string    `json:"employer"`
	State     *string    `json:"state"`
}

func toResponse(d donor.Donor) Response {
	return Response{
		DonorID:   d.ID,
		Name:      d.Name,
		DonorType: d.DonorType,
		Employer:  d.Employer,
		State:     d.State,
	}
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	found, err := h.donors.Search(ctx, r.URL.Query().Get("name"))
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to search donors")
		return
	}
	out := make([]Response, 0, len(found))
	for _, d := range found {
		out = append(out, toResponse(d))
	}
	shared.WriteJSON(w, out)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donorID, err := shared.DonorIDParam(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	d, err := h.donors.Get(ctx, donorID)
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load donor")
		return
	}
	shared.WriteJSON(w, toResponse(*d))
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"papertrail/internal/politician"
	"papertrail/internal/transport/http/shared"
	id "papertrail/pkg/domain"
)

// Service defines the politician lookups exposed over HTTP.
type Service interface {
	Search(ctx context.Context, name string) ([]politician.Politician, error)
	Get(ctx context.Context, politicianID id.PoliticianID) (*politician.Politician, error)
}

// Handler serves politician search and profile lookups.
type Handler struct {
	logger      *slog.Logger
	politicians Service
}

func New(politicians Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, politicians: politicians}
}

// Register registers the politician routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/politicians/search", h.handleSearch)
	r.Get("/api/politician/{id:[0-9]+}", h.handleGet)
}

// Response is the JSON shape of a politician.
type Response struct {
	PoliticianID id.PoliticianID `json:"politicianid"`
	FirstName    string          `json:"firstname"`
	LastName     string          `json:"lastname"`
	Party        string          `json:"party"`
	State        string          `json:"state"`
	Role         *string         `json:"role"`
	IsActive     bool            `json:"isactive"`
}

func toResponse(p politician.Politician) Response {
	return Response{
		PoliticianID: p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Party:        p.Party,
		State:        p.State,
		Role:         p.Role,
		IsActive:     p.IsActive,
	}
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	found, err := h.politicians.Search(ctx, r.URL.Query().Get("name"))
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to search politicians")
		return
	}
	out := make([]Response, 0, len(found))
	for _, p := range found {
		out = append(out, toResponse(p))
	}
	shared.WriteJSON(w, out)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	politicianID, err := shared.PoliticianIDParam(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	p, err := h.politicians.Get(ctx, politicianID)
	if err != nil {
		shared.WriteServiceError(ctx, h.logger, w, err, "failed to load politician")
		return
	}
	shared.WriteJSON(w, toResponse(*p))
}

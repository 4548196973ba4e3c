// Package shared holds helpers used by every HTTP handler package.
package shared

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"papertrail/internal/platform/middleware"
	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/platform/httputil"
)

// WriteJSON writes v as a 200 response.
func WriteJSON(w http.ResponseWriter, v any) {
	httputil.WriteJSON(w, http.StatusOK, v)
}

// WriteError writes err using the domain error envelope.
func WriteError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}

// WriteServiceError logs a service failure at a level matching its code and writes the
// error envelope. Client errors are logged at warn, everything else at error.
func WriteServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	requestID := middleware.GetRequestID(ctx)
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal || code == dErrors.CodeUnavailable {
		logger.ErrorContext(ctx, msg,
			"request_id", requestID,
			"error", err.Error(),
		)
	} else {
		logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

// PoliticianIDParam reads the {id} route parameter. Routes constrain it to digits, so a
// parse failure can only mean the value overflows and is reported as not found.
func PoliticianIDParam(r *http.Request) (id.PoliticianID, error) {
	pid, err := id.ParsePoliticianID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, dErrors.New(dErrors.CodeNotFound, "politician not found")
	}
	return pid, nil
}

// DonorIDParam reads the {id} route parameter of donor routes.
func DonorIDParam(r *http.Request) (id.DonorID, error) {
	did, err := id.ParseDonorID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, dErrors.New(dErrors.CodeNotFound, "donor not found")
	}
	return did, nil
}

// NotFound is the JSON 404 used for unmatched routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "resource not found"))
}

// MethodNotAllowed is the JSON 405 used for routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{
		Error:            "method_not_allowed",
		ErrorDescription: "method not allowed",
	})
}

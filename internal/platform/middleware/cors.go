package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows cross-origin reads from any origin. It is only mounted in development,
// where the front end runs on its own dev server.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}

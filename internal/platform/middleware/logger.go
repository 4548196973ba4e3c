package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"

	"papertrail/pkg/requestcontext"
)

// Logger writes one access log line per request. 5xx responses log at error level,
// 4xx at warn, everything else at info.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := requestcontext.Now(r.Context())
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			ctx := r.Context()
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				"request_id", GetRequestID(ctx),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"client_ip", requestcontext.ClientIP(ctx),
			}
			attrs = append(attrs, clientAttrs(requestcontext.UserAgent(ctx))...)

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "http request", attrs...)
		})
	}
}

// clientAttrs summarizes a User-Agent as browser, OS and device class.
func clientAttrs(raw string) []any {
	if raw == "" {
		return []any{"client", "unknown"}
	}
	ua := useragent.New(raw)
	browser, version := ua.Browser()
	device := "desktop"
	switch {
	case ua.Bot():
		device = "bot"
	case ua.Mobile():
		device = "mobile"
	}
	return []any{
		"browser", browser,
		"browser_version", version,
		"os", ua.OS(),
		"device", device,
	}
}

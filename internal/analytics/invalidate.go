package analytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// InvalidateOnWrite bumps the cache version after every successful
// state-changing request.
func InvalidateOnWrite(cache *Cache, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusBadRequest {
				return
			}
			if err := cache.Bump(r.Context()); err != nil {
				logger.Warn("report cache bump failed", slog.Any("error", err))
			}
		})
	}
}

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"

	"real-estate-api/dto"
)

// Recover is the top-level panic boundary. Unexpected failures are logged
// with a correlation id and reported to the client as a generic message.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				traceID := uuid.NewString()
				slog.Error("Unhandled panic",
					"traceId", traceID,
					"method", r.Method,
					"url", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				resp := dto.Fail(http.StatusInternalServerError, "An unexpected error occurred.")
				resp.TraceID = traceID

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(resp)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

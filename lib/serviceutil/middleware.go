package serviceutil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mazen160/go-random"
)

type requestIdKey struct{}

// RequestId returns the id WithRequestLogging attached to ctx, or "" when
// there is none.
func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// WithRequestLogging tags each request with a random id (echoed in the
// X-Request-Id header) and logs its completion.
func WithRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id, err := random.String(12)
		if err != nil {
			slog.WarnContext(r.Context(), "failed to generate request id", "err", err)
		}
		ctx := context.WithValue(r.Context(), requestIdKey{}, id)
		w.Header().Set("X-Request-Id", id)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r.WithContext(ctx))

		slog.InfoContext(
			ctx, "request completed",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// WriteJSON writes data as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode json response", "err", err)
	}
}

package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthResponse     = `{"status":"ok"}`
	unhealthyResponse  = `{"status":"unavailable"}`
	healthProbeTimeout = 2 * time.Second
)

// HealthProbe checks a dependency the storefront cannot serve without, such as the
// Redis selection backend. A nil probe always reports healthy.
type HealthProbe func(ctx context.Context) error

// healthHandler answers readiness and liveness checks.
func healthHandler(probe HealthProbe, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		setNoStore(w)

		body := healthResponse
		status := http.StatusOK
		if probe != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
			err := probe(ctx)
			cancel()
			if err != nil {
				if logger != nil {
					logger.WarnContext(r.Context(), "health probe failed", "error", err)
				}
				body, status = unhealthyResponse, http.StatusServiceUnavailable
			}
		}

		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.WriteString(w, body); err != nil {
			// Nothing more to do if the client connection is gone.
			return
		}
	}
}

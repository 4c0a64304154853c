package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (the item registry and the EventBus both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one dependency probed by the health endpoint.
type HealthCheck struct {
	Name    string
	Checker HealthChecker
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler returns an http.HandlerFunc that probes every check and
// reports degraded status (503) if any of them fail.
func HealthHandler(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Checker.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Checks[c.Name] = "unreachable"
				continue
			}
			resp.Checks[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

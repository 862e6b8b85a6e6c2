package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, checker := range h.Health {
		if err := checker.HealthCheck(ctx); err != nil {
			h.Log.WithError(err).Warn("health check failed")
			WriteError(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}

	WriteJSON(w, Response{Success: true, Message: "ok"}, http.StatusOK)
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Not found", http.StatusNotFound)
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}

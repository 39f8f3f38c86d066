package handlers

import "net/http"

// Healthz is the liveness endpoint.
// It answers 200 whenever the process is up, regardless of store state.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	h.respondJson(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Readyz is the readiness endpoint.
// The collection service is only useful when its postgres store answers,
// so readiness pings the database and reports 503 until it does.
func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.httpError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}
	h.respondJson(w, http.StatusOK, map[string]string{"status": "ready"})
}

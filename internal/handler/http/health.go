package http

import (
	"fmt"
	"net/http"
)

// index answers the root path with the plain string "index".
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("index"))
}

// health reports 200 "ok" when the storage answers a ping and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

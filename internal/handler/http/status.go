package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

// kindStatus describes the sync state of a single cached collection.
type kindStatus struct {
	Synced     bool       `json:"synced"`
	LastSync   *time.Time `json:"last_sync,omitempty"`
	AgeSeconds *float64   `json:"age_seconds,omitempty"`
	Cursor     *int64     `json:"cursor,omitempty"`
}

type statusResponse struct {
	Initialized bool                      `json:"initialized"`
	Kinds       map[store.Kind]kindStatus `json:"kinds"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	kinds := make(map[store.Kind]kindStatus, len(store.Kinds()))
	for _, kind := range store.Kinds() {
		var ks kindStatus

		if ts, ok := h.repo.LastSyncFor(kind); ok {
			ks.Synced = true
			ks.LastSync = &ts
			age := now.Sub(ts).Seconds()
			ks.AgeSeconds = &age
		}
		if cursor, ok := h.repo.Cursor(kind); ok {
			ks.Cursor = &cursor
		}

		kinds[kind] = ks
	}

	response := statusResponse{
		Initialized: h.repo.IsInitialized(),
		Kinds:       kinds,
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}

package handle

import (
	"log"
	"net/http"
	"strconv"
)

const recentDefaultLimit = 50

// Recent lists the newest audit-log records. Returns 404 when no database
// is configured, since the log does not exist at all then.
func (h *Handle) Recent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	if h.repo == nil {
		http.Error(w, "audit log is not configured", http.StatusNotFound)
		return
	}

	limit := recentDefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	recs, err := h.repo.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("audit recent: %v", err)
		http.Error(w, "audit log unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

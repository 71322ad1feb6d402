package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"adlift/internal/core/domain"
)

// handleLogs returns recent campaign logs. It accepts optional `status`
// (pending, success, error; defaults to error) and `limit` query
// parameters. Invalid parameters result in HTTP 400.
func (h *Handler) handleLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := domain.LogStatus(q.Get("status"))
	if status == "" {
		status = domain.LogStatusError
	}
	switch status {
	case domain.LogStatusPending, domain.LogStatusSuccess, domain.LogStatusError:
	default:
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	limit := 0
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	logs, err := h.svc.ListLogs(r.Context(), status, limit)
	if err != nil {
		h.logger.Error("list logs error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(logs); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

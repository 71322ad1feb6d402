package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"adlift/internal/core/port"
)

// handleInsights passes through aggregated spend for an ad account. It
// requires `accountId` and `accessToken` query parameters and accepts an
// optional `datePreset` (defaults to last_30d). Remote failures are
// reported as HTTP 502 since this endpoint has no fallback data.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	creds := port.Credentials{
		AccountID:   q.Get("accountId"),
		AccessToken: q.Get("accessToken"),
	}
	if creds.AccountID == "" || creds.AccessToken == "" {
		http.Error(w, "accountId and accessToken are required", http.StatusBadRequest)
		return
	}
	datePreset := q.Get("datePreset")
	if datePreset == "" {
		datePreset = "last_30d"
	}

	insights, err := h.svc.AccountInsights(r.Context(), creds, datePreset)
	if err != nil {
		h.logger.Error("insights error", slog.Any("error", err))
		http.Error(w, "failed to fetch insights", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(insights); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adlift/internal/core/port"
)

// maxUploadBytes bounds the multipart upload size (32 MiB).
const maxUploadBytes = 32 << 20

// handleImport accepts a multipart upload (file, accountId, accessToken,
// optional pageId) and runs the import pipeline. Input errors produce
// HTTP 400, an invalid token HTTP 401. Per-campaign failures are part of
// the 200 response body, not HTTP errors.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	req := port.ImportReq{
		FileName:    header.Filename,
		Data:        data,
		AccountID:   r.FormValue("accountId"),
		AccessToken: r.FormValue("accessToken"),
		PageID:      r.FormValue("pageId"),
		UserID:      r.FormValue("userId"),
	}
	if req.AccountID == "" || req.AccessToken == "" {
		http.Error(w, "accountId and accessToken are required", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.ImportCampaigns(r.Context(), req)
	if err != nil {
		var inputErr *port.InputError
		switch {
		case errors.As(err, &inputErr):
			http.Error(w, inputErr.Msg, http.StatusBadRequest)
		case errors.Is(err, port.ErrInvalidToken):
			http.Error(w, "invalid or expired access token", http.StatusUnauthorized)
		default:
			h.logger.Error("import error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
)

// getServerVersion answers GET /version with the configured app version as
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("writing version failed")
	}
}

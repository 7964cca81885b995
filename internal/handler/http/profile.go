package http

import (
	"net/http"

	"github.com/MKhiriev/go-poke-keeper/internal/utils"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.me", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

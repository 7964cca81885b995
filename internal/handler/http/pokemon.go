package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPokemon(w http.ResponseWriter, r *http.Request) {
	pokemon, err := h.services.PokemonService.Resolve(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, "*Handler.getPokemon", err)
		return
	}

	utils.WriteJSON(w, pokemon, http.StatusOK)
}

func (h *Handler) updatePokemon(w http.ResponseWriter, r *http.Request) {
	var update models.PokemonUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updatePokemon", err)
		return
	}

	pokemon, err := h.services.PokemonService.Update(r.Context(), chi.URLParam(r, "name"), update)
	if err != nil {
		writeError(w, r, "*Handler.updatePokemon", err)
		return
	}

	utils.WriteJSON(w, pokemon, http.StatusOK)
}

func (h *Handler) deletePokemon(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PokemonService.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, "*Handler.deletePokemon", err)
		return
	}

	utils.WriteMessage(w, "pokemon deleted successfully", http.StatusOK)
}

// catch serves POST /catch. A vanished caller is reported as 401: the token
// outlived its user.
func (h *Handler) catch(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CatchRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.catch", err)
		return
	}

	caught, err := h.services.CaughtPokemonService.Catch(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrReferenceNotFound) {
			utils.WriteMessage(w, unauthorizedMessage, http.StatusUnauthorized)
			return
		}
		writeError(w, r, "*Handler.catch", err)
		return
	}

	utils.WriteJSON(w, caught, http.StatusOK)
}

func (h *Handler) release(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CaughtPokemonService.Release(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, "*Handler.release", err)
		return
	}

	utils.WriteMessage(w, "pokemon released successfully", http.StatusOK)
}

func (h *Handler) listCaught(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	caught, err := h.services.CaughtPokemonService.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listCaught", err)
		return
	}

	utils.WriteJSON(w, caught, http.StatusOK)
}

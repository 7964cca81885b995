package http

import (
	"net/http"

	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/go-chi/chi/v5"
)

// ── users ─────────────────────────────────────────────────────────────────────
//
// Any signed-in user can read the public user list; only the owner of an id
// can change or delete it.

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.CatalogService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.CatalogService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.UserUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	user, err := h.services.CatalogService.UpdateUser(r.Context(), callerID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CatalogService.DeleteUser(r.Context(), callerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}
	utils.WriteMessage(w, "user deleted successfully", http.StatusOK)
}

// ── pokemons ──────────────────────────────────────────────────────────────────

func (h *Handler) listPokemons(w http.ResponseWriter, r *http.Request) {
	pokemons, err := h.services.CatalogService.ListPokemons(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listPokemons", err)
		return
	}
	utils.WriteJSON(w, pokemons, http.StatusOK)
}

func (h *Handler) getPokemonByID(w http.ResponseWriter, r *http.Request) {
	pokemon, err := h.services.CatalogService.GetPokemon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getPokemonByID", err)
		return
	}
	utils.WriteJSON(w, pokemon, http.StatusOK)
}

func (h *Handler) createPokemon(w http.ResponseWriter, r *http.Request) {
	var pokemon models.Pokemon
	if err := utils.DecodeJSON(r, &pokemon); err != nil {
		writeError(w, r, "*Handler.createPokemon", err)
		return
	}

	created, err := h.services.CatalogService.CreatePokemon(r.Context(), pokemon)
	if err != nil {
		writeError(w, r, "*Handler.createPokemon", err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePokemonByID(w http.ResponseWriter, r *http.Request) {
	var update models.PokemonUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updatePokemonByID", err)
		return
	}

	pokemon, err := h.services.CatalogService.UpdatePokemon(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, "*Handler.updatePokemonByID", err)
		return
	}
	utils.WriteJSON(w, pokemon, http.StatusOK)
}

func (h *Handler) deletePokemonByID(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CatalogService.DeletePokemon(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deletePokemonByID", err)
		return
	}
	utils.WriteMessage(w, "pokemon deleted successfully", http.StatusOK)
}

// ── caught pokemons ───────────────────────────────────────────────────────────
//
// Every route is scoped to the caller's own records.

func (h *Handler) listCaughtPokemons(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	caught, err := h.services.CatalogService.ListCaughtPokemons(r.Context(), callerID)
	if err != nil {
		writeError(w, r, "*Handler.listCaughtPokemons", err)
		return
	}
	utils.WriteJSON(w, caught, http.StatusOK)
}

func (h *Handler) getCaughtPokemon(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	caught, err := h.services.CatalogService.GetCaughtPokemon(r.Context(), callerID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getCaughtPokemon", err)
		return
	}
	utils.WriteJSON(w, caught, http.StatusOK)
}

func (h *Handler) createCaughtPokemon(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var caught models.CaughtPokemon
	if err := utils.DecodeJSON(r, &caught); err != nil {
		writeError(w, r, "*Handler.createCaughtPokemon", err)
		return
	}

	created, err := h.services.CatalogService.CreateCaughtPokemon(r.Context(), callerID, caught)
	if err != nil {
		writeError(w, r, "*Handler.createCaughtPokemon", err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCaughtPokemon(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.CaughtPokemonUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateCaughtPokemon", err)
		return
	}

	caught, err := h.services.CatalogService.UpdateCaughtPokemon(r.Context(), callerID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, "*Handler.updateCaughtPokemon", err)
		return
	}
	utils.WriteJSON(w, caught, http.StatusOK)
}

func (h *Handler) deleteCaughtPokemon(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CatalogService.DeleteCaughtPokemon(r.Context(), callerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteCaughtPokemon", err)
		return
	}
	utils.WriteMessage(w, "caught pokemon deleted successfully", http.StatusOK)
}

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"github.com/MKhiriev/go-poke-keeper/models"
)

// signup serves POST /signup and POST /register.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	log.Info().Str("id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, "user created successfully", http.StatusCreated)
}

// signin serves POST /signin and POST /login. The token is returned in the
// body and in the Authorization header.
func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Message: "login successful",
		Token:   token.SignedString,
	}, http.StatusOK)
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/service"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
)

// errorStatusTable is matched in order; an error wrapping several sentinels
// gets the status of the first one listed.
var errorStatusTable = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{utils.ErrMalformedJSON, http.StatusBadRequest},

	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},

	{service.ErrUpstreamUnavailable, http.StatusBadGateway},

	{store.ErrCaughtPokemonNotFoundOrNotOwned, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrPokemonNotFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrPokemonAlreadyExists, http.StatusConflict},
	{store.ErrPokemonInUse, http.StatusConflict},

	{store.ErrReferenceNotFound, http.StatusBadRequest},
}

// statusFromError returns the HTTP status for err and the message to show.
// Unknown errors are 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status, entry.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped status with a {"message"} body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	utils.WriteMessage(w, message, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

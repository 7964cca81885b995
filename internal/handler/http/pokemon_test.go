package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-poke-keeper/internal/service"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPikachu = models.Pokemon{PokemonID: "p1", Name: "pikachu", ExternalID: 25, Types: []string{"electric"}}

// ─────────────────────────────────────────────
// GET /pokemon/{name}
// ─────────────────────────────────────────────

func TestGetPokemon(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "unknown to provider", err: fmt.Errorf("%w: provider", store.ErrPokemonNotFound), wantStatus: http.StatusNotFound},
		{name: "provider down", err: fmt.Errorf("%w: timeout", service.ErrUpstreamUnavailable), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pokemons := &fakePokemonService{
				resolveFn: func(_ context.Context, name string) (models.Pokemon, error) {
					assert.Equal(t, "pikachu", name)
					return testPikachu, tt.err
				},
			}
			router := newTestRouter(t, &service.Services{PokemonService: pokemons})

			rec := do(t, router, http.MethodGet, "/pokemon/pikachu", "", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err != nil {
				assert.NotEmpty(t, decodeMessage(t, rec))
				return
			}
			var got models.Pokemon
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, testPikachu.PokemonID, got.PokemonID)
		})
	}
}

func TestGetPokemon_IsPublic(t *testing.T) {
	pokemons := &fakePokemonService{
		resolveFn: func(context.Context, string) (models.Pokemon, error) { return testPikachu, nil },
	}
	router := newTestRouter(t, &service.Services{PokemonService: pokemons})

	rec := do(t, router, http.MethodGet, "/pokemon/pikachu", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// PATCH / DELETE /pokemon/{name}
// ─────────────────────────────────────────────

func TestUpdatePokemon(t *testing.T) {
	pokemons := &fakePokemonService{
		updateFn: func(_ context.Context, name string, u models.PokemonUpdate) (models.Pokemon, error) {
			assert.Equal(t, "pikachu", name)
			require.NotNil(t, u.Weight)
			if *u.Weight == 0 {
				return models.Pokemon{}, store.ErrPokemonAlreadyExists
			}
			p := testPikachu
			p.Weight = *u.Weight
			return p, nil
		},
	}
	router := newTestRouter(t, &service.Services{PokemonService: pokemons})

	rec := do(t, router, http.MethodPatch, "/pokemon/pikachu", `{"weight": 61}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "PATCH is protected")

	rec = do(t, router, http.MethodPatch, "/pokemon/pikachu", `{"weight": 61}`, "valid-u1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPatch, "/pokemon/pikachu", `{"weight": 0}`, "valid-u1")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeletePokemon(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "absent", err: store.ErrPokemonNotFound, wantStatus: http.StatusNotFound},
		{name: "in use", err: store.ErrPokemonInUse, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pokemons := &fakePokemonService{
				deleteFn: func(context.Context, string) error { return tt.err },
			}
			router := newTestRouter(t, &service.Services{PokemonService: pokemons})

			rec := do(t, router, http.MethodDelete, "/pokemon/pikachu", "", "valid-u1")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, decodeMessage(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// POST /catch, DELETE /release/{id}, GET /caught
// ─────────────────────────────────────────────

func TestCatch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "caught", body: `{"name":"pikachu"}`, wantStatus: http.StatusOK},
		{name: "name missing", body: `{}`, err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "bad json", body: `nope`, wantStatus: http.StatusBadRequest},
		{name: "unknown pokemon", body: `{"name":"x"}`, err: store.ErrPokemonNotFound, wantStatus: http.StatusNotFound},
		{name: "provider down", body: `{"name":"x"}`, err: service.ErrUpstreamUnavailable, wantStatus: http.StatusBadGateway},
		{name: "user gone", body: `{"name":"pikachu"}`, err: store.ErrReferenceNotFound, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caught := &fakeCaughtPokemonService{
				catchFn: func(_ context.Context, userID, name string) (models.CaughtPokemon, error) {
					assert.Equal(t, "u1", userID)
					if tt.err != nil {
						return models.CaughtPokemon{}, tt.err
					}
					p := testPikachu
					return models.CaughtPokemon{CaughtPokemonID: "c1", UserID: userID, PokemonID: p.PokemonID, Pokemon: &p}, nil
				},
			}
			router := newTestRouter(t, &service.Services{CaughtPokemonService: caught})

			rec := do(t, router, http.MethodPost, "/catch", tt.body, "valid-u1")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got models.CaughtPokemon
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.NotNil(t, got.Pokemon)
				assert.Equal(t, "pikachu", got.Pokemon.Name)
			}
		})
	}
}

func TestCatch_RequiresToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{CaughtPokemonService: &fakeCaughtPokemonService{}})

	rec := do(t, router, http.MethodPost, "/catch", `{"name":"pikachu"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRelease(t *testing.T) {
	caught := &fakeCaughtPokemonService{
		releaseFn: func(_ context.Context, id, userID string) error {
			if id == "c1" && userID == "u1" {
				return nil
			}
			return store.ErrCaughtPokemonNotFoundOrNotOwned
		},
	}
	router := newTestRouter(t, &service.Services{CaughtPokemonService: caught})

	rec := do(t, router, http.MethodDelete, "/release/c1", "", "valid-u1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodDelete, "/release/c1", "", "valid-u2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCaught_Empty(t *testing.T) {
	caught := &fakeCaughtPokemonService{
		listByUserFn: func(context.Context, string) ([]models.CaughtPokemon, error) {
			return []models.CaughtPokemon{}, nil
		},
	}
	router := newTestRouter(t, &service.Services{CaughtPokemonService: caught})

	rec := do(t, router, http.MethodGet, "/caught", "", "valid-u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

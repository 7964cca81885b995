package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-poke-keeper/internal/service"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_RequiresToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{CatalogService: &fakeCatalogService{}})

	for _, path := range []string{"/users", "/pokemons", "/caught-pokemons"} {
		rec := do(t, router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestCatalog_ListUsers(t *testing.T) {
	catalog := &fakeCatalogService{
		listUsersFn: func(context.Context) ([]models.User, error) {
			return []models.User{{UserID: "u1", Email: "a@b.c", PasswordHash: "secret-hash"}}, nil
		},
	}
	router := newTestRouter(t, &service.Services{CatalogService: catalog})

	rec := do(t, router, http.MethodGet, "/users", "", "valid-u1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestCatalog_UpdateUser_DuplicateEmail(t *testing.T) {
	catalog := &fakeCatalogService{
		updateUserFn: func(_ context.Context, callerID, id string, u models.UserUpdate) (models.User, error) {
			assert.Equal(t, "u1", callerID)
			assert.Equal(t, "u1", id)
			require.NotNil(t, u.Email)
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	router := newTestRouter(t, &service.Services{CatalogService: catalog})

	rec := do(t, router, http.MethodPut, "/users/u1", `{"email":"taken@example.com"}`, "valid-u1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCatalog_Pokemons(t *testing.T) {
	catalog := &fakeCatalogService{
		getPokemonFn: func(_ context.Context, id string) (models.Pokemon, error) {
			if id == "p1" {
				return testPikachu, nil
			}
			return models.Pokemon{}, store.ErrPokemonNotFound
		},
		createPokemonFn: func(_ context.Context, p models.Pokemon) (models.Pokemon, error) {
			if p.Name == "pikachu" {
				return models.Pokemon{}, store.ErrPokemonAlreadyExists
			}
			p.PokemonID = "p2"
			return p, nil
		},
		deletePokemonFn: func(context.Context, string) error { return store.ErrPokemonInUse },
	}
	router := newTestRouter(t, &service.Services{CatalogService: catalog})

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/pokemons/p1", "", "valid-u1").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/pokemons/zzz", "", "valid-u1").Code)
	assert.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/pokemons", `{"name":"eevee"}`, "valid-u1").Code)
	assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPost, "/pokemons", `{"name":"pikachu"}`, "valid-u1").Code)
	assert.Equal(t, http.StatusConflict, do(t, router, http.MethodDelete, "/pokemons/p1", "", "valid-u1").Code)
}

func TestCatalog_CreateCaughtPokemon_UnknownReferenceIsBadRequest(t *testing.T) {
	catalog := &fakeCatalogService{
		createCaughtPokemonFn: func(context.Context, string, models.CaughtPokemon) (models.CaughtPokemon, error) {
			return models.CaughtPokemon{}, store.ErrReferenceNotFound
		},
	}
	router := newTestRouter(t, &service.Services{CatalogService: catalog})

	rec := do(t, router, http.MethodPost, "/caught-pokemons", `{"user_id":"u1","pokemon_id":"nope"}`, "valid-u1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalog_OtherUsersRowsAreNotFound(t *testing.T) {
	catalog := &fakeCatalogService{
		updateUserFn: func(_ context.Context, callerID, id string, _ models.UserUpdate) (models.User, error) {
			assert.Equal(t, "gary", callerID)
			return models.User{}, store.ErrUserNotFound
		},
		deleteUserFn: func(_ context.Context, callerID, _ string) error {
			assert.Equal(t, "gary", callerID)
			return store.ErrUserNotFound
		},
		getCaughtPokemonFn: func(_ context.Context, callerID, _ string) (models.CaughtPokemon, error) {
			assert.Equal(t, "gary", callerID)
			return models.CaughtPokemon{}, store.ErrCaughtPokemonNotFoundOrNotOwned
		},
		deleteCaughtPokemonFn: func(_ context.Context, callerID, _ string) error {
			assert.Equal(t, "gary", callerID)
			return store.ErrCaughtPokemonNotFoundOrNotOwned
		},
	}
	router := newTestRouter(t, &service.Services{CatalogService: catalog})

	tests := []struct {
		method, path, body string
	}{
		{http.MethodPut, "/users/ash", `{"password":"pwned"}`},
		{http.MethodDelete, "/users/ash", ""},
		{http.MethodGet, "/caught-pokemons/c1", ""},
		{http.MethodDelete, "/caught-pokemons/c1", ""},
	}
	for _, tt := range tests {
		rec := do(t, router, tt.method, tt.path, tt.body, "valid-gary")
		assert.Equal(t, http.StatusNotFound, rec.Code, tt.method+" "+tt.path)
	}
}

func TestCatalog_CaughtPokemonsAreCallerScoped(t *testing.T) {
	catalog := &fakeCatalogService{
		listCaughtPokemonsFn: func(_ context.Context, callerID string) ([]models.CaughtPokemon, error) {
			return []models.CaughtPokemon{{CaughtPokemonID: "c1", UserID: callerID, PokemonID: "p1"}}, nil
		},
		createCaughtPokemonFn: func(_ context.Context, callerID string, c models.CaughtPokemon) (models.CaughtPokemon, error) {
			c.CaughtPokemonID = "c2"
			c.UserID = callerID
			return c, nil
		},
	}
	router := newTestRouter(t, &service.Services{CatalogService: catalog})

	rec := do(t, router, http.MethodGet, "/caught-pokemons", "", "valid-ash")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"ash"`)

	rec = do(t, router, http.MethodPost, "/caught-pokemons", `{"user_id":"gary","pokemon_id":"p1"}`, "valid-ash")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"ash"`)
	assert.NotContains(t, rec.Body.String(), "gary")
}

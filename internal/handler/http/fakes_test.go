package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/service"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes: each method delegates to an optional function field.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerUserFn func(ctx context.Context, c models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, c models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, u models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, c models.Credentials) (models.User, error) {
	return f.registerUserFn(ctx, c)
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, u models.User) (models.Token, error) {
	return f.createTokenFn(ctx, u)
}

// ParseToken accepts "valid-<userID>" unless parseTokenFn is set.
func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, token)
	}
	if userID, ok := strings.CutPrefix(token, "valid-"); ok {
		return models.Token{UserID: userID}, nil
	}
	return models.Token{}, service.ErrTokenIsInvalid
}

type fakeProfileService struct {
	meFn func(ctx context.Context, userID string) (models.Profile, error)
}

func (f *fakeProfileService) Me(ctx context.Context, userID string) (models.Profile, error) {
	return f.meFn(ctx, userID)
}

type fakePokemonService struct {
	resolveFn func(ctx context.Context, name string) (models.Pokemon, error)
	updateFn  func(ctx context.Context, name string, u models.PokemonUpdate) (models.Pokemon, error)
	deleteFn  func(ctx context.Context, name string) error
}

func (f *fakePokemonService) Resolve(ctx context.Context, name string) (models.Pokemon, error) {
	return f.resolveFn(ctx, name)
}

func (f *fakePokemonService) Update(ctx context.Context, name string, u models.PokemonUpdate) (models.Pokemon, error) {
	return f.updateFn(ctx, name, u)
}

func (f *fakePokemonService) Delete(ctx context.Context, name string) error {
	return f.deleteFn(ctx, name)
}

type fakeCaughtPokemonService struct {
	catchFn      func(ctx context.Context, userID, name string) (models.CaughtPokemon, error)
	releaseFn    func(ctx context.Context, id, userID string) error
	listByUserFn func(ctx context.Context, userID string) ([]models.CaughtPokemon, error)
}

func (f *fakeCaughtPokemonService) Catch(ctx context.Context, userID, name string) (models.CaughtPokemon, error) {
	return f.catchFn(ctx, userID, name)
}

func (f *fakeCaughtPokemonService) Release(ctx context.Context, id, userID string) error {
	return f.releaseFn(ctx, id, userID)
}

func (f *fakeCaughtPokemonService) ListByUser(ctx context.Context, userID string) ([]models.CaughtPokemon, error) {
	return f.listByUserFn(ctx, userID)
}

// fakeCatalogService embeds the interface; tests set only the fields they use.
type fakeCatalogService struct {
	service.CatalogService

	listUsersFn           func(ctx context.Context) ([]models.User, error)
	updateUserFn          func(ctx context.Context, callerID, id string, u models.UserUpdate) (models.User, error)
	deleteUserFn          func(ctx context.Context, callerID, id string) error
	getPokemonFn          func(ctx context.Context, id string) (models.Pokemon, error)
	createPokemonFn       func(ctx context.Context, p models.Pokemon) (models.Pokemon, error)
	deletePokemonFn       func(ctx context.Context, id string) error
	listCaughtPokemonsFn  func(ctx context.Context, callerID string) ([]models.CaughtPokemon, error)
	getCaughtPokemonFn    func(ctx context.Context, callerID, id string) (models.CaughtPokemon, error)
	createCaughtPokemonFn func(ctx context.Context, callerID string, c models.CaughtPokemon) (models.CaughtPokemon, error)
	deleteCaughtPokemonFn func(ctx context.Context, callerID, id string) error
}

func (f *fakeCatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeCatalogService) UpdateUser(ctx context.Context, callerID, id string, u models.UserUpdate) (models.User, error) {
	return f.updateUserFn(ctx, callerID, id, u)
}

func (f *fakeCatalogService) DeleteUser(ctx context.Context, callerID, id string) error {
	return f.deleteUserFn(ctx, callerID, id)
}

func (f *fakeCatalogService) GetPokemon(ctx context.Context, id string) (models.Pokemon, error) {
	return f.getPokemonFn(ctx, id)
}

func (f *fakeCatalogService) CreatePokemon(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	return f.createPokemonFn(ctx, p)
}

func (f *fakeCatalogService) DeletePokemon(ctx context.Context, id string) error {
	return f.deletePokemonFn(ctx, id)
}

func (f *fakeCatalogService) ListCaughtPokemons(ctx context.Context, callerID string) ([]models.CaughtPokemon, error) {
	return f.listCaughtPokemonsFn(ctx, callerID)
}

func (f *fakeCatalogService) GetCaughtPokemon(ctx context.Context, callerID, id string) (models.CaughtPokemon, error) {
	return f.getCaughtPokemonFn(ctx, callerID, id)
}

func (f *fakeCatalogService) CreateCaughtPokemon(ctx context.Context, callerID string, c models.CaughtPokemon) (models.CaughtPokemon, error) {
	return f.createCaughtPokemonFn(ctx, callerID, c)
}

func (f *fakeCatalogService) DeleteCaughtPokemon(ctx context.Context, callerID, id string) error {
	return f.deleteCaughtPokemonFn(ctx, callerID, id)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testServerConfig() config.Server {
	return config.Server{
		RequestTimeout:    5 * time.Second,
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
	}
}

// newTestRouter builds the full router around services. A nil auth or app
// info service is replaced by a default fake.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return NewHandler(services, testServerConfig(), logger.Nop()).Init()
}

// do sends a request through h. body may be nil; bearer is optional.
func do(t *testing.T, h http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), "body: %s", rec.Body.String())
	return msg.Message
}

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/mock"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type caughtTestDeps struct {
	caught   *mock.MockCaughtPokemonRepository
	pokemons *mock.MockPokemonRepository
	provider *mock.MockPokemonProvider
}

func newTestCaughtSvc(t *testing.T) (CaughtPokemonService, caughtTestDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := caughtTestDeps{
		caught:   mock.NewMockCaughtPokemonRepository(ctrl),
		pokemons: mock.NewMockPokemonRepository(ctrl),
		provider: mock.NewMockPokemonProvider(ctrl),
	}
	ids := &seqIDs{}
	pokemonSvc := NewPokemonService(deps.pokemons, deps.provider, ids, logger.Nop())

	return NewCaughtPokemonService(deps.caught, pokemonSvc, ids, logger.Nop()), deps
}

func TestCaughtPokemonService_Catch_EmbedsPokemon(t *testing.T) {
	svc, deps := newTestCaughtSvc(t)
	ctx := context.Background()
	stored := pikachu
	stored.PokemonID = "p1"

	deps.pokemons.EXPECT().FindPokemonByName(ctx, "pikachu").Return(stored, nil)
	deps.caught.EXPECT().CreateCaughtPokemon(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.CaughtPokemon) (models.CaughtPokemon, error) {
			assert.Equal(t, "user-1", c.UserID)
			assert.Equal(t, "p1", c.PokemonID)
			assert.NotEmpty(t, c.CaughtPokemonID)
			return c, nil
		},
	)

	got, err := svc.Catch(ctx, "user-1", "pikachu")

	require.NoError(t, err)
	require.NotNil(t, got.Pokemon)
	assert.Equal(t, "pikachu", got.Pokemon.Name)
}

func TestCaughtPokemonService_Catch_ResolveErrorPassesThrough(t *testing.T) {
	svc, deps := newTestCaughtSvc(t)

	deps.pokemons.EXPECT().FindPokemonByName(gomock.Any(), "pikachu").Return(models.Pokemon{}, store.ErrPokemonNotFound)
	deps.provider.EXPECT().GetPokemon(gomock.Any(), "pikachu").Return(models.Pokemon{}, context.DeadlineExceeded)

	_, err := svc.Catch(context.Background(), "user-1", "pikachu")

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCaughtPokemonService_Catch_UserGone(t *testing.T) {
	svc, deps := newTestCaughtSvc(t)

	deps.pokemons.EXPECT().FindPokemonByName(gomock.Any(), "pikachu").Return(models.Pokemon{PokemonID: "p1"}, nil)
	deps.caught.EXPECT().CreateCaughtPokemon(gomock.Any(), gomock.Any()).Return(models.CaughtPokemon{}, store.ErrReferenceNotFound)

	_, err := svc.Catch(context.Background(), "ghost", "pikachu")

	assert.ErrorIs(t, err, store.ErrReferenceNotFound)
}

func TestCaughtPokemonService_Catch_NoUser(t *testing.T) {
	svc, _ := newTestCaughtSvc(t)

	_, err := svc.Catch(context.Background(), "", "pikachu")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCaughtPokemonService_Release(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "owned record", repoErr: nil},
		{name: "another user's record", repoErr: store.ErrCaughtPokemonNotFoundOrNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestCaughtSvc(t)
			deps.caught.EXPECT().DeleteOwnedCaughtPokemon(gomock.Any(), "c1", "user-1").Return(tt.repoErr)

			err := svc.Release(context.Background(), "c1", "user-1")

			if tt.repoErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestCaughtPokemonService_Release_BlankID(t *testing.T) {
	svc, _ := newTestCaughtSvc(t)

	err := svc.Release(context.Background(), " ", "user-1")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCaughtPokemonService_ListByUser_EmptyIsNotNil(t *testing.T) {
	svc, deps := newTestCaughtSvc(t)
	deps.caught.EXPECT().ListCaughtPokemonsByUser(gomock.Any(), "user-1").Return(nil, nil)

	got, err := svc.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

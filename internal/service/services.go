package service

import (
	"fmt"

	"github.com/MKhiriev/go-poke-keeper/internal/adapter"
	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
)

type Services struct {
	AuthService          AuthService
	ProfileService       ProfileService
	PokemonService       PokemonService
	CaughtPokemonService CaughtPokemonService
	CatalogService       CatalogService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, provider adapter.PokemonProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := NewPasswordHasher(cfg.App.PasswordHashCost, cfg.App.PasswordHashConcurrency)
	ids := utils.NewUUIDGenerator()
	pokemonService := NewPokemonService(storages.PokemonRepository, provider, ids, logger)

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, hasher, ids, cfg.App, logger),
		ProfileService:       NewProfileService(storages.UserRepository, storages.AccountRepository, logger),
		PokemonService:       pokemonService,
		CaughtPokemonService: NewCaughtPokemonService(storages.CaughtPokemonRepository, pokemonService, ids, logger),
		CatalogService:       NewCatalogService(*storages, hasher, ids, logger),
		AppInfoService:       appInfoService,
	}, nil
}

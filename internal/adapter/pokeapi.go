package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"github.com/MKhiriev/go-poke-keeper/models"
)

// pokeAPIPokemon is the subset of the PokeAPI /pokemon/{name} response the
// service keeps.
type pokeAPIPokemon struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Height         int64  `json:"height"`
	Weight         int64  `json:"weight"`
	BaseExperience int64  `json:"base_experience"`
	Types          []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

func (p pokeAPIPokemon) toModel() models.Pokemon {
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}

	return models.Pokemon{
		Name:           p.Name,
		ExternalID:     p.ID,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
		Types:          types,
		SpriteURL:      p.Sprites.FrontDefault,
	}
}

type pokeAPIAdapter struct {
	client  *utils.HTTPClient
	timeout time.Duration
	logger  *logger.Logger
}

// NewPokeAPIAdapter constructs a [PokemonProvider] for the PokeAPI at
// cfg.PokeAPIURL. Every lookup is bounded by cfg.RequestTimeout as a whole,
// retries included; transient failures are retried cfg.RetryCount times.
func NewPokeAPIAdapter(cfg config.Adapter, log *logger.Logger) PokemonProvider {
	client := utils.NewHTTPClient(
		utils.WithBaseURL(strings.TrimRight(cfg.PokeAPIURL, "/")),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithRetry(cfg.RetryCount, cfg.RetryWait),
	)

	log.Debug().Str("base_url", cfg.PokeAPIURL).Msg("creating PokeAPI adapter")

	return &pokeAPIAdapter{client: client, timeout: cfg.RequestTimeout, logger: log}
}

// GetPokemon implements [PokemonProvider].
func (a *pokeAPIAdapter) GetPokemon(ctx context.Context, name string) (models.Pokemon, error) {
	log := logger.FromContextOr(ctx, a.logger)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/pokemon/{name}")
	if err != nil {
		log.Err(err).Str("func", "*pokeAPIAdapter.GetPokemon").Str("name", name).Msg("PokeAPI request failed")
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*pokeAPIAdapter.GetPokemon").
			Str("name", name).Int("status", resp.StatusCode()).
			Msg("PokeAPI returned an error status")
		return models.Pokemon{}, err
	}

	var body pokeAPIPokemon
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Pokemon{}, fmt.Errorf("%w: decode response: %w", ErrUpstreamUnavailable, err)
	}

	pokemon := body.toModel()
	if pokemon.Name == "" {
		pokemon.Name = name
	}

	log.Debug().Str("func", "*pokeAPIAdapter.GetPokemon").
		Str("name", pokemon.Name).Int64("external_id", pokemon.ExternalID).
		Dur("elapsed", resp.Time()).
		Msg("fetched pokemon from PokeAPI")

	return pokemon, nil
}

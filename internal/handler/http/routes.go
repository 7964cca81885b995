package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRateLimit())
	router.Use(cors.AllowAll().Handler)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/register", h.signup)
		r.Post("/signin", h.signin)
		r.Post("/login", h.signin)

		r.Get("/pokemon/{name}", h.getPokemon)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/pokemon/{name}", h.updatePokemon)
		r.Delete("/pokemon/{name}", h.deletePokemon)

		r.Post("/catch", h.catch)
		r.Delete("/release/{id}", h.release)
		r.Get("/caught", h.listCaught)
		r.Get("/me", h.me)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
		r.Route("/pokemons", func(r chi.Router) {
			r.Get("/", h.listPokemons)
			r.Post("/", h.createPokemon)
			r.Get("/{id}", h.getPokemonByID)
			r.Put("/{id}", h.updatePokemonByID)
			r.Delete("/{id}", h.deletePokemonByID)
		})
		r.Route("/caught-pokemons", func(r chi.Router) {
			r.Get("/", h.listCaughtPokemons)
			r.Post("/", h.createCaughtPokemon)
			r.Get("/{id}", h.getCaughtPokemon)
			r.Put("/{id}", h.updateCaughtPokemon)
			r.Delete("/{id}", h.deleteCaughtPokemon)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

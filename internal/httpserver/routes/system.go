package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
)

func init() { Register(registerSystem) }

func registerSystem(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Get("/healthz", handlers.Healthz(d))
	g.Get("/readyz", handlers.Readyz(d))
	g.Get("/api/stats", handlers.Stats(d))
	g.Post("/api/reload", handlers.Reload(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Put("/api/settings/theme", handlers.SetTheme(d))
	g.Put("/api/settings/background", handlers.SetBackground(d))
	g.Delete("/api/settings/background", handlers.ResetBackground(d))
}

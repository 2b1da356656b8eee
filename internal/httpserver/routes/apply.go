package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
)

func init() { Register(registerApply) }

func registerApply(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Post("/api/apply", handlers.CreateApplyEntry(d))
	g.Put("/api/apply/order", handlers.ReorderApplyEntries(d))
	g.Delete("/api/apply/{entryID}", handlers.DeleteApplyEntry(d))
}

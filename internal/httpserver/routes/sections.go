package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
)

func init() { Register(registerSections) }

func registerSections(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Post("/api/sections", handlers.CreateSection(d))
	g.Put("/api/sections/order", handlers.ReorderSections(d))
	g.Delete("/api/sections/{sectionID}", handlers.DeleteSection(d))

	g.Post("/api/sections/{sectionID}/links", handlers.AddLink(d))
	g.Put("/api/sections/{sectionID}/links/order", handlers.ReorderLinks(d))
	g.Put("/api/sections/{sectionID}/links/{linkID}", handlers.EditLink(d))
	g.Delete("/api/sections/{sectionID}/links/{linkID}", handlers.DeleteLink(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
)

func init() { Register(registerExport) }

func registerExport(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Get("/api/export", handlers.ExportAll(d))
	g.Get("/api/export/sections/{sectionID}", handlers.ExportSection(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
)

func init() { Register(registerDocument) }

func registerDocument(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Get("/api/document", handlers.Document(d))
	g.Get("/api/search", handlers.Search(d))
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

type createSectionRequest struct {
	Name string `json:"name" validate:"required"`
}

type reorderRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

func CreateSection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSectionRequest
		if !bind(w, r, d, &req) {
			return
		}

		section, ok := d.Hive.CreateSection(r.Context(), req.Name)
		if !ok {
			// Blank-after-trim names are silently ignored.
			w.WriteHeader(http.StatusNoContent)
			return
		}

		d.Logger.Info("section created",
			logger.String("id", section.ID),
			logger.String("name", section.Name))
		writeJSON(w, d, http.StatusCreated, section)
	}
}

func DeleteSection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sectionID")
		if err := d.Hive.DeleteSection(r.Context(), id); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderSections(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !bind(w, r, d, &req) {
			return
		}
		if err := d.Hive.ReorderSections(r.Context(), req.IDs); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

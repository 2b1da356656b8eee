package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
)

type linkRequest struct {
	URL         string `json:"url" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func AddLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if !bind(w, r, d, &req) {
			return
		}

		sectionID := chi.URLParam(r, "sectionID")
		link, err := d.Hive.AddLink(r.Context(), sectionID, req.URL, req.Name, req.Description)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		// Favicon decoration is best effort and never blocks the response.
		d.Favicons.Decorate(link.SectionID, link.ID, link.URL)

		writeJSON(w, d, http.StatusCreated, link)
	}
}

func EditLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if !bind(w, r, d, &req) {
			return
		}

		sectionID := chi.URLParam(r, "sectionID")
		linkID := chi.URLParam(r, "linkID")
		if err := d.Hive.EditLink(r.Context(), sectionID, linkID, req.URL, req.Name, req.Description); err != nil {
			writeDomainError(w, d, err)
			return
		}

		// The URL may have changed, so re-derive the favicon.
		d.Favicons.Decorate(sectionID, linkID, req.URL)

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := chi.URLParam(r, "sectionID")
		linkID := chi.URLParam(r, "linkID")
		if err := d.Hive.DeleteLink(r.Context(), sectionID, linkID); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !bind(w, r, d, &req) {
			return
		}
		sectionID := chi.URLParam(r, "sectionID")
		if err := d.Hive.ReorderLinks(r.Context(), sectionID, req.IDs); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

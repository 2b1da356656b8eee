package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
)

type createApplyEntryRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Description string `json:"description"`
}

func CreateApplyEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createApplyEntryRequest
		if !bind(w, r, d, &req) {
			return
		}

		entry, err := d.Hive.CreateApplyEntry(r.Context(), req.Title, req.Date, req.Description, req.Role)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, d, http.StatusCreated, entry)
	}
}

func DeleteApplyEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "entryID")
		if err := d.Hive.DeleteApplyEntry(r.Context(), id); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderApplyEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !bind(w, r, d, &req) {
			return
		}
		if err := d.Hive.ReorderApplyEntries(r.Context(), req.IDs); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

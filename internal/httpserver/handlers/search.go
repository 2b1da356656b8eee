package handlers

import (
	"net/http"
	"strings"

	"github.com/Aakash17x08/linkhive/internal/domain"
	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

type searchResponse struct {
	Sections     []domain.Section    `json:"sections"`
	ApplyEntries []domain.ApplyEntry `json:"applyEntries"`
}

// Search filters sections, links and apply entries by a case-insensitive
// substring query. The private section is never part of the results.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		doc := d.Hive.Snapshot()

		// Empty query -> everything public, unfiltered.
		if query == "" {
			writeJSON(w, d, http.StatusOK, searchResponse{
				Sections:     doc.PublicSections(),
				ApplyEntries: doc.ApplyEntries,
			})
			return
		}

		d.Logger.Debug("search request",
			logger.String("query", query))

		sections := domain.FilterSections(doc.Sections, query)
		if sections == nil {
			sections = []domain.Section{}
		}
		entries := domain.FilterApplyEntries(doc.ApplyEntries, query)
		if entries == nil {
			entries = []domain.ApplyEntry{}
		}
		writeJSON(w, d, http.StatusOK, searchResponse{
			Sections:     sections,
			ApplyEntries: entries,
		})
	}
}

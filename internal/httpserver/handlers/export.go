package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/export"
	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

func writeAttachment(w http.ResponseWriter, d deps.Deps, filename, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(body)); err != nil {
		d.Logger.Debug("failed to write export", logger.Error(err))
	}
}

// ExportAll downloads every public section as one plain-text file.
func ExportAll(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := d.Hive.Snapshot()
		writeAttachment(w, d, export.AllLinksFileName, export.FormatAll(doc.Sections))
	}
}

// ExportSection downloads a single section. The private section exports
// only while the gate is unlocked.
func ExportSection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := chi.URLParam(r, "sectionID")

		doc := d.Hive.Snapshot()
		for _, section := range doc.Sections {
			if section.ID != sectionID {
				continue
			}
			if section.IsPrivate && !d.Lockout.Unlocked() {
				writeError(w, d, http.StatusLocked, "private section is locked")
				return
			}
			writeAttachment(w, d, export.SectionFileName(section), export.FormatSection(section))
			return
		}

		writeError(w, d, http.StatusNotFound, "section not found")
	}
}

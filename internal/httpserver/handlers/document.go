package handlers

import (
	"net/http"

	"github.com/Aakash17x08/linkhive/internal/domain"
	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
)

// Document returns the whole document. While the privacy gate is not
// unlocked, the private section's links are blanked out so the payload
// never carries hidden content to a locked client.
func Document(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := d.Hive.Snapshot()
		if !d.Lockout.Unlocked() {
			for i := range doc.Sections {
				if doc.Sections[i].IsPrivate {
					doc.Sections[i].Links = []domain.Link{}
				}
			}
		}
		writeJSON(w, d, http.StatusOK, doc)
	}
}

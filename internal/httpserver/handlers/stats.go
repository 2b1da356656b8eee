package handlers

import (
	"net/http"
	"time"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
)

type statsResponse struct {
	Sections      int     `json:"sections"`
	Links         int     `json:"links"`
	ApplyEntries  int     `json:"applyEntries"`
	PrivacyState  string  `json:"privacyState"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Stats reports document counts and gate state, handy for a quick look
// at what the instance is holding.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sections, links, entries := d.Hive.Counts()
		res := d.Lockout.Status(r.Context())

		writeJSON(w, d, http.StatusOK, statsResponse{
			Sections:      sections,
			Links:         links,
			ApplyEntries:  entries,
			PrivacyState:  res.State.String(),
			UptimeSeconds: time.Since(d.StartTime).Seconds(),
		})
	}
}

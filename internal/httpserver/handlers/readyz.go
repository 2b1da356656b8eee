package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Redis string `json:"redis"`
}

// Readyz pings Redis: the app serves from memory either way, but a dead
// Redis means mutations are not being persisted.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := d.RedisClient.Ping(r.Context()).Err(); err != nil {
			d.Logger.Warn("readyz redis ping failed", logger.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(readyzResponse{Ready: false, Redis: "down"})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(readyzResponse{Ready: true, Redis: "ok"})
	}
}

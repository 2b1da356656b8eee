package handlers

import (
	"net/http"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

// Reload triggers a manual seed re-check. It only has an effect when a
// seed file is configured and the document is still empty.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SeedReloadTrigger == nil {
			writeError(w, d, http.StatusConflict, "seeding is not configured")
			return
		}

		select {
		case d.SeedReloadTrigger <- struct{}{}:
			d.Logger.Info("manual seed reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("seed reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}
}

package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/httpserver/handlers"
	"github.com/Aakash17x08/linkhive/internal/httpserver/mw"
)

func init() { Register(registerPrivacy) }

func registerPrivacy(r chi.Router, d deps.Deps) {
	g := guarded(r, d)
	g.Get("/api/privacy/status", handlers.PrivacyStatus(d))
	g.Post("/api/privacy/lock", handlers.Lock(d))
	g.Get("/api/privacy/section", handlers.PrivateSection(d))
	g.Post("/api/privacy/links", handlers.AddPrivateLink(d))
	g.Delete("/api/privacy/links/{linkID}", handlers.DeletePrivateLink(d))

	// The unlock endpoint is the only brute-forceable surface, so it
	// gets its own per-IP token bucket on top of the lockout machine.
	g.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.UnlockBurst,
		RefillPerIPPerMin: d.UnlockRefill,
		MaxEntries:        1024,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})).Post("/api/privacy/unlock", handlers.Unlock(d))
}

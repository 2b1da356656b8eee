package handlers

import (
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/lockout"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

type unlockRequest struct {
	Password string `json:"password" validate:"required"`
}

type privacyStatusResponse struct {
	State             string `json:"state"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
	RetryAfterSeconds int    `json:"retryAfterSeconds,omitempty"`
	RetryAfterDisplay string `json:"retryAfterDisplay,omitempty"`
}

func privacyStatus(res lockout.Result) privacyStatusResponse {
	out := privacyStatusResponse{
		State:             res.State.String(),
		AttemptsRemaining: res.AttemptsRemaining,
	}
	if res.State == lockout.StateLockedOut {
		out.RetryAfterSeconds = int(math.Ceil(res.RetryAfter.Seconds()))
		out.RetryAfterDisplay = lockout.FormatRemaining(res.RetryAfter)
	}
	return out
}

// PrivacyStatus reports the current gate state so the countdown can be
// rendered without submitting a password.
func PrivacyStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := d.Lockout.Status(r.Context())
		writeJSON(w, d, http.StatusOK, privacyStatus(res))
	}
}

// Unlock submits a password to the privacy gate. Wrong passwords are
// 401 with the remaining attempt count; an active lockout is 423 no
// matter what was submitted.
func Unlock(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req unlockRequest
		if !bind(w, r, d, &req) {
			return
		}

		res := d.Lockout.Submit(r.Context(), req.Password)
		switch res.State {
		case lockout.StateUnlocked:
			writeJSON(w, d, http.StatusOK, privacyStatus(res))
		case lockout.StateLockedOut:
			d.Logger.Info("privacy unlock rejected, locked out",
				logger.String("retry_after", lockout.FormatRemaining(res.RetryAfter)))
			writeJSON(w, d, http.StatusLocked, privacyStatus(res))
		default:
			writeJSON(w, d, http.StatusUnauthorized, privacyStatus(res))
		}
	}
}

// Lock re-hides the private section without touching the attempt counter.
func Lock(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Lockout.Lock()
		w.WriteHeader(http.StatusNoContent)
	}
}

// PrivateSection returns the private section, creating it on first
// access. Requires the gate to be unlocked.
func PrivateSection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Lockout.Unlocked() {
			writeError(w, d, http.StatusLocked, "private section is locked")
			return
		}
		section := d.Hive.CreatePrivateSection(r.Context())
		writeJSON(w, d, http.StatusOK, section)
	}
}

// AddPrivateLink adds a link to the private section, creating the
// section on first use.
func AddPrivateLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Lockout.Unlocked() {
			writeError(w, d, http.StatusLocked, "private section is locked")
			return
		}

		var req linkRequest
		if !bind(w, r, d, &req) {
			return
		}

		section := d.Hive.CreatePrivateSection(r.Context())
		link, err := d.Hive.AddLink(r.Context(), section.ID, req.URL, req.Name, req.Description)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		d.Favicons.Decorate(link.SectionID, link.ID, link.URL)

		writeJSON(w, d, http.StatusCreated, link)
	}
}

func DeletePrivateLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Lockout.Unlocked() {
			writeError(w, d, http.StatusLocked, "private section is locked")
			return
		}

		section, ok := d.Hive.PrivateSection()
		if !ok {
			writeError(w, d, http.StatusNotFound, "no private section")
			return
		}

		linkID := chi.URLParam(r, "linkID")
		if err := d.Hive.DeleteLink(r.Context(), section.ID, linkID); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

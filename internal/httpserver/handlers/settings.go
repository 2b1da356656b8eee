package handlers

import (
	"net/http"

	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
)

type themeRequest struct {
	IsDark *bool `json:"isDark" validate:"required"`
}

type backgroundRequest struct {
	Image string `json:"image" validate:"required,url"`
}

func SetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeRequest
		if !bind(w, r, d, &req) {
			return
		}
		d.Hive.SetDarkMode(r.Context(), *req.IsDark)
		w.WriteHeader(http.StatusNoContent)
	}
}

func SetBackground(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backgroundRequest
		if !bind(w, r, d, &req) {
			return
		}
		d.Hive.SetBackgroundImage(r.Context(), req.Image)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ResetBackground returns the board to the plain theme background.
func ResetBackground(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Hive.SetBackgroundImage(r.Context(), "")
		w.WriteHeader(http.StatusNoContent)
	}
}

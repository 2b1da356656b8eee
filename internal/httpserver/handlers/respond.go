package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Aakash17x08/linkhive/internal/domain"
	"github.com/Aakash17x08/linkhive/internal/httpserver/deps"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, d deps.Deps, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}

func writeError(w http.ResponseWriter, d deps.Deps, status int, msg string) {
	writeJSON(w, d, status, errorResponse{Error: msg})
}

// writeDomainError maps domain errors onto HTTP statuses: rejected input
// is 422, a missing section/link/entry is 404.
func writeDomainError(w http.ResponseWriter, d deps.Deps, err error) {
	switch {
	case domain.IsValidation(err):
		writeError(w, d, http.StatusUnprocessableEntity, err.Error())
	case domain.IsNotFound(err):
		writeError(w, d, http.StatusNotFound, err.Error())
	default:
		d.Logger.Error("unexpected handler error", logger.Error(err))
		writeError(w, d, http.StatusInternalServerError, "internal error")
	}
}

// bind decodes a JSON body into dst and runs struct validation. On
// failure it writes the error response itself and returns false.
func bind(w http.ResponseWriter, r *http.Request, d deps.Deps, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, d, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, d, http.StatusUnprocessableEntity, verrs[0].Error())
			return false
		}
		writeError(w, d, http.StatusUnprocessableEntity, "invalid request")
		return false
	}
	return true
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/orderdesk/apperr"
)

// Envelope is the uniform response shape: status flag, optional message,
// payload, and per-field validation errors.
type Envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respond(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, Envelope{Status: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, Envelope{
			Status:  false,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	logrus.WithError(err).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, Envelope{
		Status:  false,
		Message: "Internal server error",
	})
}

func respondValidation(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, Envelope{
		Status:  false,
		Message: "Validation Error",
		Errors:  fields,
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[key])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Envelope{
			Status:  false,
			Message: "Invalid " + key,
		})
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, Envelope{
			Status:  false,
			Message: "invalid request body",
		})
		return false
	}
	return true
}

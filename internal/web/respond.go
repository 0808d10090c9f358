// Package web holds the JSON helpers shared by all HTTP handlers.
package web

import (
	"encoding/json"
	"net/http"

	"gameshelf/internal/apperr"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a service error to its HTTP status and writes the envelope.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if kind, ok := apperr.KindOf(err); ok {
		switch kind {
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindBadRequest:
			status = http.StatusBadRequest
		case apperr.KindForbidden:
			status = http.StatusForbidden
		case apperr.KindConflict:
			status = http.StatusConflict
		case apperr.KindUnauthorized:
			status = http.StatusUnauthorized
		}
	}
	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields and
// bodies over 1 MB.
func DecodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Package httpjson holds the small JSON request/response helpers shared by
// all API handlers. Error responses use the envelope the frontend already
// understands: { "error": true, "message": "..." }.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxBodyBytes caps request bodies; every payload in this API is a small
// document or a single-field patch.
const maxBodyBytes = 1 << 20

// ErrorBody is the JSON envelope for every error response.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Respond writes v as a JSON response with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the standard error envelope with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, ErrorBody{Error: true, Message: message})
}

// Decode reads the request body into v with a size cap. Returns an error
// suitable for a 400 response.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

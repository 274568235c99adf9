// Package handlers holds the helpers shared by the per-resource HTTP
// handler packages: JSON responses, storage error mapping, and caller
// identity extraction.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/chris/campus-market/pkg/identity"
	"github.com/chris/campus-market/pkg/storage"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// WriteStoreError maps the storage sentinel errors onto HTTP statuses.
// Anything unexpected is logged and becomes a 500.
func WriteStoreError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, storage.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrPermissionDenied):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Printf("ERROR: failed to %s: %v", action, err)
		http.Error(w, fmt.Sprintf("Failed to %s: %v", action, err), http.StatusInternalServerError)
	}
}

// Caller extracts the request identity placed by the middleware. When it
// is missing, a 401 is written and ok is false.
func Caller(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	caller, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
	}
	return caller, ok
}

package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// readJSON decodes the request body into data, capping the body at one
// megabyte.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}
	return nil
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// money renders an amount the way the storefront displays it.
func money(n float64) string {
	return fmt.Sprintf("%.0f ₽", n)
}

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON body with statusCode. Bodies are never
// sniffed by the client.
//
// Marshaling happens before any header is written, so a value that cannot be
// encoded results in a plain-text 500 and a wrapped error instead of a
// half-written response.
//
//	WriteJSON(w, models.HealthReport{Status: "Healthy"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

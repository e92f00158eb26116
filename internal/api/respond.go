package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// WriteJSON writes a JSON response body with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, statusCode int, message, requestID string) {
	WriteJSON(w, statusCode, map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	})
}

// DecodeJSON parses a request body, rejecting unknown fields
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

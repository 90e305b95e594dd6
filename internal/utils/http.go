// Package utils holds small helpers shared by the transport layers: JSON
// response writing for the server and a resty-based HTTP client for the
// catalog client.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written when the payload itself cannot be encoded.
const internalErrorBody = `{"message":"internal server error"}`

// WriteJSON serializes data to JSON and writes it with statusCode and
// "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error and a
// generic JSON error body, and returns a wrapped error.
//
// It returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, page, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Message: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

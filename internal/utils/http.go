package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/models"
)

const contentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with a 500 error envelope and returns a
// wrapped error. Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.DataResponse{Success: true, Data: recipe}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		WriteError(w, "server error", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes a {"success": true, "data": ...} envelope.
func WriteData(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.DataResponse{Success: true, Data: data}, statusCode)
}

// WriteError writes a {"success": false, "error": message} envelope.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	body, _ := json.Marshal(models.ErrorResponse{Success: false, Error: message})

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"quickAI/internal/models"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CreationsResponse struct {
	Success   bool              `json:"success"`
	Creations []models.Creation `json:"creations"`
	Plan      string            `json:"plan,omitempty"`
}

type ContentResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError sends a failed envelope with an explicit status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, Response{Success: false, Message: message}, statusCode)
}

// WriteFailure sends a failed envelope with status 200; the client reads the
// outcome from the success flag.
func WriteFailure(w http.ResponseWriter, message string) {
	WriteError(w, message, http.StatusOK)
}

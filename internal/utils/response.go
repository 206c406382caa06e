package utils

import (
	"encoding/json"
	"net/http"
)

// APIResponse est l'enveloppe JSON commune, identique à celle du backend
// Zenith: { success, data, error, message }.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Success renvoie une réponse 200 avec les données
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error renvoie une réponse d'erreur avec le statut donné
func Error(w http.ResponseWriter, status int, err string) {
	LogError("[%d] %s", status, err)
	JSON(w, status, APIResponse{Success: false, Error: err})
}

// Message renvoie une réponse 200 avec un simple message
func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}

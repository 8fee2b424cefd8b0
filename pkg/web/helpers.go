// Package web contains shared HTTP plumbing: response envelope helpers,
// query parameter parsing and router middleware.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform JSON wrapper for every API response.
// Success responses carry Data (and Count for collections); error
// responses carry Message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// validationEnvelope extends the error envelope with per-field details.
type validationEnvelope struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	ValidationErrors map[string]string `json:"validation_errors"`
}

// RespondJSON marshals payload as-is and writes it with the given status.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondData writes a success envelope around a single entity.
func RespondData(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	RespondJSON(w, logger, status, Envelope{Success: true, Data: data})
}

// RespondList writes a success envelope around a collection, including its size.
func RespondList(w http.ResponseWriter, logger *slog.Logger, status int, data any, count int) {
	RespondJSON(w, logger, status, Envelope{Success: true, Count: &count, Data: data})
}

// RespondError writes an error envelope with the given status and message.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, Envelope{Success: false, Message: message})
}

// RespondValidationErrors writes a 400 envelope carrying per-field rule failures.
func RespondValidationErrors(w http.ResponseWriter, logger *slog.Logger, fields map[string]string) {
	RespondJSON(w, logger, http.StatusBadRequest, validationEnvelope{
		Success:          false,
		Message:          "Validation failed",
		ValidationErrors: fields,
	})
}

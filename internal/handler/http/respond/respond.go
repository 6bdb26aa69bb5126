// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the error can only be logged
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes a JSON body of the form {"message": ...}.
// All client-facing notices and 4xx errors use this shape.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}

// Failure writes a JSON body of the form {"message": ..., "error": ...}
// for server-side failures. The underlying error is sanitized before it
// reaches the client and logged in full detail server-side.
func Failure(w http.ResponseWriter, code int, msg string, err error) {
	detail := ""
	if err != nil {
		detail = SanitizeError(err)
		slog.Default().Error("request failed",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("message", msg),
			slog.String("error", detail))
	}
	JSON(w, code, map[string]string{"message": msg, "error": detail})
}

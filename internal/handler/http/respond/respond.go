// Package respond provides utilities for sending HTTP responses in JSON
// format. Error bodies always carry a single `msg` field.
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
			// Headers are already sent; the failure can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Msg writes an error response body of the form {"msg": "..."}.
func Msg(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"msg": msg})
}

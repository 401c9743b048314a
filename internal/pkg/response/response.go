package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope every non-2xx answer carries.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Error writes an error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// Raw writes a pre-serialized JSON body verbatim.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// Success writes a 200 JSON response.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

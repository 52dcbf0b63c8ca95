package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/carsapi/carsapi-go/internal/service"
)

const (
	maxBodyBytes = 1 << 20 // 1MB

	msgInvalidData  = "The given data was invalid."
	msgInternal     = "internal server error"
	msgUnauthorized = "Unauthorized"
)

var errBodyTooLarge = errors.New("request body too large")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func writeValidationError(w http.ResponseWriter, status int, verr *service.ValidationError) {
	writeJSON(w, status, validationResponse{
		Message: msgInvalidData,
		Errors:  verr.Fields,
	})
}

// decodeJSON reads a size-limited JSON body into dst. Oversized bodies are
// reported as errBodyTooLarge.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return err
	}
	return nil
}

func logInternal(r *http.Request, err error) {
	slog.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
}

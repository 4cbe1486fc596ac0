// Package respond provides utilities for sending HTTP responses in JSON
// format, including error translation that never leaks internals to users.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/service/auth"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already out; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// FromError translates a domain error into an HTTP response. Known
// sentinels map to their status and user-safe message; anything else is a
// 500 with a generic body and the real error in the log.
func FromError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		// Deliberately generic; unknown user and wrong password look the same.
		JSON(w, http.StatusBadRequest, map[string]string{"error": entity.ErrInvalidCredentials.Error()})
	case errors.Is(err, entity.ErrDuplicateUser):
		JSON(w, http.StatusBadRequest, map[string]string{"error": "a user with this email already exists"})
	case errors.Is(err, entity.ErrInvalidInput):
		JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	case errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, auth.ErrTokenMissingSubject):
		Unauthorized(w, "could not validate credentials")
	case errors.Is(err, entity.ErrForbidden):
		JSON(w, http.StatusForbidden, map[string]string{"error": "not enough permissions"})
	case errors.Is(err, entity.ErrNotFound):
		JSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		slog.Default().Error("internal server error",
			slog.String("error", Sanitize(err)))
		JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// Unauthorized writes a 401 with the WWW-Authenticate challenge expected
// by Bearer-token clients.
func Unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	JSON(w, http.StatusUnauthorized, map[string]string{"error": msg})
}

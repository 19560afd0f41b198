package helpers

import (
	"encoding/json"
	"net/http"

	"ehsaas_server/logger"
	apperr "ehsaas_server/pkg/errors"
)

// WriteJSONResponse writes a JSON payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// WriteError maps an AppError code to an HTTP status and writes the error
// body. Unknown errors are masked as a plain 500.
func WriteError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)

	status := http.StatusInternalServerError
	message := err.Error()
	switch code {
	case apperr.CodeInvalidReference, apperr.CodeValidation:
		status = http.StatusBadRequest
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeConsentRequired:
		status = http.StatusForbidden
	case apperr.CodeConflictRace:
		status = http.StatusConflict
	default:
		logger.Error("internal error", "err", err)
		message = "internal server error"
	}

	WriteJSONResponse(w, status, map[string]string{
		"error": message,
		"code":  string(code),
	})
}

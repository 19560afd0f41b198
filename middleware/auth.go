package middleware

import (
	"context"
	"net/http"

	"ehsaas_server/helpers"
	apperr "ehsaas_server/pkg/errors"
)

type contextKey string

const userIDKey contextKey = "userID"

// Identity moves the authenticated user id from the X-User-ID header into
// the request context. Authentication itself happens upstream (gateway /
// auth service); every core operation takes the viewer explicitly from the
// request context instead of ambient session state.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			helpers.WriteJSONResponse(w, http.StatusUnauthorized, map[string]string{
				"error": "missing X-User-ID header",
			})
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the viewer id set by Identity.
func UserID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", apperr.InvalidReference("no viewer identity in request context")
	}
	return id, nil
}

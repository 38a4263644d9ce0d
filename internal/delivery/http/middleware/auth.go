package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventportal/internal/authz"
	h "eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"
)

type contextKey string

const (
	callerKey    contextKey = "caller"
	sessionIDKey contextKey = "sessionID"
)

// SetCaller returns a context with the authenticated caller set. Used by auth middleware.
func SetCaller(ctx context.Context, caller *authz.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the authenticated caller from the context, if present.
func CallerFromContext(ctx context.Context) (*authz.Caller, bool) {
	c, ok := ctx.Value(callerKey).(*authz.Caller)
	return c, ok
}

// SetSessionID returns a context with the caller's session id set.
func SetSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext returns the caller's session id from the context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token, checks that
// its backing session is still active (not revoked by logout, not expired),
// and sets the caller in the request context. If any check fails it responds
// with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, sessions domain.SessionRepository, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			session, err := sessions.GetByID(r.Context(), claims.SessionID)
			if err != nil || !session.Active(time.Now()) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired session")
				return
			}
			ctx := SetCaller(r.Context(), &authz.Caller{ID: claims.AccountID, Roles: claims.Roles})
			ctx = SetSessionID(ctx, claims.SessionID)
			next(w, r.WithContext(ctx))
		}
	}
}

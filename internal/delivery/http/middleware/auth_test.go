package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventportal/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubVerifier struct {
	claims *domain.TokenClaims
	err    error
}

func (v stubVerifier) Verify(token string) (*domain.TokenClaims, error) {
	return v.claims, v.err
}

type stubSessionRepo struct {
	session *domain.Session
	err     error
}

func (r stubSessionRepo) Create(ctx context.Context, session *domain.Session) error { return nil }

func (r stubSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return r.session, r.err
}

func (r stubSessionRepo) Revoke(ctx context.Context, id string) error { return nil }

func activeSession() *domain.Session {
	return &domain.Session{
		ID:        "session-1",
		AccountID: 42,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRequireAuth(t *testing.T) {
	validClaims := &domain.TokenClaims{AccountID: 42, Roles: []string{domain.RoleOrganiser}, SessionID: "session-1"}
	revokedAt := time.Now()

	tests := []struct {
		name       string
		authHeader string
		verifier   stubVerifier
		sessions   stubSessionRepo
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad",
			verifier:   stubVerifier{err: errors.New("invalid token")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "session lookup fails",
			authHeader: "Bearer good",
			verifier:   stubVerifier{claims: validClaims},
			sessions:   stubSessionRepo{err: domain.ErrNotFound},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked session",
			authHeader: "Bearer good",
			verifier:   stubVerifier{claims: validClaims},
			sessions: stubSessionRepo{session: &domain.Session{
				ID: "session-1", AccountID: 42,
				ExpiresAt: time.Now().Add(time.Hour),
				RevokedAt: &revokedAt,
			}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired session",
			authHeader: "Bearer good",
			verifier:   stubVerifier{claims: validClaims},
			sessions: stubSessionRepo{session: &domain.Session{
				ID: "session-1", AccountID: 42,
				ExpiresAt: time.Now().Add(-time.Minute),
			}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token and active session",
			authHeader: "Bearer good",
			verifier:   stubVerifier{claims: validClaims},
			sessions:   stubSessionRepo{session: activeSession()},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				caller, ok := CallerFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, int64(42), caller.ID)
				sessionID, ok := SessionIDFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "session-1", sessionID)
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireAuth(tt.verifier, tt.sessions, testLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, nextCalled)
		})
	}
}

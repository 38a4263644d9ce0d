package domain

import (
	"context"
	"time"
)

// Session is a login session backing a bearer token. Logout revokes the row,
// which invalidates the token immediately even though the JWT itself is
// stateless.
type Session struct {
	ID        string     `json:"id"`
	AccountID int64      `json:"account_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Active reports whether the session is usable at the given instant.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Revoke(ctx context.Context, id string) error
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	AccountID int64
	Email     string
	Roles     []string
	SessionID string
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(claims *TokenClaims, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// AuthResult is what a successful signup or login produces.
type AuthResult struct {
	Token       string    `json:"token"`
	Account     *Account  `json:"account"`
	LandingPath string    `json:"landing_path"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService defines signup, login, and logout.
type AuthService interface {
	// SignUp creates an account with role "organiser" and starts a session immediately.
	SignUp(ctx context.Context, email, fullName, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string, remember bool) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

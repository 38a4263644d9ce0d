package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventportal/internal/domain"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("test-secret")

	issued := &domain.TokenClaims{
		AccountID: 42,
		Email:     "alice@example.com",
		Roles:     []string{"organiser"},
		SessionID: "session-1",
	}
	token, err := codec.Issue(issued, time.Hour)
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"organiser"}, claims.Roles)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestJWTCodec_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTCodec("secret-a").Issue(&domain.TokenClaims{AccountID: 1, SessionID: "s"}, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTCodec("secret-b").Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_RejectsExpiredToken(t *testing.T) {
	codec := NewJWTCodec("test-secret")
	token, err := codec.Issue(&domain.TokenClaims{AccountID: 1, SessionID: "s"}, -time.Minute)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_RejectsGarbage(t *testing.T) {
	_, err := NewJWTCodec("test-secret").Verify("not-a-token")
	require.Error(t, err)
}

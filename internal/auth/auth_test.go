package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndAuthenticate(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), time.Hour)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", uid)
}

func TestAuthenticateExpired(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), -time.Minute)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateGarbage(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), time.Hour)
	_, err := svc.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

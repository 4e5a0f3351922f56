package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(SessionTokenBytes)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(SessionTokenBytes)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestSignValue(t *testing.T) {
	signed := SignValue("abc123", "s3cret")
	assert.True(t, strings.HasPrefix(signed, "abc123."))

	value, ok := UnsignValue(signed, "s3cret")
	assert.True(t, ok)
	assert.Equal(t, "abc123", value)

	_, ok = UnsignValue(signed, "other")
	assert.False(t, ok, "wrong secret")

	_, ok = UnsignValue("abc124"+signed[6:], "s3cret")
	assert.False(t, ok, "tampered value")

	for _, bad := range []string{"", "abc", ".sig", "abc."} {
		_, ok = UnsignValue(bad, "s3cret")
		assert.False(t, ok, bad)
	}
}

func TestStateJWT(t *testing.T) {
	state, err := GenerateStateJWT("github", "nonce-1", "s3cret", time.Minute)
	require.NoError(t, err)

	claims, err := ParseAndValidateStateJWT(state, "nonce-1", "github", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "nonce-1", claims.Nonce)

	_, err = ParseAndValidateStateJWT(state, "nonce-2", "github", "s3cret")
	assert.ErrorIs(t, err, ErrStateMismatch)

	_, err = ParseAndValidateStateJWT(state, "nonce-1", "google", "s3cret")
	assert.Error(t, err, "wrong audience")

	_, err = ParseAndValidateStateJWT(state, "nonce-1", "github", "other")
	assert.Error(t, err, "wrong secret")

	expired, err := GenerateStateJWT("github", "nonce-1", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAndValidateStateJWT(expired, "nonce-1", "github", "s3cret")
	assert.Error(t, err, "expired")
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-123", "test-secret", 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sessionID, err := ParseSessionIDFromJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestParseSessionIDFromJWT_WrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("session-123", "test-secret", 1)
	assert.NoError(t, err)

	_, err = ParseSessionIDFromJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash("Sup3r$ecret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

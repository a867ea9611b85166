package utils

import (
	"ecoloop/config"
	"ecoloop/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(expireMinutes int) {
	config.C = config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireMinutes: expireMinutes},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(30)

	token, err := GenerateToken(models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestParseTokenExpired(t *testing.T) {
	setTestConfig(-1)
	token, err := GenerateToken(models.User{Username: "alice"})
	require.NoError(t, err)

	setTestConfig(30)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenTampered(t *testing.T) {
	setTestConfig(30)
	token, err := GenerateToken(models.User{Username: "alice"})
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenGarbage(t *testing.T) {
	setTestConfig(30)
	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

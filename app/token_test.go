package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCfg() Config {
	return Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func Test_Token_RoundTrip(t *testing.T) {
	cfg := testCfg()

	token, expiresAt, err := IssueToken(cfg, "rahim@example.edu", "Rahim Uddin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(cfg.TokenTTL), expiresAt, 5*time.Second)

	claims, err := ParseToken(cfg.JWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.edu", claims.Subject)
	assert.Equal(t, "Rahim Uddin", claims.Name)
	assert.NotEmpty(t, claims.ID, "jti is what the logout denylist keys on")
}

func Test_Token_DistinctIDs(t *testing.T) {
	cfg := testCfg()

	a, _, err := IssueToken(cfg, "rahim@example.edu", "")
	require.NoError(t, err)
	b, _, err := IssueToken(cfg, "rahim@example.edu", "")
	require.NoError(t, err)

	ca, err := ParseToken(cfg.JWTSecret, a)
	require.NoError(t, err)
	cb, err := ParseToken(cfg.JWTSecret, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID, "each issued token must be revocable on its own")
}

func Test_Token_WrongSecret(t *testing.T) {
	token, _, err := IssueToken(testCfg(), "rahim@example.edu", "")
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func Test_Token_Expired(t *testing.T) {
	cfg := Config{JWTSecret: "test-secret", TokenTTL: -time.Minute}

	token, _, err := IssueToken(cfg, "rahim@example.edu", "")
	require.NoError(t, err)

	_, err = ParseToken(cfg.JWTSecret, token)
	assert.Error(t, err)
}

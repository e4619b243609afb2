package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", 30*time.Minute)

	token, err := manager.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", 30*time.Minute)
	other := NewJWTManager("different-secret", 30*time.Minute)

	token, err := manager.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", 30*time.Minute)

	_, err := manager.ParseAndValidate("not.a.token")
	assert.Error(t, err)
}

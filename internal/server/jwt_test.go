package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestJWTService("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = newTestJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestJWTService("test-secret")

	_, err := svc.ValidateToken("")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

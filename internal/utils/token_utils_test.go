package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, exp, err := GenerateJWT("user-1", "secret", time.Hour, "finance_tracker", AccessTokenAudience, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := ParseAndValidateJWT(token, "secret", AccessTokenAudience)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "finance_tracker", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	now := time.Now()
	access, _, err := GenerateJWT("user-1", "secret", time.Hour, "iss", AccessTokenAudience, now)
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(access, "other-secret", AccessTokenAudience)
	assert.Error(t, err, "wrong secret")

	_, err = ParseAndValidateJWT(access, "secret", RefreshTokenAudience)
	assert.True(t, errors.Is(err, jwt.ErrTokenInvalidAudience), "access token used as refresh token")

	expired, _, err := GenerateJWT("user-1", "secret", time.Minute, "iss", AccessTokenAudience, now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", AccessTokenAudience)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("battery staple", hash))
	assert.False(t, CheckPasswordHash("correct horse", ""))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

package utils_test

import (
	"testing"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", secret, time.Minute, "expense-audit-backend")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "expense-audit-backend", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", secret, time.Minute, "expense-audit-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", secret, -time.Minute, "expense-audit-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
}

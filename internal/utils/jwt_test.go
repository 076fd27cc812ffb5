package utils

import (
	"testing"

	"kimlik/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	access, refresh, err := GenerateTokens(&models.UserClaims{
		UserID:   42,
		Username: "ada_l",
	})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	_, claims, err := ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ada_l", claims.Username)
	assert.Equal(t, "kimlik-api", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	access, _, err := GenerateTokens(&models.UserClaims{UserID: 1, Username: "ada_l"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, _, err = ParseToken(access)
	assert.Error(t, err)
}

func TestGenerateTokensWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, _, err := GenerateTokens(&models.UserClaims{UserID: 1})
	assert.Error(t, err)
}

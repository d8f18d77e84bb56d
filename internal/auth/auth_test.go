package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/models"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, ComparePassword("pw123", hash))
	assert.False(t, ComparePassword("wrong", hash))
	assert.False(t, ComparePassword("pw123", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("secret", "user-1", models.RoleApplicant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleApplicant, claims.UserType)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	token, err := IssueToken("secret", "user-1", models.RoleAdmin)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("secret", token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

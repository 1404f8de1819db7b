package utils

import (
	"testing"
	"time"

	"reship/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	claims := &models.UserClaims{
		UserID:      3,
		Email:       "ops@reship.test",
		Role:        models.RoleOperator,
		Permissions: models.GetDefaultPermissions(models.RoleOperator),
	}

	token, err := GenerateToken(claims, "s3cret", time.Minute)
	require.NoError(t, err)

	parsed, err := ParseToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(3), parsed.UserID)
	assert.Equal(t, models.RoleOperator, parsed.Role)
	assert.Equal(t, "3", parsed.Subject)

	_, err = ParseToken(token, "other")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(&models.UserClaims{UserID: 1}, "s3cret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "s3cret")
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	_, err := GenerateToken(&models.UserClaims{}, "", time.Minute)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = ParseToken("x", "")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

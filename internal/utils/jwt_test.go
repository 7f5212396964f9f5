package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lavash/internal/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := utils.GenerateToken(secret, 42, "kitchen", time.Hour)
	require.NoError(t, err)

	userID, role, err := utils.ParseToken(secret, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, "kitchen", role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("secret-a", 1, "customer", time.Hour)
	require.NoError(t, err)

	_, _, err = utils.ParseToken("secret-b", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := utils.GenerateToken("secret", 1, "customer", -time.Minute)
	require.NoError(t, err)

	_, _, err = utils.ParseToken("secret", token)
	assert.Error(t, err)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenarts/school-be/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "school-backend", 240*time.Hour)

	token, err := tm.Generate(models.Account{ID: 42, IsAdmin: true})
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.True(t, claims.IsAdmin)
}

func TestTokenLifetime(t *testing.T) {
	tm := NewTokenManager("secret", "school-backend", 240*time.Hour)

	token, err := tm.Generate(models.Account{ID: 7})
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(240*time.Hour), exp.Time, time.Minute)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", "school-backend", time.Hour)
	token, err := tm.Generate(models.Account{ID: 1})
	require.NoError(t, err)

	other := NewTokenManager("another-secret", "school-backend", time.Hour)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("secret", "school-backend", -time.Hour)
	token, err := tm.Generate(models.Account{ID: 1})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

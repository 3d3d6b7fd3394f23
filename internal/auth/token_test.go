package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/auth"
	"fairplay10x/internal/model"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)
	playerID := "p1"

	token, expires, err := m.Issue(model.User{ID: "u1", Role: model.RoleOrganizer, PlayerID: &playerID})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	viewer, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, model.Viewer{UserID: "u1", Role: model.RoleOrganizer, PlayerID: "p1"}, viewer)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	other, _, err := auth.NewTokenManager("other", time.Hour).Issue(model.User{ID: "u1", Role: model.RoleAdmin})
	require.NoError(t, err)

	expired, _, err := auth.NewTokenManager("secret", -time.Minute).Issue(model.User{ID: "u1", Role: model.RoleAdmin})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": "u1", "role": "admin", "iss": auth.Issuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, _, err := m.Issue(model.User{ID: "u1", Role: "superuser"})
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong key":    other,
		"expired":      expired,
		"alg none":     none,
		"unknown role": badRole,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

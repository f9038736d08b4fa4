package auth

import (
	"testing"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newService(secret string) *jwtTokenService {
	svc := NewTokenService(&config.Config{Session: &config.SessionConfig{Secret: secret}})

	return svc.(*jwtTokenService)
}

func TestParseClaims_NestedDataUserLayout(t *testing.T) {
	token := signedToken(t, "any", jwt.MapClaims{
		"data": map[string]any{
			"user": map[string]any{
				"id":    "42",
				"email": "jane@example.com",
			},
		},
	})

	claims, err := newService("").ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.CustomerID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestParseClaims_FlatIDAndEmailClaims(t *testing.T) {
	token := signedToken(t, "any", jwt.MapClaims{
		"id":    float64(7),
		"email": "joe@example.com",
	})

	claims, err := newService("").ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.CustomerID)
	assert.Equal(t, "joe@example.com", claims.Email)
}

func TestParseClaims_SubjectClaimFallback(t *testing.T) {
	token := signedToken(t, "any", jwt.MapClaims{
		"sub":   "13",
		"email": "sam@example.com",
	})

	claims, err := newService("").ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(13), claims.CustomerID)
}

func TestParseClaims_VerifiedModeRejectsWrongSignature(t *testing.T) {
	token := signedToken(t, "wrong-secret", jwt.MapClaims{"id": float64(1)})

	_, err := newService("right-secret").ParseClaims(token)
	assert.Error(t, err)
}

func TestParseClaims_VerifiedModeAcceptsGoodSignature(t *testing.T) {
	token := signedToken(t, "shared-secret", jwt.MapClaims{
		"id":    float64(5),
		"email": "amy@example.com",
	})

	claims, err := newService("shared-secret").ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.CustomerID)
}

func TestParseClaims_MalformedTokenFails(t *testing.T) {
	_, err := newService("").ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

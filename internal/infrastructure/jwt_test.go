package infrastructure

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, userID := range []uint{1, 42, 100000} {
		token, err := svc.GenerateToken(userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		verifiedID, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, verifiedID)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, bad := range []string{"", "garbage", "a.b.c", "Bearer something"} {
		_, err := svc.VerifyToken(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", bad)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-one").GenerateToken(7)
	require.NoError(t, err)

	_, err = NewJWTService("secret-two").VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingIDClaim(t *testing.T) {
	svc := NewJWTService("test-secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	signed, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 7})
	signed, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

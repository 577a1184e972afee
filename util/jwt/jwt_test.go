// util/jwt/jwt_test.go
package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssue_RoundTrip(t *testing.T) {
	secret := "test_secret"
	signed, err := Issue(secret, 42, "Ana", "ana@example.com", "lender", 2*time.Hour)
	require.NoError(t, err)

	tok, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), claims["sub"])
	require.Equal(t, "Ana", claims["name"])
	require.Equal(t, "ana@example.com", claims["email"])
	require.Equal(t, "lender", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	require.InDelta(t, time.Now().Add(2*time.Hour).Unix(), int64(exp), 5)
}

func TestIssue_RejectsWrongSecret(t *testing.T) {
	signed, err := Issue("right_secret", 1, "Ana", "ana@example.com", "renter", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("wrong_secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.Error(t, err)
}

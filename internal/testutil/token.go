package testutil

import (
	"github.com/golang-jwt/jwt/v5"
)

const tokenSecret = "test-secret"

// Token returns a signed bearer token whose subject is userID.
func Token(userID string) string {
	return TokenWithClaims(jwt.MapClaims{"sub": userID})
}

// TokenWithClaims signs the given claims; intended for tests.
func TokenWithClaims(claims jwt.MapClaims) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// Package auth implements the session token codec: issuing a signed token
// with an expiry and extracting the email claim back out of it.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"picshelf/internal/common"
)

// SigningKey is the fixed demo signing key, shipped with the client just like
// the original it reproduces. The token is signed, not encrypted, and the key
// is public by construction, so this provides no real security boundary.
// Anything beyond a local demo must issue and verify tokens on a trusted
// server instead.
const SigningKey = "demo_secret_key"

// Claims — standard registered claims plus the account email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken signs a token for email that expires after validityDuration.
func GenerateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetEmailFromToken verifies tokenString under secretKey and returns the
// email claim. Expiry is reported as common.ErrTokenExpired; any other
// verification failure, and a payload with a missing email claim, are
// reported as common.ErrInvalidToken so that a token that fails schema
// validation is treated identically to one with a bad signature.
func GetEmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Email == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}

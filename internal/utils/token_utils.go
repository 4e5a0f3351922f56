package utils

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const stateIssuer = "book-catalog-api"

// ErrStateMismatch is returned when an OAuth state does not belong to the caller.
var ErrStateMismatch = errors.New("oauth state does not match")

// StateClaims are carried by the signed OAuth state parameter.
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// GenerateStateJWT signs a short-lived state for provider bound to nonce.
func GenerateStateJWT(provider, nonce, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := StateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			Audience:  jwt.ClaimStrings{provider},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateStateJWT checks the signature, expiry and audience of state
// and that it was issued for nonce.
func ParseAndValidateStateJWT(state, nonce, provider, secret string) (*StateClaims, error) {
	claims := &StateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithAudience(provider),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if nonce == "" || subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(nonce)) != 1 {
		return nil, ErrStateMismatch
	}
	return claims, nil
}

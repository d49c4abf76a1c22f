package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers missing, malformed, and expired tokens alike;
// clients get one failure kind and re-authenticate.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload of the HMAC-signed bearer tokens issued on login.
type Claims struct {
	jwt.RegisteredClaims
	ABHAID string `json:"abha_id"`
}

// TokenIssuer issues and verifies bearer tokens bound to one ABHA id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer. ttl is the configured token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for abhaID with the configured expiry.
func (i *TokenIssuer) Issue(abhaID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		ABHAID: abhaID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a token, returning the bound ABHA id.
// Every failure maps to ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.ABHAID == "" {
		return "", ErrInvalidToken
	}
	return claims.ABHAID, nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decode failure kinds. Callers can tell tampering, expiry and
// structural garbage apart; all are distinct from "token absent",
// which is the caller's responsibility to check before calling Decode.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Claims is the decoded claim set of a bearer token.
type Claims struct {
	// Subject identifies the account the token was issued for.
	Subject string
}

// TokenCodec signs and verifies bearer tokens with a process-wide
// secret supplied at construction.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec returns a codec signing with the given secret. Tokens
// expire after ttl.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying subject as the "sub" claim.
func (tc *TokenCodec) Issue(subject string) (string, error) {
	if len(tc.secret) == 0 {
		return "", fmt.Errorf("signing secret not configured")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Decode verifies the token and returns its claims. Failures are one
// of ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
func (tc *TokenCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tc.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			// Wrong key, truncated signature and rejected signing
			// methods all land here.
			return nil, ErrTokenSignatureInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenSignatureInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, ErrTokenMalformed
	}

	return &Claims{Subject: subject}, nil
}

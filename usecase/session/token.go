package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fastygo/dayplanner/domain"
)

// Claims is the payload of a session token.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
}

func NewTokenIssuer(secret, issuer string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), issuer: issuer}
}

func (ti *TokenIssuer) Issue(sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	if len(ti.secret) == 0 {
		return "", errors.New("token secret is not configured")
	}
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ti.issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Parse verifies signature, expiry and issuer and returns the session id.
func (ti *TokenIssuer) Parse(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.WrapError(domain.ErrCodeUnauthorized, "invalid session token", err)
	}
	if ti.issuer != "" && !claims.VerifyIssuer(ti.issuer, true) {
		return "", domain.NewError(domain.ErrCodeUnauthorized, "unexpected token issuer")
	}
	if claims.SessionID == "" {
		return "", domain.NewError(domain.ErrCodeUnauthorized, "token carries no session")
	}
	return claims.SessionID, nil
}

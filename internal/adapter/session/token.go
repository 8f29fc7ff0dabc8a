package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a signed session token. The token holds only the
// session ID and user ID; everything else lives in the server-side
// store, so a token is worthless once its session record is deleted.
type Claims struct {
	UserID    int64  `json:"uid"`
	SessionID string `json:"sid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens with HMAC-SHA256.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec. ttl bounds the token lifetime and
// should match the store TTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign produces a signed token for the session.
func (c *TokenCodec) Sign(sess *Session) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		UserID:    sess.UserID,
		SessionID: sess.ID,
		TokenType: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a signed token, returning its claims.
func (c *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Enforce HS256
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != "session" {
		return nil, errors.New("invalid token type")
	}
	if claims.SessionID == "" {
		return nil, errors.New("missing session id")
	}

	return claims, nil
}

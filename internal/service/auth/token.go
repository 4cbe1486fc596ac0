package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures. Handlers translate these into HTTP status codes;
// nothing below the handler layer inspects the message text.
var (
	// ErrTokenMalformed indicates a structurally invalid token or a bad signature
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired indicates a well-signed token whose expiry has passed
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenMissingSubject indicates a valid token without a subject claim
	ErrTokenMissingSubject = errors.New("token subject is missing")
)

// Codec encodes and decodes signed, expiring access tokens.
// It is a pure function of the token, the secret, and the clock:
// no network or storage dependency, safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec signing with HS256 using the given secret.
// Issued tokens expire after ttl.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// NewCodecWithClock creates a Codec with an injectable clock for tests.
func NewCodecWithClock(secret []byte, ttl time.Duration, now func() time.Time) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: now}
}

// Encode issues a signed token for the given subject with iat/exp stamped
// from the codec's clock.
func (c *Codec) Encode(subject string) (string, error) {
	issuedAt := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(c.ttl).Unix(),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token's signature and expiry and returns its subject.
// The signature is verified before any claim is read; an unverified claim is
// never trusted. Returns ErrTokenExpired, ErrTokenMissingSubject, or
// ErrTokenMalformed for everything else.
func (c *Codec) Decode(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !token.Valid {
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", ErrTokenMissingSubject
	}
	return subject, nil
}

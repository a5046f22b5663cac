package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TokenIssuer   = (*Tokens)(nil)
	_ ports.TokenVerifier = (*Tokens)(nil)
)

// ErrInvalidToken is returned by Verify for any token that is malformed,
// expired, signed with another key or issued by someone else.
var ErrInvalidToken = errors.New("auth: invalid or expired token")

// claims are the registered JWT claims plus the login identifier. The
// subject carries the numeric user id.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256-signed access tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a Tokens signing with secret. Tokens expire ttl after
// issue.
func NewTokens(secret, issuer string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for the user.
func (t *Tokens) Issue(userID int64, username string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the token's signature, issuer and validity window and
// returns the user id it was issued for.
func (t *Tokens) Verify(token string) (int64, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

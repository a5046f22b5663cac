package ports

import "time"

// PasswordHasher turns plaintext passwords into opaque hashes and verifies
// them. The core never sees how hashes are built.
type PasswordHasher interface {
	// Hash returns the hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	// Issue returns a signed token whose subject is userID, and the
	// token's expiry.
	Issue(userID int64, username string) (token string, expiresAt time.Time, err error)
}

// TokenVerifier resolves a token to the user id it was issued for.
type TokenVerifier interface {
	// Verify returns the subject user id of a valid, unexpired token.
	Verify(token string) (int64, error)
}

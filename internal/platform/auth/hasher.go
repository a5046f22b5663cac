package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time interface check.
var _ ports.PasswordHasher = (*Hasher)(nil)

// ErrMismatchedPassword is returned by Compare when the password does not
// produce the stored hash.
var ErrMismatchedPassword = errors.New("auth: password does not match")

// Hasher hashes passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using cost. Out-of-range costs fall back to
// bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Compare returns nil when password matches hash.
func (h *Hasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedPassword
	}
	if err != nil {
		return fmt.Errorf("bcrypt: %w", err)
	}
	return nil
}

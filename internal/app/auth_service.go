package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService verifies credentials and issues access tokens.
type AuthService struct {
	base
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

// NewAuthService creates an AuthService.
func NewAuthService(store ports.Store, hasher ports.PasswordHasher, issuer ports.TokenIssuer, logger *slog.Logger) *AuthService {
	return &AuthService{
		base:   newBase(store, nil, logger),
		hasher: hasher,
		issuer: issuer,
	}
}

// errBadCredentials is returned for unknown users and wrong passwords alike
// so that callers cannot probe which usernames exist.
var errBadCredentials = domain.NotAuthorized(user.Entity, "invalid username or password")

// Authenticate verifies the credentials of an active user.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*ports.AuthToken, error) {
	s.logger.InfoContext(ctx, "authenticating user", slog.String("username", username))

	var out *ports.AuthToken
	err := s.inTx(ctx, func(u *unit) error {
		usr, err := u.users().FindByUsername(u.ctx(), username)
		if errors.Is(err, domain.ErrNotFound) {
			return errBadCredentials
		}
		if err != nil {
			return err
		}
		if err := s.hasher.Compare(usr.PasswordHash, password); err != nil {
			return errBadCredentials
		}
		if !usr.Active {
			return domain.NotAuthorized(user.Entity, "user %d is inactive", usr.ID)
		}

		token, expiresAt, err := s.issuer.Issue(usr.ID, usr.Username)
		if err != nil {
			return fmt.Errorf("issuing token: %w", err)
		}
		view, err := u.userView(usr)
		if err != nil {
			return err
		}
		out = &ports.AuthToken{Token: token, ExpiresAt: expiresAt, User: *view}
		return nil
	})
	if err != nil {
		s.fail(ctx, "failed to authenticate user", "Authenticate", err, slog.String("username", username))
		return nil, err
	}
	return out, nil
}

// Package auth provides the credential primitives behind the ports.PasswordHasher,
// ports.TokenIssuer and ports.TokenVerifier interfaces: bcrypt password hashing
// and HMAC-signed JWT access tokens.
//
//	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
//	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
//
//	token, expiresAt, err := tokens.Issue(userID, username)
//	userID, err := tokens.Verify(token)
package auth

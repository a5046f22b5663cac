package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	assert.NoError(t, h.Compare(hash, "Secret#123"))
	assert.ErrorIs(t, h.Compare(hash, "Secret#124"), ErrMismatchedPassword)
}

func TestHasher_CompareMalformedHash(t *testing.T) {
	t.Parallel()

	err := NewHasher(bcrypt.MinCost).Compare("not-a-hash", "Secret#123")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMismatchedPassword))
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

func fixedTokens(at time.Time) *Tokens {
	tk := NewTokens(testSecret, "taskflow-test", time.Hour)
	tk.now = func() time.Time { return at }
	return tk
}

func TestTokens_IssueAndVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tk := fixedTokens(now)

	token, expiresAt, err := tk.Issue(42, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	id, err := tk.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTokens_VerifyRejects(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	valid, _, err := fixedTokens(now).Issue(7, "ana@example.com")
	require.NoError(t, err)

	otherKey := NewTokens("ffffffffffffffffffffffffffffffff", "taskflow-test", time.Hour)
	otherKey.now = func() time.Time { return now }
	foreign, _, err := otherKey.Issue(7, "ana@example.com")
	require.NoError(t, err)

	otherIssuer := NewTokens(testSecret, "someone-else", time.Hour)
	otherIssuer.now = func() time.Time { return now }
	wrongIssuer, _, err := otherIssuer.Issue(7, "ana@example.com")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "7",
		Issuer:    "taskflow-test",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		at    time.Time
	}{
		{"expired", valid, now.Add(2 * time.Hour)},
		{"different key", foreign, now},
		{"different issuer", wrongIssuer, now},
		{"unsigned", none, now},
		{"garbage", "not.a.token", now},
		{"empty", "", now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fixedTokens(tt.at).Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokens_VerifyRejectsNonNumericSubject(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana",
			Issuer:    "taskflow-test",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = fixedTokens(now).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package service

import (
	"time"

	"github.com/google/uuid"

	"tally/internal/errors"
)

// Token validation failures. The auth middleware collapses all of these into
// one generic 401; the distinct values exist for logs and tests.
var (
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenSignatureInvalid  = errors.New("token signature invalid")
	ErrTokenAlgorithmMismatch = errors.New("token algorithm mismatch")
	ErrTokenMalformed         = errors.New("token malformed")
)

// Claims is the validated content of a bearer token: who it was minted for
// and when it stops being valid. Tokens are stateless; nothing else
// participates in validity.
type Claims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService mints and validates the bearer tokens used on protected
// routes. Implementations sign with a single static process-wide secret;
// refresh, revocation and rotation are deliberately out of scope.
type TokenService interface {
	// Generate creates a signed token asserting userID until the configured
	// validity window elapses.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature, expiry and algorithm, returning the claims
	// or one of the ErrToken* sentinels.
	Validate(tokenString string) (*Claims, error)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/config"
	"tally/internal/domain/service"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_secret_key_at_least_32_bytes_long"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := svc.Generate(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_WrongSecret(t *testing.T) {
	minter, err := NewJWTService(testConfig("first_secret_key_at_least_32_bytes_ok"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("other_secret_key_at_least_32_bytes_ok"))
	require.NoError(t, err)

	token, err := minter.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	secret := "test_secret_key_at_least_32_bytes_long"
	svc, err := NewJWTService(testConfig(secret))
	require.NoError(t, err)

	// Mint a token that expired an hour ago, signed with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_AlgorithmMismatch(t *testing.T) {
	secret := "test_secret_key_at_least_32_bytes_long"
	svc, err := NewJWTService(testConfig(secret))
	require.NoError(t, err)

	// alg "none" must be rejected before any signature check.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenAlgorithmMismatch)
}

func TestJWTService_TamperedPayload(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_secret_key_at_least_32_bytes_long"))
	require.NoError(t, err)

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	// Flip one character inside the payload segment; the signature no
	// longer covers the altered content.
	tampered := []byte(token)
	dot := 0
	for i, ch := range tampered {
		if ch == '.' {
			dot = i

			break
		}
	}
	pos := dot + 2
	if tampered[pos] == 'A' {
		tampered[pos] = 'B'
	} else {
		tampered[pos] = 'A'
	}

	claims, err := svc.Validate(string(tampered))
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_secret_key_at_least_32_bytes_long"))
	require.NoError(t, err)

	for _, tokenString := range []string{
		"",
		"clearly-not-a-jwt",
		"one.two",
		"a.b.c.d",
	} {
		claims, err := svc.Validate(tokenString)
		assert.Nil(t, claims, "token: %q", tokenString)
		assert.ErrorIs(t, err, service.ErrTokenMalformed, "token: %q", tokenString)
	}
}

func TestJWTService_NonUUIDSubject(t *testing.T) {
	secret := "test_secret_key_at_least_32_bytes_long"
	svc, err := NewJWTService(testConfig(secret))
	require.NoError(t, err)

	odd := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := odd.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"tally/internal/domain/service"
	"tally/internal/errors"
)

// Argon2id parameters. Balanced cost for an interactive login path
// (RFC 9106 second recommended option: 19 MiB, t=2, p=1).
const (
	argonMemoryKiB = 19456
	argonTime      = 2
	argonThreads   = 1
	argonSaltLen   = 16
	argonKeyLen    = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using Argon2id with PHC-encoded output.
type argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{
		memory:  argonMemoryKiB,
		time:    argonTime,
		threads: argonThreads,
	}
}

// Hash derives an Argon2id digest from the password with a fresh random salt
// and encodes everything as a self-describing PHC string:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<digest>
//
// The only error path is the system entropy source failing.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check recomputes the digest with the parameters embedded in the stored
// hash and compares in constant time. A malformed stored hash and a wrong
// password both return false; callers must not be able to tell them apart.
func (h *argon2Hasher) Check(password, hash string) bool {
	memory, time, threads, salt, digest, err := decodePHC(hash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(computed, digest) == 1
}

// decodePHC parses a $argon2id$ PHC string back into parameters, salt and
// digest.
func decodePHC(hash string) (memory, time uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id PHC string")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode salt")
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode digest")
	}
	if len(digest) == 0 {
		return 0, 0, 0, nil, nil, errors.New("empty digest")
	}

	return memory, time, threads, salt, digest, nil
}

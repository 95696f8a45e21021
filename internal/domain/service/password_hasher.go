// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't naturally fit a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm (Argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password, encoded as a
	// self-describing PHC string.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A malformed
	// stored hash and a wrong password are indistinguishable: both return
	// false, so callers cannot tell a corrupted record from a bad guess.
	Check(password, hash string) bool
}

package ports

// PasswordHasher abstracts one-way credential hashing so the auth flows stay
// independent of the underlying algorithm.
type PasswordHasher interface {
	// Hash produces a salted, non-reversible digest. Two calls with the same
	// plaintext yield different outputs.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the stored hash using a
	// constant-time comparison.
	Verify(password, hash string) bool
}

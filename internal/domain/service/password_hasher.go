// Package service declares the ports the use cases call out through:
// hashing, tokens, events, caching, exports and metrics.
package service

// PasswordHasher protects account passwords. Registration and password
// changes store Hash output; login compares with Check.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produced hash.
	Check(password, hash string) bool
}

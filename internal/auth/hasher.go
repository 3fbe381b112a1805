// Package auth provides credential hashing and bearer-token issuance.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is a one-way transform over plaintext passwords.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the standard bcrypt cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash salts and hashes the plaintext. The plaintext is not retained.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

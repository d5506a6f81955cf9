package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the default
// cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a candidate against the stored value. Rows
// migrated from the legacy system may still hold a plaintext password
// instead of a bcrypt hash; when the stored value is not a parseable
// hash we fall back to a direct comparison so those accounts keep
// working until their next password change rehashes them.
func VerifyPassword(stored, candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate))
	if err == nil {
		return true
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false
	}
	return stored == candidate
}

// VerifyPasswordStrict checks a candidate against a bcrypt hash with
// no legacy fallback. Staff and platform accounts always use this.
func VerifyPasswordStrict(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

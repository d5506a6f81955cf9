package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteerhub-backend/internal/security"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := security.HashPassword("correct horse battery")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, security.VerifyPassword(hash, "correct horse battery"))
	assert.False(t, security.VerifyPassword(hash, "wrong"))
}

func TestVerifyPasswordLegacyPlaintextFallback(t *testing.T) {
	// Rows migrated from the old system store the raw password. A
	// stored value that is not a parseable bcrypt hash compares
	// directly.
	assert.True(t, security.VerifyPassword("plain-secret", "plain-secret"))
	assert.False(t, security.VerifyPassword("plain-secret", "other"))
}

func TestVerifyPasswordStrictRejectsPlaintext(t *testing.T) {
	assert.False(t, security.VerifyPasswordStrict("plain-secret", "plain-secret"))

	hash, err := security.HashPassword("staff-pass")
	assert.NoError(t, err)
	assert.True(t, security.VerifyPasswordStrict(hash, "staff-pass"))
	assert.False(t, security.VerifyPasswordStrict(hash, "other"))
}

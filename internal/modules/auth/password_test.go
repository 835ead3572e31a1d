package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

func TestVerifyBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(string(hash), "admin123"))
	assert.False(t, VerifyPassword(string(hash), "admin124"))
}

func TestVerifyWerkzeugPBKDF2(t *testing.T) {
	key := pbkdf2.Key([]byte("admin123"), []byte("NaCl"), 1000, 32, sha256.New)
	stored := "pbkdf2:sha256:1000$NaCl$" + hex.EncodeToString(key)

	assert.True(t, VerifyPassword(stored, "admin123"))
	assert.False(t, VerifyPassword(stored, "Admin123"))
}

func TestVerifyWerkzeugScrypt(t *testing.T) {
	key, err := scrypt.Key([]byte("admin123"), []byte("salt"), 16, 8, 1, 64)
	require.NoError(t, err)
	stored := "scrypt:16:8:1$salt$" + hex.EncodeToString(key)

	assert.True(t, VerifyPassword(stored, "admin123"))
	assert.False(t, VerifyPassword(stored, "nope"))
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	for _, stored := range []string{
		"",
		"plaintext",
		"md5$salt$abcd",
		"pbkdf2:sha256:notanumber$salt$abcd",
		"pbkdf2:whirlpool:10$salt$abcd",
		"pbkdf2:sha256:10$salt$zz",
	} {
		assert.False(t, VerifyPassword(stored, "x"), stored)
	}
}

// Package password derives and verifies salted password digests.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// SaltLength is the size in bytes of the per-user salt stored alongside
// the digest.
const SaltLength = 16

// argon2id parameters. Deliberately slow; the digest is deterministic for
// a fixed (password, salt) pair.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// Hash derives the base64-encoded digest of the password under the given
// salt.
func Hash(password string, salt []byte) string {
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.StdEncoding.EncodeToString(key)
}

// GenerateSalt returns SaltLength cryptographically random bytes.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Verify reports whether the password hashes to the stored digest under
// the stored salt. The comparison is constant time.
func Verify(password string, salt []byte, hash string) bool {
	derived := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

// Package auth provides credential hashing, opaque session tokens and the
// request middleware that resolves and gates callers.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password.
//
// The digest is deterministic and unsalted: the stored value for a given
// password never changes. This matches the wire contract the front end and
// existing databases rely on, but it is NOT suitable for production use,
// which requires a salted, slow hash such as bcrypt or argon2.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the password matches the stored digest
func VerifyPassword(password, storedDigest string) bool {
	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}

package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// passwordSalt is a fixed application-wide salt. The digest is deliberately
// deterministic so verification is a recompute-and-compare; this is a
// placeholder scheme, not a hardened password hash.
const passwordSalt = "hrm_salt_"

// HashPassword returns the hex digest of the salted password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(passwordSalt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password produces exactly the stored digest.
func VerifyPassword(password, digest string) bool {
	return HashPassword(password) == digest
}

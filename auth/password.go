package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword creates the SHA-256 hex digest stored for a user.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword reports whether password hashes to stored.
func VerifyPassword(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(HashPassword(password))) == 1
}

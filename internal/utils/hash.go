package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of the provided password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ReviewerFingerprint derives a pseudonymous reviewer identity from the
// client IP and user agent. The salt keeps the hash non-reversible without
// storing any PII.
func ReviewerFingerprint(salt, ip, userAgent string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", salt, ip, userAgent)))
	return hex.EncodeToString(sum[:])
}

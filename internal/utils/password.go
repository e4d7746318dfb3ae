package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashAccessCode hashes a plaintext access code (PIN or passphrase) using bcrypt.
func HashAccessCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAccessCode compares a plaintext access code with a bcrypt hash.
func CheckAccessCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

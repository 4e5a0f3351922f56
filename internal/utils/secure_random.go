package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionTokenBytes is the entropy of a session token before hex encoding.
const SessionTokenBytes = 32

// GenerateSecureRandomString returns lengthInBytes random bytes, hex encoded.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

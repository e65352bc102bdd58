package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateSecureRandomString returns n random bytes, hex encoded (2n characters).
// It backs the OAuth state value.
func GenerateSecureRandomString(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("random string length must be positive")
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package util

import (
	"crypto/rand"
	"fmt"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateShortID returns a 6-character alphanumeric string using cryptographic randomness.
func GenerateShortID() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return string(bytes), nil
}

// NewID returns a prefixed short id, e.g. NewID("t") -> "t_k3Xq9a".
func NewID(prefix string) string {
	id, err := GenerateShortID()
	if err != nil {
		// crypto/rand failing means the platform is broken; fall back to a
		// constant so callers still get a usable (if collision-prone) id.
		id = "000000"
	}
	return fmt.Sprintf("%s_%s", prefix, id)
}

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// KeyPrefixLen is the length of the lookup prefix segment.
	KeyPrefixLen = 8
	// keySecretBytes is the entropy of the secret segment.
	keySecretBytes = 24
)

var randomRead = rand.Read

// GenerateRandomToken generates a hex token of length bytes of entropy.
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateAPIKey creates a new admin API key of the form
// "th_<prefix>_<secret>". The prefix is stored in clear for lookup; only
// a SHA-256 digest of the full key is persisted.
func GenerateAPIKey() (plaintext, prefix string, err error) {
	p, err := GenerateRandomToken(KeyPrefixLen / 2)
	if err != nil {
		return "", "", err
	}
	secret, err := GenerateRandomToken(keySecretBytes)
	if err != nil {
		return "", "", err
	}
	return "th_" + p + "_" + secret, p, nil
}

// HashAPIKey returns the hex SHA-256 digest of a full API key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// MaskAPIKey returns a display form showing only the last four characters.
func MaskAPIKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// KeyPrefixOf extracts the lookup prefix from a presented key, or ""
// when the key does not match the expected shape.
func KeyPrefixOf(key string) string {
	parts := strings.SplitN(key, "_", 3)
	if len(parts) != 3 || parts[0] != "th" || len(parts[1]) != KeyPrefixLen {
		return ""
	}
	return parts[1]
}

package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// Token prefixes namespace the single auth_token slot on app_users:
// the same column serves email verification and password reset,
// distinguished only by prefix.
const (
	TokenPrefixVerify = "verify"
	TokenPrefixReset  = "reset"
)

// GenerateToken returns prefix + "_" + 32 random bytes hex encoded.
func GenerateToken(prefix string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return prefix + "_" + hex.EncodeToString(raw), nil
}

// TokenExpiry returns an expiry timestamp the given number of hours from now.
func TokenExpiry(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour)
}

// ValidTokenFormat is a cheap format pre-check before hitting storage.
func ValidTokenFormat(token, expectedPrefix string) bool {
	prefix := expectedPrefix + "_"
	return strings.HasPrefix(token, prefix) && len(token) > len(prefix)
}

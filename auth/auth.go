package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAdminToken = errors.New("invalid admin token")

// GenerateToken creates a random secure operator token.
func GenerateToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// VerifyAdminToken checks a caller-supplied token against the configured
// operator token in constant time. An empty configured token never matches.
func VerifyAdminToken(got, want string) error {
	if want == "" {
		return ErrInvalidAdminToken
	}
	if !hmac.Equal([]byte(got), []byte(want)) {
		return ErrInvalidAdminToken
	}
	return nil
}

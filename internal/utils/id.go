package utils

import (
	"crypto/rand"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateSecureToken creates a cryptographically secure random token.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// StoredFileName prefixes the sanitized base name with a fresh uuid so
// uploads never overwrite each other.
func StoredFileName(original string) string {
	return uuid.NewString() + "_" + SanitizeFileName(original)
}

// SanitizeFileName strips directories and keeps [A-Za-z0-9._-].
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}

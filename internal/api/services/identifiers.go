package services

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

// UnknownName is returned by ExtractIdentifiers when no name is found.
const UnknownName = "Unknown"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-z]{2,}`)
	// two capitalized words, e.g. "John Smith". \s is ASCII whitespace
	// only, so a non-breaking space between the words does not match.
	namePattern = regexp.MustCompile(`[A-Z][a-z]+\s[A-Z][a-z]+`)
)

type Identifiers struct {
	Name  string
	Email string
}

// ExtractIdentifiers takes the first email-like and the first
// "Capitalized Capitalized" match from text.
func ExtractIdentifiers(text string) Identifiers {
	ids := Identifiers{Name: UnknownName}
	if m := namePattern.FindString(text); m != "" {
		ids.Name = m
	}
	ids.Email = emailPattern.FindString(text)
	return ids
}

// ProfileID is the hex digest of lower(trim(name)) + "_" + lower(trim(email)).
func ProfileID(name, email string) string {
	return identityHash(name, email)
}

// UserID is ProfileID applied to the concatenated first and last name.
func UserID(firstName, lastName, email string) string {
	return identityHash(firstName+lastName, email)
}

func identityHash(name, email string) string {
	key := normalize(name) + "_" + normalize(email)
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

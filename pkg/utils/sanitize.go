package utils

import (
	"strings"
	"unicode"
)

// SanitizeName trims surrounding whitespace and removes control characters.
func SanitizeName(name string) string {
	return removeControlChars(strings.TrimSpace(name))
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	return removeControlChars(email)
}

// NormalizeMACAddress uppercases a MAC address into its canonical form,
// keeping the separator (colon or hyphen) as provided.
func NormalizeMACAddress(mac string) string {
	return strings.ToUpper(strings.TrimSpace(mac))
}

// removeControlChars removes control characters from string
func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || r == ' ' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

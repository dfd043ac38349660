package payload

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD and drops the combining marks, so
// "São João" becomes "Sao Joao". QR scanners and EMV fields only tolerate
// plain characters.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// alphanumeric drops every character outside [A-Za-z0-9]. Transaction
// references must survive EMV additional-data fields unescaped.
func alphanumeric(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// stripPhoneSeparators removes the spaces and dashes people type into
// phone numbers.
func stripPhoneSeparators(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

// orDefault substitutes fallback when s is empty after cleaning.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

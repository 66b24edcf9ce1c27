package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSlug is the bucket used when a display name sanitizes to nothing.
const DefaultSlug = "geral"

// stripAccents decomposes runes and drops combining marks, so "João" becomes "Joao".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a free-text display name into a filesystem and URL safe
// folder slug: lowercase ASCII letters, digits and single hyphens only.
// "&" acts as a word separator so "A & B" becomes "a-b" instead of "ab".
// Whitespace and hyphens collapse into a single hyphen; any other character
// is dropped. An input that sanitizes to nothing maps to DefaultSlug.
func Slugify(name string) string {
	s := strings.ReplaceAll(name, "&", "-")
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = strings.ToLower(s)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingHyphen = true
		}
	}

	slug := b.String()
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a display title into a lowercase ASCII token safe for
// file names: "HTML 5" → "html-5", "Café Crème" → "cafe-creme".
func GenerateSlug(input string) string {
	// Step 1: strip diacritics
	ascii := RemoveDiacritics(input)

	// Step 2: lowercase, spaces to hyphens
	hyphenated := strings.ReplaceAll(strings.ToLower(ascii), " ", "-")

	// Step 3: keep a-z, 0-9 and single hyphens
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")
	normalized := hyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics drops combining marks after canonical decomposition.
// 'đ' has no decomposition and is mapped by hand.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}

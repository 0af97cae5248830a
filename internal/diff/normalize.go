package diff

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for content comparison: lowercase, strip
// everything that is not a letter, digit or whitespace, collapse whitespace
// runs and trim. All comparisons in this package go through Normalize; raw
// cue text is never compared directly. An empty result means the text has no
// comparable content (a cue of pure punctuation, for example) and callers
// must skip it.
func Normalize(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

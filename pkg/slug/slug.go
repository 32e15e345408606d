// Package slug derives URL-safe identifiers from display names. Slugs are
// lowercase, hyphen-separated, ASCII-only, and immutable once assigned to a
// record, so this must stay deterministic.
package slug

import "strings"

// accentFolding maps the accented characters that occur in French display
// names onto their ASCII base letter. Anything not covered here and not
// alphanumeric collapses into a hyphen.
var accentFolding = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

// Make derives a slug from a display name: lowercase, accents folded, runs of
// non-alphanumerics replaced with a single hyphen, no leading or trailing
// hyphen.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if folded, ok := accentFolding[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

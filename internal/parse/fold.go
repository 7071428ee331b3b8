package parse

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var ligatures = strings.NewReplacer("œ", "oe", "æ", "ae")

// Fold lowercases and strips diacritics so that "Crème" and "creme" compare
// equal. Ligatures are expanded first; NFD does not decompose them.
func Fold(s string) string {
	s = ligatures.Replace(strings.ToLower(s))
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

package release

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX preceded by a space.
// Standalone "I" and "X" are excluded to avoid false positives
// ("I Robot", "SPY x FAMILY"), as is a numeral at the start of the
// string ("VII Days").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// NormalizeRomanNumerals converts Roman numerals II-IX to Arabic digits.
func NormalizeRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.TrimSpace(match)
		if arabic, ok := romanToArabic[strings.ToUpper(roman)]; ok {
			return " " + arabic
		}
		return match
	})
}

// CleanTitle normalizes a media title for matching: lowercase, accents
// folded, articles removed, punctuation removed, Roman numerals
// converted, whitespace collapsed.
func CleanTitle(title string) string {
	s := strings.ToLower(title)

	// Roman numerals must convert before accent folding
	s = NormalizeRomanNumerals(s)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, ":", " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	// Articles are removed wherever they appear: scene names drop the
	// colon that marks a subtitle, so "Leon The Professional" and
	// "Léon: The Professional" must normalize to the same string.
	var words []string
	for _, w := range strings.Fields(b.String()) {
		switch w {
		case "the", "a", "an":
			continue
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeSearchQuery prepares a title for a metadata source query.
// Unlike CleanTitle it preserves case and most punctuation, which tends
// to produce better search results.
func NormalizeSearchQuery(query string) string {
	s := strings.ReplaceAll(query, "&", "and")
	return strings.Join(strings.Fields(s), " ")
}

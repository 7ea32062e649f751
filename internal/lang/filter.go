package lang

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"

	"github.com/Alfex4936/mapsrpc/internal/model"
)

// asciiText is printable ASCII plus tab, newline and carriage return:
// letters, digits, whitespace and basic punctuation.
var asciiText = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x09, Hi: 0x0A, Stride: 1},
		{Lo: 0x0D, Hi: 0x0D, Stride: 1},
		{Lo: 0x20, Hi: 0x7E, Stride: 1},
	},
	LatinOffset: 3,
}

var permitted = map[model.LanguageTag]*unicode.RangeTable{
	model.English:  asciiText,
	model.Thai:     rangetable.Merge(asciiText, thaiBlock),
	model.Japanese: rangetable.Merge(asciiText, hiragana, katakana, cjk),
	model.Chinese:  rangetable.Merge(asciiText, cjk),
}

// FilterText drops every rune outside the permitted set of target. Targets
// without a set (unknown, unrecognised) pass text through unchanged.
// Applying it twice gives the same result as once.
func FilterText(text string, target model.LanguageTag) string {
	table, ok := permitted[target]
	if !ok {
		return text
	}
	out, _, err := transform.String(runes.Remove(runes.NotIn(table)), text)
	if err != nil {
		// runes.Remove only fails on a short destination buffer
		return removeSlow(text, table)
	}
	return out
}

func removeSlow(text string, table *unicode.RangeTable) string {
	b := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.Is(table, r) {
			b = append(b, r)
		}
	}
	return string(b)
}

// ShouldInclude reports whether text belongs to target: either it
// classifies as target, or target is en/th and the corresponding ratio
// test holds on its own. Text below the minimum length is never included.
func ShouldInclude(text string, target model.LanguageTag) bool {
	if tooShort(text) {
		return false
	}
	if Classify(text) == target {
		return true
	}
	s := measure(text)
	switch target {
	case model.English:
		return s.english()
	case model.Thai:
		return s.thaiLed()
	}
	return false
}

// Package lang labels text by Unicode script and sanitises it for a target
// language. It does no grammar-aware analysis.
package lang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Alfex4936/mapsrpc/internal/model"
)

const (
	minLen       = 2
	englishRatio = 0.70
	thaiMinRatio = 0.30
)

// Unicode blocks, not scripts: the Thai block includes Thai digits and the
// baht sign.
var (
	thaiBlock = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0E00, Hi: 0x0E7F, Stride: 1}}}
	hiragana  = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x3040, Hi: 0x309F, Stride: 1}}}
	katakana  = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}}}
	cjk       = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}}}
)

// stats holds the script counts of one text sample.
type stats struct {
	visible int // non-whitespace runes
	ascii   int // ASCII letters
	thai    int
	kana    bool
	han     bool
}

func measure(text string) stats {
	var s stats
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		s.visible++
		switch {
		case r < utf8.RuneSelf:
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
				s.ascii++
			}
		case unicode.Is(thaiBlock, r):
			s.thai++
		case unicode.Is(hiragana, r), unicode.Is(katakana, r):
			s.kana = true
		case unicode.Is(cjk, r):
			s.han = true
		}
	}
	return s
}

func (s stats) ratio(n int) float64 {
	if s.visible == 0 {
		return 0
	}
	return float64(n) / float64(s.visible)
}

func (s stats) english() bool { return s.ratio(s.ascii) > englishRatio }
func (s stats) thaiLed() bool { return s.ratio(s.thai) > thaiMinRatio }

func tooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < minLen
}

// Classify assigns a language tag by script membership. English is
// checked before Thai so mostly-English text with a few Thai words stays en.
func Classify(text string) model.LanguageTag {
	if tooShort(text) {
		return model.Unknown
	}
	s := measure(text)
	switch {
	case s.english():
		return model.English
	case s.thaiLed():
		return model.Thai
	case s.kana:
		return model.Japanese
	case s.han:
		return model.Chinese
	}
	return model.Unknown
}

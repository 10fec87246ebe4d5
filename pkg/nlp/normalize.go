package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents раскладывает символы в NFD и выбрасывает диакритику:
// "é" -> "e", "ç" -> "c", "ü" -> "u".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold приводит строку к нижнему регистру и снимает диакритику.
func Fold(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(foldAccents, s); err == nil {
		return folded
	}
	return s
}

// Normalize приводит строку к сравнимому виду: нижний регистр,
// ASCII-транслитерация диакритики, всё кроме [a-z0-9] становится пробелом,
// пробелы схлопываются. Идемпотентна: Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	s = Fold(s)
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// TokenCount возвращает число слов в уже нормализованной строке.
func TokenCount(normalized string) int {
	if normalized == "" {
		return 0
	}
	return len(strings.Fields(normalized))
}

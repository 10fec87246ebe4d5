package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsPhrase проверяет наличие нормализованной фразы в нормализованном
// тексте как целых слов. "rest api" найдётся в "... rest api ...",
// но не в "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// ContainsWord ищет word в text как целое слово: символы непосредственно до и
// после вхождения не должны быть буквой или цифрой. Обе строки должны быть
// уже приведены к одному регистру. В отличие от ContainsPhrase работает по
// сырому тексту и не требует нормализации, поэтому пригоден для имён навыков
// с пунктуацией ("C++", ".NET").
func ContainsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i+len(word) <= len(text); {
		j := strings.Index(text[i:], word)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		i = start + 1
	}
	return false
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return !isWordRune(r)
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

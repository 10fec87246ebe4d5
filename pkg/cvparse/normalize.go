package cvparse

import (
	"regexp"
	"strings"
)

var (
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

// squeezeWhitespace схлопывает пробельные последовательности, сохраняя
// переводы строк: дальше по ним режется line sequence.
func squeezeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// CleanText — «чистый текст»: любой пробельный прогон (включая переводы
// строк) схлопнут в один пробел, края обрезаны. Используется для поиска
// подстрок и паттернов, которым переносы строк безразличны.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Lines — «line sequence»: строки документа, обрезанные и без пустых,
// с сохранением порядка. Используется позиционными эвристиками, для которых
// важно, на какой строке относительно заголовков секций стоит поле.
func Lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

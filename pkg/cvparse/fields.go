package cvparse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rperrot/recruteo/pkg/nlp"
)

var (
	reEmail = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}`)

	// Французский номер: +33 / 00 33 / 0, затем цифра 1-9 и четыре пары цифр
	// с необязательными разделителями.
	rePhoneFR = regexp.MustCompile(`(?:(?:\+|00[ .\-]?)33[ .\-]?|0)[1-9](?:[ .\-]?\d{2}){4}`)
	// Запасной вариант 3-3-4 для неевропейских форматов.
	rePhoneGeneric = regexp.MustCompile(`\d{3}[ .\-]?\d{3}[ .\-]?\d{4}`)

	capWord  = `\p{Lu}[\p{Ll}']+`
	capsWord = `\p{Lu}{2,}`

	// "Jean DUPONT", "Jean Marie DE LA TOUR"
	reCapThenCaps = regexp.MustCompile(`^(` + capWord + `(?:[ \-]` + capWord + `)*) (` + capsWord + `(?:[ \-]` + capsWord + `)*)$`)
	// Зеркальный порядок: "DUPONT Jean"
	reCapsThenCap = regexp.MustCompile(`^(` + capsWord + `(?:[ \-]` + capsWord + `)*) (` + capWord + `(?:[ \-]` + capWord + `)*)$`)
	// Без регистрового различия: "Jean Dupont"
	reTwoCapWords = regexp.MustCompile(`^(` + capWord + `) (` + capWord + `)$`)
	reSingleCap   = regexp.MustCompile(`^` + capWord + `$`)
)

// ExtractEmail возвращает первую подстроку чистого текста вида
// local@domain.tld, иначе пустую строку.
func ExtractEmail(clean string) string {
	return reEmail.FindString(clean)
}

// ExtractPhone возвращает первый телефонный номер: сперва французский
// паттерн, затем обобщённый 3-3-4.
func ExtractPhone(clean string) string {
	if m := rePhoneFR.FindString(clean); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(rePhoneGeneric.FindString(clean))
}

// ExtractName извлекает имя и фамилию из line sequence.
// Строки-заголовки секций пропускаются. Правила по убыванию приоритета:
// Capitalized + ALL-CAPS, зеркальный порядок, два Capitalized слова подряд.
// Если ни одна строка из двух токенов не подошла — одиночное Capitalized
// слово вне чёрного списка даёт только имя, фамилия остаётся пустой.
func ExtractName(lines []string) (first, last string) {
	for _, line := range lines {
		if containsSectionHeader(line) {
			continue
		}
		if m := reCapThenCaps.FindStringSubmatch(line); m != nil {
			return m[1], m[2]
		}
		if m := reCapsThenCap.FindStringSubmatch(line); m != nil {
			return m[2], m[1]
		}
		if m := reTwoCapWords.FindStringSubmatch(line); m != nil {
			return m[1], m[2]
		}
	}
	for _, line := range lines {
		if containsSectionHeader(line) {
			continue
		}
		if reSingleCap.MatchString(line) && !isNoiseWord(line) {
			return line, ""
		}
	}
	return "", ""
}

// Стемы должностей для поиска строки с позицией.
var roleKeywords = []string{
	"developpeur", "developpeuse", "developer",
	"ingenieur", "engineer", "architecte",
	"consultant", "consultante",
	"manager", "directeur", "directrice", "responsable",
	"chef", "chef de projet", "chef d equipe",
	"technicien", "technicienne", "administrateur", "analyste",
	"designer", "graphiste", "redacteur",
	"commercial", "commerciale", "vendeur", "vendeuse",
	"comptable", "gestionnaire", "juriste", "formateur",
	"assistant", "assistante", "charge", "chargee",
	"stagiaire", "alternant", "apprenti",
}

// "<роль> de|du|des|en <...>" — составная должность, принимается даже если
// строка попала бы под остальные фильтры.
var reCompoundRole = regexp.MustCompile(`(?:^|\s)(?:` + strings.Join(roleKeywords, "|") + `) (?:de|du|des|d|en) \S`)

func hasRoleKeyword(normalized string) bool {
	for _, kw := range roleKeywords {
		// стемы: "developpeur" должен зацепить и "developpeurs"
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// ExtractPosition ищет в line sequence строку с должностью: длина 5-60,
// содержит стем роли, не похожа на заголовок секции или контактную строку.
func ExtractPosition(lines []string) string {
	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n < 5 || n > 60 {
			continue
		}
		normalized := nlp.Normalize(line)
		if !hasRoleKeyword(normalized) {
			continue
		}
		if reCompoundRole.MatchString(normalized) {
			return line
		}
		if containsSectionHeader(line) ||
			strings.ContainsAny(line, "@:") ||
			strings.Contains(strings.ToLower(line), "http") {
			continue
		}
		return line
	}
	return ""
}

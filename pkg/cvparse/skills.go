package cvparse

import (
	"strings"
	"unicode/utf8"

	"github.com/rperrot/recruteo/pkg/nlp"
	"github.com/rperrot/recruteo/pkg/skill"
)

// ExtractSkills объединяет два независимых прохода:
// (a) имена справочника, найденные в чистом тексте как целые слова;
// (b) строки-кандидаты из блока «Compétences» line sequence — навыки isNew.
// Дедупликация без учёта регистра, первый проход выигрывает.
func ExtractSkills(clean string, lines []string, dir []skill.Skill) []SkillMatch {
	var out []SkillMatch
	seen := make(map[string]struct{})
	lower := strings.ToLower(clean)

	for _, sk := range dir {
		name := strings.TrimSpace(sk.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		// Целое слово: "Java" не считается найденным внутри "JavaScript".
		if nlp.ContainsWord(lower, key) {
			id := sk.ID
			seen[key] = struct{}{}
			out = append(out, SkillMatch{ID: &id, Name: sk.Name})
		}
	}

	for _, cand := range skillsBlock(lines) {
		key := strings.ToLower(cand)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, SkillMatch{Name: cand, IsNew: true})
	}
	return out
}

// skillsBlock вырезает блок навыков: от заголовка «Compétences» до следующего
// распознанного заголовка секции. Кандидаты — строки длиной от 3 до 40 символов.
func skillsBlock(lines []string) []string {
	start := -1
	for i, line := range lines {
		if isSkillsHeader(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}
	var out []string
	for _, line := range lines[start:] {
		if isBlockEndHeader(line) {
			break
		}
		n := utf8.RuneCountInString(line)
		if n < 3 || n > 40 {
			continue
		}
		out = append(out, line)
	}
	return out
}

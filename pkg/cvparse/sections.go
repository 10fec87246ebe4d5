package cvparse

import "github.com/rperrot/recruteo/pkg/nlp"

// Заголовки секций резюме, по которым режутся позиционные эвристики.
// Сравнение идёт по nlp.Normalize, поэтому формы без диакритики достаточно.
var sectionHeaderTokens = []string{
	"formation", "formations", "education", "etudes", "diplome", "diplomes",
	"experience", "experiences", "parcours professionnel",
	"competence", "competences", "skills", "savoir faire",
	"langue", "langues", "languages",
	"loisir", "loisirs", "hobbies", "centre d interet", "centres d interet", "interets",
	"projet", "projets", "certification", "certifications",
	"contact", "coordonnees", "profil", "references",
}

// Заголовки, открывающие блок навыков.
var skillsHeaderTokens = []string{
	"competence", "competences", "skills", "savoir faire",
}

// Заголовки, закрывающие блок навыков снизу. Набор уже, чем
// sectionHeaderTokens: строка навыка вида "Gestion de projet" не должна
// обрывать блок.
var blockEndHeaderTokens = []string{
	"formation", "formations", "education", "etudes", "diplome", "diplomes",
	"experience", "experiences", "parcours professionnel",
	"langue", "langues", "languages",
	"loisir", "loisirs", "hobbies", "centre d interet", "centres d interet", "interets",
}

// Одиночные слова, которые выглядят как имя (Capitalized), но именем не
// являются: типовое содержимое секций loisirs / centres d'intérêt.
var noiseWords = map[string]struct{}{
	"sport":        {},
	"sports":       {},
	"musique":      {},
	"lecture":      {},
	"voyage":       {},
	"voyages":      {},
	"cinema":       {},
	"football":     {},
	"basketball":   {},
	"tennis":       {},
	"natation":     {},
	"cuisine":      {},
	"photographie": {},
	"photo":        {},
	"dessin":       {},
	"peinture":     {},
	"theatre":      {},
	"danse":        {},
	"randonnee":    {},
	"jardinage":    {},
	"echecs":       {},
	"jeux":         {},
	"benevolat":    {},
	"informatique": {},
	"bricolage":    {},
}

func containsSectionHeader(line string) bool {
	n := nlp.Normalize(line)
	for _, tok := range sectionHeaderTokens {
		if nlp.ContainsPhrase(n, tok) {
			return true
		}
	}
	return false
}

func isBlockEndHeader(line string) bool {
	n := nlp.Normalize(line)
	for _, tok := range blockEndHeaderTokens {
		if nlp.ContainsPhrase(n, tok) {
			return true
		}
	}
	return false
}

func isSkillsHeader(line string) bool {
	n := nlp.Normalize(line)
	for _, tok := range skillsHeaderTokens {
		if nlp.ContainsPhrase(n, tok) {
			return true
		}
	}
	return false
}

func isNoiseWord(word string) bool {
	_, ok := noiseWords[nlp.Normalize(word)]
	return ok
}

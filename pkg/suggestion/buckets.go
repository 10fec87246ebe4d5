package suggestion

import "strings"

// DefaultBucket — метка по умолчанию, когда ни одна группа ключей не подошла.
// Совпадает с именем плейсхолдер-категории в таксономии.
const DefaultBucket = "À classifier"

// bucketRule — (набор ключей, метка). Порядок в bucketRules и есть приоритет:
// выигрывает первая группа, любой ключ которой входит в заголовок подстрокой.
type bucketRule struct {
	label    string
	keywords []string
}

// Матчинг идёт по strings.ToLower без сворачивания диакритики, поэтому
// ходовые ключи перечислены в обоих написаниях.
var bucketRules = []bucketRule{
	{
		label: "Développement",
		keywords: []string{
			"développeur", "developpeur", "developer", "dev",
			"informatique", "logiciel", "software",
			"fullstack", "full stack", "backend", "back end", "frontend", "front end",
			"devops", "sysadmin", "data", "cloud",
			"ingénieur", "ingenieur", "programmeur",
			"web", "système", "systeme", "réseau", "reseau",
		},
	},
	{
		label: "Design & Création",
		keywords: []string{
			"designer", "design", "graphiste", "infographiste",
			"webdesign", "motion", "direction artistique", "directeur artistique",
			"illustrateur", "créatif", "creatif",
		},
	},
	{
		label: "Ressources Humaines",
		keywords: []string{
			"ressources humaines", "rh", "recruteur", "recrutement",
			"talent", "paie", "formation",
		},
	},
	{
		label: "Commercial",
		keywords: []string{
			"commercial", "vente", "vendeur", "business developer",
			"account manager", "sales",
		},
	},
	{
		label: "Marketing & Communication",
		keywords: []string{
			"marketing", "communication", "community", "seo", "sem",
			"contenu", "growth", "brand",
		},
	},
	{
		label: "Finance",
		keywords: []string{
			"finance", "comptable", "comptabilité", "comptabilite",
			"audit", "contrôle de gestion", "controle de gestion",
			"trésorerie", "tresorerie",
		},
	},
}

// GuessBucket подбирает родительскую категорию для нераспознанного названия
// должности по таблице правил с фиксированным приоритетом.
func GuessBucket(title string) string {
	t := strings.ToLower(title)
	for _, rule := range bucketRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.label
			}
		}
	}
	return DefaultBucket
}

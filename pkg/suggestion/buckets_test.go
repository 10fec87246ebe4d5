package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessBucket(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Développeur Fullstack", "Développement"},
		{"Ingénieur logiciel embarqué", "Développement"},
		{"Lead DevOps", "Développement"},
		{"Graphiste print", "Design & Création"},
		{"Motion designer", "Design & Création"},
		{"Chargé de recrutement", "Ressources Humaines"},
		{"Gestionnaire de paie", "Ressources Humaines"},
		{"Vendeur en magasin", "Commercial"},
		{"Responsable communication", "Marketing & Communication"},
		{"Community manager", "Marketing & Communication"},
		{"Comptable junior", "Finance"},
		{"Auditeur financier", "Finance"},
		// ни одна группа не подошла — метка по умолчанию
		{"Barista Chef Cuisine", DefaultBucket},
		{"Boulanger", DefaultBucket},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GuessBucket(tc.title), "title %q", tc.title)
	}
}

func TestGuessBucketPriorityOrder(t *testing.T) {
	// "développeur" (группа IT) стоит раньше "commercial": выигрывает первая
	// подошедшая группа, а не самая специфичная.
	assert.Equal(t, "Développement", GuessBucket("Développeur d'outils commerciaux"))
}

func TestGuessBucketCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Marketing & Communication", GuessBucket("RESPONSABLE MARKETING"))
}

package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Développeur Web", "developpeur web"},
		{"Chef de projet / MOA", "chef de projet moa"},
		{"  Ingénieur   DevOps  ", "ingenieur devops"},
		{"Responsable Marketing Digital", "responsable marketing digital"},
		{"À classifier", "a classifier"},
		{"C++ / C#", "c c"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Développeur Web",
		"chargé de clientèle",
		"UX / UI Designer (senior)",
		"déjà normalisé",
		"plain ascii 123",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "eca", Fold("ÉÇÀ"))
	assert.Equal(t, "creme brulee", Fold("Crème Brûlée"))
	assert.Equal(t, "noel", Fold("Noël"))
}

func TestTokenCount(t *testing.T) {
	assert.Equal(t, 0, TokenCount(""))
	assert.Equal(t, 1, TokenCount("marketing"))
	assert.Equal(t, 2, TokenCount("marketing digital"))
	assert.Equal(t, 3, TokenCount("chef de projet"))
}

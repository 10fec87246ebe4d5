package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsWord(t *testing.T) {
	cases := []struct {
		text string
		word string
		want bool
	}{
		{"maitrise de java et sql", "java", true},
		// "Java" внутри "JavaScript" не считается найденным
		{"experience javascript uniquement", "java", false},
		{"javascript, java, python", "java", true},
		{"java", "java", true},
		{"du java.", "java", true},
		{"scala et go", "java", false},
		{"c++ et python", "c++", true},
		{"react/node.js", "node.js", true},
		{"", "java", false},
		{"java", "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ContainsWord(tc.text, tc.word), "text=%q word=%q", tc.text, tc.word)
	}
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, ContainsPhrase("maitrise du rest api", "rest api"))
	assert.False(t, ContainsPhrase("maitrise des rest apis", "rest api"))
	assert.True(t, ContainsPhrase("competences", "competences"))
	assert.False(t, ContainsPhrase("text", ""))
}

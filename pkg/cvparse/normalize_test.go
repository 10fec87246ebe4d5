package cvparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	in := "Jean  Dupont\n\nDéveloppeur\tWeb\r\n jean.dupont@example.org "
	assert.Equal(t, "Jean Dupont Développeur Web jean.dupont@example.org", CleanText(in))
	assert.Equal(t, "", CleanText("   \n\t  "))
	// неразрывные пробелы тоже схлопываются
	assert.Equal(t, "a b", CleanText("a b"))
}

func TestLines(t *testing.T) {
	in := "  Jean DUPONT  \n\n\tDéveloppeur Web\n   \nCompétences\n"
	assert.Equal(t, []string{"Jean DUPONT", "Développeur Web", "Compétences"}, Lines(in))
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n \n"))
}

func TestSqueezeWhitespace(t *testing.T) {
	in := "a   b\t c\n\n\nd  "
	assert.Equal(t, "a b c\nd", squeezeWhitespace(in))
}

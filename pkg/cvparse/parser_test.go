package cvparse

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx собирает минимальный DOCX: zip с word/document.xml.
func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextFromDocx(t *testing.T) {
	data := buildDocx(t, []string{"Jean DUPONT", "Développeur Web", "jean.dupont@example.org"})

	text, err := ExtractText(data)
	require.NoError(t, err)

	lines := Lines(text)
	require.Len(t, lines, 3)
	assert.Equal(t, "Jean DUPONT", lines[0])
	assert.Equal(t, "Développeur Web", lines[1])
	assert.Equal(t, "jean.dupont@example.org", lines[2])
}

func TestExtractTextUnknownFormat(t *testing.T) {
	_, err := ExtractText([]byte("plain text, not a document"))
	assert.ErrorIs(t, err, ErrUnreadableDocument)

	_, err = ExtractText(nil)
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	// валидная сигнатура, мусорное тело
	data := []byte("%PDF-1.4 garbage garbage garbage")
	_, err := ExtractText(data)
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestExtractTextDocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText(buf.Bytes())
	assert.ErrorIs(t, err, ErrUnreadableDocument)
}

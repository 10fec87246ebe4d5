package cvparse

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnreadableDocument — структурная ошибка: документ не открывается вовсе.
// Пустой, но корректный документ ошибкой не считается.
var ErrUnreadableDocument = errors.New("cvparse: unreadable document")

var (
	pdfMagic  = []byte("%PDF-")
	docxMagic = []byte("PK\x03\x04")
)

// ExtractText извлекает сырой текст из документа. Формат определяется по
// магическим байтам: PDF или DOCX. Пустой результат — не ошибка; вызывающий
// трактует полностью пустой профиль как «не удалось прочитать».
func ExtractText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return extractTextFromPDF(data)
	case bytes.HasPrefix(data, docxMagic):
		return extractTextFromDocx(data)
	default:
		return "", ErrUnreadableDocument
	}
}

// extractTextFromPDF пытается извлечь текст всего документа, а при пустом
// результате опускается постранично: текст страницы, затем низкоуровневые
// фрагменты контента, плюс значения встроенных форм — часть резюме прячет
// реальный текст в полях форм при пустом видимом слое.
func extractTextFromPDF(data []byte) (text string, err error) {
	// ledongthuc/pdf паникует на части повреждённых файлов; для вызывающего
	// это та же структурная ошибка, что и отказ NewReader.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadableDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	var buf bytes.Buffer
	if rs, err := r.GetPlainText(); err == nil {
		_, _ = io.Copy(&buf, rs)
	}
	if strings.TrimSpace(buf.String()) != "" {
		return squeezeWhitespace(buf.String()), nil
	}

	if r.NumPage() < 1 {
		return "", nil
	}
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil || strings.TrimSpace(pageText) == "" {
			var frags []string
			for _, t := range p.Content().Text {
				if t.S != "" {
					frags = append(frags, t.S)
				}
			}
			pageText = strings.Join(frags, " ")
		}
		if form := pageFormText(p); form != "" {
			pageText = strings.TrimSpace(pageText + "\n" + form)
		}
		if strings.TrimSpace(pageText) != "" {
			pages = append(pages, pageText)
		}
	}
	return squeezeWhitespace(strings.Join(pages, "\n")), nil
}

// pageFormText собирает текстовые значения аннотаций-полей страницы.
func pageFormText(p pdf.Page) string {
	annots := p.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return ""
	}
	var out []string
	for i := 0; i < annots.Len(); i++ {
		v := annots.Index(i).Key("V")
		if v.Kind() != pdf.String {
			continue
		}
		if s := strings.TrimSpace(v.RawString()); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}

var reXMLTags = regexp.MustCompile(`<[^>]+>`)

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: no document.xml in docx", ErrUnreadableDocument)
	}
	xml := string(docXML)
	// Границы параграфов становятся переводами строк, дальше line sequence
	// работает как с PDF.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reXMLTags.ReplaceAllString(xml, " ")
	return squeezeWhitespace(txt), nil
}

package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readParts(t *testing.T, d *Document) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = string(data)
	}
	return parts
}

func assertWellFormed(t *testing.T, name, data string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err, name)
	}
}

func TestHeadingStyle(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{0, StyleTitle},
		{1, "Heading1"},
		{4, "Heading4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, HeadingStyle(tt.level))
	}
}

func TestDocumentParts(t *testing.T) {
	d := New()
	d.Title = "Notes"
	d.AddHeading("Intro", 1)
	d.AddParagraph("", Run{Text: "a < b", Bold: true}, Run{Text: "x\ny", Italic: true})
	d.AddParagraph(StyleListBullet, Run{Text: "item"}).AddHyperlink("docs", "https://example.com/?q=1&r=2")
	d.AddTable(StyleLightGrid, []string{"H1", "H2"}, [][]string{{"1"}})
	assert.Equal(t, 4, d.Len())

	parts := readParts(t, d)
	for _, name := range []string{
		"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/_rels/document.xml.rels",
		"word/styles.xml", "word/numbering.xml", "docProps/core.xml",
	} {
		require.Contains(t, parts, name)
		assertWellFormed(t, name, parts[name])
	}

	body := parts["word/document.xml"]
	assert.Contains(t, body, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, body, `<w:b/></w:rPr><w:t xml:space="preserve">a &lt; b</w:t>`)
	assert.Contains(t, body, `<w:t xml:space="preserve">x</w:t><w:br/><w:t xml:space="preserve">y</w:t>`)
	assert.Contains(t, body, `<w:pStyle w:val="ListBullet"/>`)
	assert.Contains(t, body, `<w:hyperlink r:id="rId3">`)
	assert.Contains(t, body, `<w:color w:val="0563C1"/>`)
	assert.Contains(t, body, `<w:tblStyle w:val="LightGrid-Accent1"/>`)

	rels := parts["word/_rels/document.xml.rels"]
	assert.Contains(t, rels, `Target="https://example.com/?q=1&amp;r=2" TargetMode="External"`)

	assert.Contains(t, parts["docProps/core.xml"], "<dc:title>Notes</dc:title>")
}

func TestStylesXML(t *testing.T) {
	styles := string(stylesXML("Calibri", 11))
	assertWellFormed(t, "styles", styles)

	for _, id := range []string{
		StyleNormal, StyleTitle, "Heading1", "Heading6", StyleListBullet, StyleListNumber,
		StyleIntenseQuote, StyleLightGrid, StyleHyperlink,
	} {
		assert.Contains(t, styles, `w:styleId="`+id+`"`, id)
	}
	assert.Contains(t, styles, `w:ascii="Calibri"`)
	assert.Contains(t, styles, `<w:sz w:val="22"/>`)
}

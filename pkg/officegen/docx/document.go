// Package docx writes WordprocessingML (.docx) documents and converts
// Markdown into them.
package docx

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/ooxml"
)

// Paragraph and table style ids.
const (
	StyleNormal       = "Normal"
	StyleTitle        = "Title"
	StyleListBullet   = "ListBullet"
	StyleListNumber   = "ListNumber"
	StyleIntenseQuote = "IntenseQuote"
	StyleLightGrid    = "LightGrid-Accent1"
	StyleHyperlink    = "Hyperlink"
)

// HyperlinkColor is the run colour applied to links.
const HyperlinkColor = "0563C1"

// HeadingStyle returns the style id for heading level 1-9; level 0 is the title.
func HeadingStyle(level int) string {
	if level <= 0 {
		return StyleTitle
	}
	return fmt.Sprintf("Heading%d", level)
}

// Run is a span of text with uniform formatting. A "\n" in Text becomes a
// line break.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Font      string
	SizePt    float64
	Color     string
	// Link makes the run an external hyperlink.
	Link string
}

// Paragraph is a styled list of runs.
type Paragraph struct {
	Style string
	Runs  []Run
}

// AddRun appends a run.
func (p *Paragraph) AddRun(r Run) *Paragraph {
	p.Runs = append(p.Runs, r)
	return p
}

// AddHyperlink appends a run linking to url.
func (p *Paragraph) AddHyperlink(text, url string) *Paragraph {
	return p.AddRun(Run{Text: text, Link: url})
}

// Table is a grid with a header row. Short rows are padded with empty cells.
type Table struct {
	Style  string
	Header []string
	Rows   [][]string
}

// Document is an ordered list of paragraphs and tables.
type Document struct {
	// DefaultFont and DefaultSize apply to the Normal style.
	DefaultFont string
	DefaultSize float64
	Title       string
	body        []interface{}
}

// New returns an empty document with Calibri 11pt body text.
func New() *Document {
	return &Document{DefaultFont: "Calibri", DefaultSize: 11}
}

// AddParagraph appends a paragraph with the given style ("" for Normal).
func (d *Document) AddParagraph(style string, runs ...Run) *Paragraph {
	p := &Paragraph{Style: style, Runs: runs}
	d.body = append(d.body, p)
	return p
}

// AddHeading appends a heading paragraph holding one run.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	return d.AddParagraph(HeadingStyle(level), Run{Text: text})
}

// AddTable appends a table.
func (d *Document) AddTable(style string, header []string, rows [][]string) *Table {
	t := &Table{Style: style, Header: header, Rows: rows}
	d.body = append(d.body, t)
	return t
}

// Len returns the number of body blocks.
func (d *Document) Len() int {
	return len(d.body)
}

// Package assembles the OPC package.
func (d *Document) Package() *ooxml.Package {
	pkg := ooxml.NewPackage()

	var rootRels ooxml.Relationships
	rootRels.Add(ooxml.RelOfficeDocument, "word/document.xml")
	rootRels.Add(ooxml.RelCoreProps, "docProps/core.xml")

	var docRels ooxml.Relationships
	docRels.Add(ooxml.RelStyles, "styles.xml")
	docRels.Add(ooxml.RelNumbering, "numbering.xml")
	body := d.documentXML(&docRels)

	pkg.AddPart("_rels/.rels", "", rootRels.Bytes())
	pkg.AddPart("docProps/core.xml", ooxml.ContentTypeCoreProps, ooxml.CoreProperties(d.Title, "officegen"))
	pkg.AddPart("word/document.xml", ooxml.ContentTypeWordDocument, body)
	pkg.AddPart("word/_rels/document.xml.rels", "", docRels.Bytes())
	pkg.AddPart("word/styles.xml", ooxml.ContentTypeWordStyles, stylesXML(d.DefaultFont, d.DefaultSize))
	pkg.AddPart("word/numbering.xml", ooxml.ContentTypeWordNumbering, []byte(numberingXML))
	return pkg
}

// WriteTo writes the .docx archive to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Package().Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Save writes the document to path atomically.
func (d *Document) Save(path string) error {
	return d.Package().Save(path)
}

func (d *Document) documentXML(rels *ooxml.Relationships) []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header)
	b.WriteString(`<w:document xmlns:w="` + nsW + `" xmlns:r="` + nsR + `"><w:body>`)
	for _, block := range d.body {
		switch v := block.(type) {
		case *Paragraph:
			writeParagraph(&b, v, rels)
		case *Table:
			writeTable(&b, v)
		}
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`)
	return []byte(b.String())
}

func writeParagraph(b *strings.Builder, p *Paragraph, rels *ooxml.Relationships) {
	b.WriteString(`<w:p>`)
	if p.Style != "" && p.Style != StyleNormal {
		fmt.Fprintf(b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, ooxml.Escape(p.Style))
	}
	for _, r := range p.Runs {
		if r.Link != "" {
			id := rels.AddExternal(ooxml.RelHyperlink, r.Link)
			fmt.Fprintf(b, `<w:hyperlink r:id="%s">`, id)
			r.Color = HyperlinkColor
			r.Underline = true
			writeRun(b, r, StyleHyperlink)
			b.WriteString(`</w:hyperlink>`)
			continue
		}
		writeRun(b, r, "")
	}
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r Run, charStyle string) {
	b.WriteString(`<w:r>`)
	if charStyle != "" || r.Font != "" || r.Bold || r.Italic || r.Color != "" || r.SizePt > 0 || r.Underline {
		b.WriteString(`<w:rPr>`)
		if charStyle != "" {
			fmt.Fprintf(b, `<w:rStyle w:val="%s"/>`, charStyle)
		}
		if r.Font != "" {
			f := ooxml.Escape(r.Font)
			fmt.Fprintf(b, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, f, f, f)
		}
		if r.Bold {
			b.WriteString(`<w:b/>`)
		}
		if r.Italic {
			b.WriteString(`<w:i/>`)
		}
		if r.Color != "" {
			fmt.Fprintf(b, `<w:color w:val="%s"/>`, r.Color)
		}
		if r.SizePt > 0 {
			hp := int(r.SizePt * 2)
			fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, hp, hp)
		}
		if r.Underline {
			b.WriteString(`<w:u w:val="single"/>`)
		}
		b.WriteString(`</w:rPr>`)
	}
	for i, seg := range strings.Split(r.Text, "\n") {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		if seg != "" {
			fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, ooxml.Escape(seg))
		}
	}
	b.WriteString(`</w:r>`)
}

// tableWidth is the text width of a Letter page with 1in margins, in twips.
const tableWidth = 9360

func writeTable(b *strings.Builder, t *Table) {
	cols := len(t.Header)
	if cols == 0 {
		return
	}
	colW := tableWidth / cols

	b.WriteString(`<w:tbl><w:tblPr>`)
	if t.Style != "" {
		fmt.Fprintf(b, `<w:tblStyle w:val="%s"/>`, ooxml.Escape(t.Style))
	}
	b.WriteString(`<w:tblW w:w="0" w:type="auto"/>` +
		`<w:tblLook w:val="04A0" w:firstRow="1" w:lastRow="0" w:firstColumn="1" w:lastColumn="0" w:noHBand="0" w:noVBand="1"/>` +
		`</w:tblPr><w:tblGrid>`)
	for i := 0; i < cols; i++ {
		fmt.Fprintf(b, `<w:gridCol w:w="%d"/>`, colW)
	}
	b.WriteString(`</w:tblGrid>`)

	writeRow(b, t.Header, cols, colW, true)
	for _, row := range t.Rows {
		writeRow(b, row, cols, colW, false)
	}
	b.WriteString(`</w:tbl>`)
}

func writeRow(b *strings.Builder, cells []string, cols, colW int, header bool) {
	b.WriteString(`<w:tr>`)
	for i := 0; i < cols; i++ {
		fmt.Fprintf(b, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr><w:p>`, colW)
		if i < len(cells) && cells[i] != "" {
			writeRun(b, Run{Text: cells[i], Bold: header}, "")
		}
		b.WriteString(`</w:p></w:tc>`)
	}
	b.WriteString(`</w:tr>`)
}

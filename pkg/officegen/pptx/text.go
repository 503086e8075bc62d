package pptx

import (
	"fmt"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/ooxml"
)

// Font describes run formatting. Zero fields inherit from the master.
type Font struct {
	Name      string
	Size      float64 // points
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
}

// Run is a span of text with one Font.
type Run struct {
	Text string
	Font Font
}

// Paragraph is one paragraph of a text frame.
type Paragraph struct {
	Align       Alignment
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
	// Font applies to runs added with AddRun.
	Font Font
	Runs []*Run
}

// AddRun appends a run formatted with the paragraph font.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text, Font: p.Font}
	p.Runs = append(p.Runs, r)
	return r
}

// SetText replaces the runs with a single run.
func (p *Paragraph) SetText(text string) *Run {
	p.Runs = nil
	return p.AddRun(text)
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TextFrame is the text body of a shape or table cell.
type TextFrame struct {
	WordWrap bool
	Anchor   Anchor
	// Insets in EMU; nil keeps the default insets.
	Insets     *[4]EMU // left, top, right, bottom
	paragraphs []*Paragraph
}

// Paragraph returns paragraph i, creating paragraphs up to i as needed.
func (tf *TextFrame) Paragraph(i int) *Paragraph {
	for len(tf.paragraphs) <= i {
		tf.paragraphs = append(tf.paragraphs, &Paragraph{})
	}
	return tf.paragraphs[i]
}

// AddParagraph appends an empty paragraph.
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	tf.paragraphs = append(tf.paragraphs, p)
	return p
}

// Paragraphs returns the paragraphs in order.
func (tf *TextFrame) Paragraphs() []*Paragraph {
	return tf.paragraphs
}

// SetText replaces the frame contents. Each line of text becomes a
// paragraph with the given font and alignment.
func (tf *TextFrame) SetText(text string, font Font, align Alignment) {
	tf.paragraphs = nil
	for _, line := range strings.Split(text, "\n") {
		p := tf.AddParagraph()
		p.Align = align
		p.Font = font
		p.AddRun(line)
	}
}

// SetInsets sets the left, top, right and bottom insets.
func (tf *TextFrame) SetInsets(left, top, right, bottom EMU) {
	tf.Insets = &[4]EMU{left, top, right, bottom}
}

// Text returns the frame text with paragraphs joined by "\n".
func (tf *TextFrame) Text() string {
	lines := make([]string, len(tf.paragraphs))
	for i, p := range tf.paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

func (tf *TextFrame) writeBody(b *strings.Builder, tag string, autoFit bool) {
	fmt.Fprintf(b, `<%s>`, tag)
	b.WriteString(`<a:bodyPr`)
	if tf.WordWrap {
		b.WriteString(` wrap="square"`)
	} else if autoFit {
		b.WriteString(` wrap="none"`)
	}
	if tf.Insets != nil {
		fmt.Fprintf(b, ` lIns="%d" tIns="%d" rIns="%d" bIns="%d"`, tf.Insets[0], tf.Insets[1], tf.Insets[2], tf.Insets[3])
	}
	if tf.Anchor != AnchorDefault {
		fmt.Fprintf(b, ` anchor="%s"`, tf.Anchor)
	}
	b.WriteString(` rtlCol="0">`)
	if autoFit {
		b.WriteString(`<a:spAutoFit/>`)
	}
	b.WriteString(`</a:bodyPr><a:lstStyle/>`)

	if len(tf.paragraphs) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>`)
	}
	for _, p := range tf.paragraphs {
		p.write(b)
	}
	fmt.Fprintf(b, `</%s>`, tag)
}

func (p *Paragraph) write(b *strings.Builder) {
	b.WriteString(`<a:p>`)
	if p.Align != AlignDefault || p.SpaceBefore > 0 || p.SpaceAfter > 0 {
		b.WriteString(`<a:pPr`)
		if p.Align != AlignDefault {
			fmt.Fprintf(b, ` algn="%s"`, p.Align)
		}
		b.WriteString(`>`)
		if p.SpaceBefore > 0 {
			fmt.Fprintf(b, `<a:spcBef><a:spcPts val="%d"/></a:spcBef>`, int(p.SpaceBefore*100))
		}
		if p.SpaceAfter > 0 {
			fmt.Fprintf(b, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, int(p.SpaceAfter*100))
		}
		b.WriteString(`</a:pPr>`)
	}
	for _, r := range p.Runs {
		b.WriteString(`<a:r>`)
		writeRunProps(b, "a:rPr", r.Font)
		fmt.Fprintf(b, `<a:t>%s</a:t></a:r>`, ooxml.Escape(r.Text))
	}
	writeRunProps(b, "a:endParaRPr", p.Font)
	b.WriteString(`</a:p>`)
}

func writeRunProps(b *strings.Builder, tag string, f Font) {
	fmt.Fprintf(b, `<%s lang="en-US"`, tag)
	if f.Size > 0 {
		fmt.Fprintf(b, ` sz="%d"`, int(f.Size*100))
	}
	if f.Bold {
		b.WriteString(` b="1"`)
	}
	if f.Italic {
		b.WriteString(` i="1"`)
	}
	if f.Underline {
		b.WriteString(` u="sng"`)
	}
	b.WriteString(` dirty="0"`)
	if f.Color == "" && f.Name == "" {
		b.WriteString(`/>`)
		return
	}
	b.WriteString(`>`)
	if f.Color != "" {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, f.Color)
	}
	if f.Name != "" {
		fmt.Fprintf(b, `<a:latin typeface="%s"/>`, ooxml.Escape(f.Name))
	}
	fmt.Fprintf(b, `</%s>`, tag)
}

package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	tests := []struct {
		name     string
		got      EMU
		expected EMU
	}{
		{"one inch", Inches(1), 914400},
		{"half inch", Inches(0.5), 457200},
		{"slide width", Inches(13.333), 12191695},
		{"one point", Pt(1), 12700},
		{"two points", Pt(2), 25400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
	assert.InDelta(t, 7.5, Inches(7.5).InchesValue(), 1e-9)
}

func TestRGB(t *testing.T) {
	assert.Equal(t, Color("A78BFA"), RGB(167, 139, 250))
	assert.Equal(t, Color("000000"), RGB(0, 0, 0))
}

func readParts(t *testing.T, p *Presentation) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
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
		require.NoError(t, err, "part %s is not well-formed", name)
	}
}

func TestPresentationParts(t *testing.T) {
	p := New()
	p.AddSlide().Background(RGB(0, 0, 0))
	p.AddSlide()

	parts := readParts(t, p)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		data, ok := parts[name]
		require.True(t, ok, "missing part %s", name)
		assertWellFormed(t, name, data)
	}

	pres := parts["ppt/presentation.xml"]
	assert.Contains(t, pres, `<p:sldSz cx="12191695" cy="6858000"/>`)
	assert.Contains(t, pres, `<p:sldId id="256"`)
	assert.Contains(t, pres, `<p:sldId id="257"`)

	assert.Contains(t, parts["ppt/slides/slide1.xml"], `<a:srgbClr val="000000"/>`)
	assert.NotContains(t, parts["ppt/slides/slide2.xml"], `<p:bg>`)
	assert.Contains(t, parts["[Content_Types].xml"], `PartName="/ppt/slides/slide2.xml"`)
}

func TestSlideShapes(t *testing.T) {
	p := New()
	s := p.AddSlide()

	tb := s.AddTextBox(Inches(1), Inches(1), Inches(4), Inches(1))
	tb.Text().WordWrap = true
	tb.Text().SetText("Line one\nR&D <two>", Font{Name: "Arial", Size: 18, Bold: true, Color: "FFFFFF"}, AlignCenter)

	box := s.AddShape(GeomRoundRect, 0, 0, Inches(2), Inches(1)).Fill("CCFF00").Line("FFFFFF", 2)
	box.Rotation(45)
	s.AddShape(GeomEllipse, 0, 0, Inches(1), Inches(1)).NoFill().NoLine()
	s.AddConnector(Inches(3), Inches(2), Inches(1), Inches(1)).Line("C0C0C0", 1.5).EndArrow()

	tbl := s.AddTable(2, 2, 0, 0, Inches(4), Inches(1))
	tbl.Cell(0, 0).Fill("0A0A0A").Text().SetText("Tier", Font{Bold: true}, AlignDefault)
	tbl.Cell(1, 1).Text().SetText("$49", Font{}, AlignDefault)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 2, tb.ID())
	assert.Equal(t, "TextBox 1", tb.Name())
	assert.Equal(t, "Rounded Rectangle 2", box.Name())
	assert.Equal(t, "Line one\nR&D <two>", tb.Text().Text())

	slide := readParts(t, p)["ppt/slides/slide1.xml"]
	assertWellFormed(t, "slide1", slide)

	assert.Contains(t, slide, `<p:cNvSpPr txBox="1"/>`)
	assert.Contains(t, slide, `<a:t>R&amp;D &lt;two&gt;</a:t>`)
	assert.Contains(t, slide, `sz="1800" b="1"`)
	assert.Contains(t, slide, `<a:latin typeface="Arial"/>`)
	assert.Contains(t, slide, `algn="ctr"`)
	assert.Contains(t, slide, `prst="roundRect"`)
	assert.Contains(t, slide, `rot="2700000"`)
	assert.Contains(t, slide, `<a:ln w="25400"><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill></a:ln>`)
	assert.Contains(t, slide, `flipH="1" flipV="1"`)
	assert.Contains(t, slide, `<a:tailEnd type="triangle"/>`)
	assert.Contains(t, slide, `<a:gridCol w="1828800"/>`)
	assert.Contains(t, slide, `<a:t>$49</a:t>`)
}

func TestTransparency(t *testing.T) {
	p := New()
	p.AddSlide().AddShape(GeomRect, 0, 0, 10, 10).Fill("FF0000").Transparency(0.25)

	slide := readParts(t, p)["ppt/slides/slide1.xml"]
	assert.Contains(t, slide, `<a:alpha val="75000"/>`)
}

func TestParagraphs(t *testing.T) {
	var tf TextFrame
	tf.Paragraph(2).SetText("third")
	assert.Len(t, tf.Paragraphs(), 3)
	assert.Equal(t, "\n\nthird", tf.Text())

	p := tf.AddParagraph()
	p.Font = Font{Size: 12}
	r := p.AddRun("x")
	assert.Equal(t, 12.0, r.Font.Size)
}

func TestSave(t *testing.T) {
	p := New()
	p.AddSlide()
	out := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, p.Save(out))
	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	assert.NoError(t, r.Close())
}

package pptx

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/ooxml"
)

type element interface {
	writeXML(b *strings.Builder)
}

type line struct {
	color Color
	width float64 // points
	none  bool
}

// Shape is a text box or preset-geometry autoshape.
type Shape struct {
	id       int
	name     string
	geom     Geometry
	txBox    bool
	X, Y     EMU
	W, H     EMU
	rotation float64

	fill         Color
	noFill       bool
	transparency float64
	line         *line
	text         *TextFrame
}

// ID returns the shape id within its slide.
func (s *Shape) ID() int { return s.id }

// Name returns the generated shape name.
func (s *Shape) Name() string { return s.name }

// Fill sets a solid fill.
func (s *Shape) Fill(c Color) *Shape {
	s.fill, s.noFill = c, false
	return s
}

// NoFill removes the fill.
func (s *Shape) NoFill() *Shape {
	s.fill, s.noFill = "", true
	return s
}

// Transparency sets the fill transparency in [0, 1].
func (s *Shape) Transparency(t float64) *Shape {
	s.transparency = math.Max(0, math.Min(1, t))
	return s
}

// Line sets the outline colour and width in points.
func (s *Shape) Line(c Color, widthPt float64) *Shape {
	s.line = &line{color: c, width: widthPt}
	return s
}

// NoLine removes the outline.
func (s *Shape) NoLine() *Shape {
	s.line = &line{none: true}
	return s
}

// Rotation sets the clockwise rotation in degrees.
func (s *Shape) Rotation(deg float64) *Shape {
	s.rotation = deg
	return s
}

// Text returns the shape's text frame, creating it on first use.
func (s *Shape) Text() *TextFrame {
	if s.text == nil {
		s.text = &TextFrame{}
	}
	return s.text
}

func (s *Shape) writeXML(b *strings.Builder) {
	b.WriteString(`<p:sp><p:nvSpPr>`)
	fmt.Fprintf(b, `<p:cNvPr id="%d" name="%s"/>`, s.id, ooxml.Escape(s.name))
	if s.txBox {
		b.WriteString(`<p:cNvSpPr txBox="1"/>`)
	} else {
		b.WriteString(`<p:cNvSpPr/>`)
	}
	b.WriteString(`<p:nvPr/></p:nvSpPr><p:spPr>`)
	writeXfrm(b, "a:xfrm", s.X, s.Y, s.W, s.H, s.rotation, false, false)
	fmt.Fprintf(b, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, s.geom)
	switch {
	case s.fill != "":
		writeSolidFill(b, s.fill, s.transparency)
	case s.noFill || s.txBox:
		b.WriteString(`<a:noFill/>`)
	}
	writeLine(b, s.line, false)
	b.WriteString(`</p:spPr>`)

	tf := s.text
	if tf == nil {
		tf = &TextFrame{}
	}
	if !s.txBox && tf.Anchor == AnchorDefault {
		copied := *tf
		copied.Anchor = AnchorMiddle
		tf = &copied
	}
	tf.writeBody(b, "p:txBody", s.txBox && !tf.WordWrap)
	b.WriteString(`</p:sp>`)
}

// Connector is a straight line between two points.
type Connector struct {
	id       int
	name     string
	X1, Y1   EMU
	X2, Y2   EMU
	color    Color
	width    float64
	endArrow bool
}

// Line sets the connector colour and width in points.
func (c *Connector) Line(color Color, widthPt float64) *Connector {
	c.color, c.width = color, widthPt
	return c
}

// EndArrow adds a triangle arrowhead at the end point.
func (c *Connector) EndArrow() *Connector {
	c.endArrow = true
	return c
}

func (c *Connector) writeXML(b *strings.Builder) {
	x, w, flipH := span(c.X1, c.X2)
	y, h, flipV := span(c.Y1, c.Y2)

	b.WriteString(`<p:cxnSp><p:nvCxnSpPr>`)
	fmt.Fprintf(b, `<p:cNvPr id="%d" name="%s"/>`, c.id, ooxml.Escape(c.name))
	b.WriteString(`<p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr><p:spPr>`)
	writeXfrm(b, "a:xfrm", x, y, w, h, 0, flipH, flipV)
	b.WriteString(`<a:prstGeom prst="line"><a:avLst/></a:prstGeom>`)
	var ln *line
	if c.color != "" {
		ln = &line{color: c.color, width: c.width}
	}
	writeLine(b, ln, c.endArrow)
	b.WriteString(`</p:spPr></p:cxnSp>`)
}

func span(a, b EMU) (origin, size EMU, flip bool) {
	if b < a {
		return b, a - b, true
	}
	return a, b - a, false
}

func writeXfrm(b *strings.Builder, tag string, x, y, w, h EMU, rot float64, flipH, flipV bool) {
	fmt.Fprintf(b, `<%s`, tag)
	if rot != 0 {
		fmt.Fprintf(b, ` rot="%d"`, int64(math.Round(rot*60000)))
	}
	if flipH {
		b.WriteString(` flipH="1"`)
	}
	if flipV {
		b.WriteString(` flipV="1"`)
	}
	fmt.Fprintf(b, `><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></%s>`, x, y, w, h, tag)
}

func writeSolidFill(b *strings.Builder, c Color, transparency float64) {
	if transparency > 0 {
		alpha := int(math.Round((1 - transparency) * 100000))
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"><a:alpha val="%d"/></a:srgbClr></a:solidFill>`, c, alpha)
		return
	}
	fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, c)
}

func writeLine(b *strings.Builder, ln *line, endArrow bool) {
	switch {
	case ln == nil && !endArrow:
		b.WriteString(`<a:ln><a:noFill/></a:ln>`)
		return
	case ln == nil:
		b.WriteString(`<a:ln>`)
	case ln.none:
		b.WriteString(`<a:ln><a:noFill/></a:ln>`)
		return
	default:
		if ln.width > 0 {
			fmt.Fprintf(b, `<a:ln w="%d">`, Pt(ln.width))
		} else {
			b.WriteString(`<a:ln>`)
		}
		writeSolidFill(b, ln.color, 0)
	}
	if endArrow {
		b.WriteString(`<a:tailEnd type="triangle"/>`)
	}
	b.WriteString(`</a:ln>`)
}

// Cell is one table cell.
type Cell struct {
	fill Color
	text TextFrame
}

// Fill sets the cell's solid fill.
func (c *Cell) Fill(color Color) *Cell {
	c.fill = color
	return c
}

// Text returns the cell's text frame.
func (c *Cell) Text() *TextFrame {
	return &c.text
}

// Table is a graphic-frame table with equal column widths and row heights.
type Table struct {
	id         int
	name       string
	X, Y, W, H EMU
	rows, cols int
	cells      [][]*Cell
}

// Cell returns the cell at row r, column c (0-based).
func (t *Table) Cell(r, c int) *Cell {
	return t.cells[r][c]
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.rows }

// Cols returns the column count.
func (t *Table) Cols() int { return t.cols }

func (t *Table) writeXML(b *strings.Builder) {
	b.WriteString(`<p:graphicFrame><p:nvGraphicFramePr>`)
	fmt.Fprintf(b, `<p:cNvPr id="%d" name="%s"/>`, t.id, ooxml.Escape(t.name))
	b.WriteString(`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`)
	writeXfrm(b, "p:xfrm", t.X, t.Y, t.W, t.H, 0, false, false)
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">`)
	b.WriteString(`<a:tbl><a:tblPr firstRow="1" bandRow="1"/><a:tblGrid>`)
	colW := t.W / EMU(t.cols)
	rowH := t.H / EMU(t.rows)
	for i := 0; i < t.cols; i++ {
		fmt.Fprintf(b, `<a:gridCol w="%d"/>`, colW)
	}
	b.WriteString(`</a:tblGrid>`)
	for _, row := range t.cells {
		fmt.Fprintf(b, `<a:tr h="%d">`, rowH)
		for _, cell := range row {
			b.WriteString(`<a:tc>`)
			cell.text.writeBody(b, "a:txBody", false)
			if cell.fill != "" {
				b.WriteString(`<a:tcPr>`)
				writeSolidFill(b, cell.fill, 0)
				b.WriteString(`</a:tcPr>`)
			} else {
				b.WriteString(`<a:tcPr/>`)
			}
			b.WriteString(`</a:tc>`)
		}
		b.WriteString(`</a:tr>`)
	}
	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
}

package pptx

import (
	"fmt"
	"strings"
)

// Slide is one slide on the blank layout.
type Slide struct {
	background Color
	elements   []element
	nextID     int
}

func newSlide() *Slide {
	return &Slide{nextID: 2}
}

// Background sets a solid background colour.
func (s *Slide) Background(c Color) {
	s.background = c
}

// Len returns the number of shapes on the slide.
func (s *Slide) Len() int {
	return len(s.elements)
}

func (s *Slide) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// AddTextBox adds a text box. Its text frame starts empty.
func (s *Slide) AddTextBox(x, y, w, h EMU) *Shape {
	id := s.allocID()
	sh := &Shape{
		id:    id,
		name:  fmt.Sprintf("TextBox %d", id-1),
		geom:  GeomRect,
		txBox: true,
		X:     x, Y: y, W: w, H: h,
	}
	s.elements = append(s.elements, sh)
	return sh
}

// AddShape adds an autoshape with the given preset geometry.
func (s *Slide) AddShape(g Geometry, x, y, w, h EMU) *Shape {
	id := s.allocID()
	label, ok := geometryNames[g]
	if !ok {
		label = string(g)
	}
	sh := &Shape{
		id:   id,
		name: fmt.Sprintf("%s %d", label, id-1),
		geom: g,
		X:    x, Y: y, W: w, H: h,
	}
	s.elements = append(s.elements, sh)
	return sh
}

// AddConnector adds a straight connector from (x1, y1) to (x2, y2).
func (s *Slide) AddConnector(x1, y1, x2, y2 EMU) *Connector {
	id := s.allocID()
	c := &Connector{
		id:   id,
		name: fmt.Sprintf("Straight Connector %d", id-1),
		X1:   x1, Y1: y1, X2: x2, Y2: y2,
	}
	s.elements = append(s.elements, c)
	return c
}

// AddTable adds a rows x cols table.
func (s *Slide) AddTable(rows, cols int, x, y, w, h EMU) *Table {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	id := s.allocID()
	t := &Table{
		id:   id,
		name: fmt.Sprintf("Table %d", id-1),
		X:    x, Y: y, W: w, H: h,
		rows: rows, cols: cols,
	}
	t.cells = make([][]*Cell, rows)
	for r := range t.cells {
		t.cells[r] = make([]*Cell, cols)
		for c := range t.cells[r] {
			t.cells[r][c] = &Cell{}
		}
	}
	s.elements = append(s.elements, t)
	return t
}

func (s *Slide) xml() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + nsDecl + `><p:cSld>`)
	if s.background != "" {
		fmt.Fprintf(&b, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, s.background)
	}
	b.WriteString(`<p:spTree>`)
	b.WriteString(groupProps)
	for _, el := range s.elements {
		el.writeXML(&b)
	}
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return []byte(b.String())
}

package pptx

import "fmt"

// EMU is an English Metric Unit, the DrawingML coordinate unit.
type EMU int64

const (
	// EMUPerInch is the number of EMU in one inch.
	EMUPerInch = 914400
	// EMUPerPoint is the number of EMU in one typographic point.
	EMUPerPoint = 12700
)

// Inches converts inches to EMU, truncating toward zero.
func Inches(in float64) EMU {
	return EMU(in * EMUPerInch)
}

// Pt converts points to EMU.
func Pt(pt float64) EMU {
	return EMU(pt * EMUPerPoint)
}

// InchesValue returns e in inches.
func (e EMU) InchesValue() float64 {
	return float64(e) / EMUPerInch
}

// Color is an sRGB colour written as RRGGBB.
type Color string

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("%02X%02X%02X", r, g, b))
}

// Alignment is a paragraph alignment value.
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "l"
	AlignCenter  Alignment = "ctr"
	AlignRight   Alignment = "r"
)

// Anchor is the vertical anchoring of text in a frame.
type Anchor string

const (
	AnchorDefault Anchor = ""
	AnchorTop     Anchor = "t"
	AnchorMiddle  Anchor = "ctr"
	AnchorBottom  Anchor = "b"
)

// Geometry is a preset shape geometry.
type Geometry string

const (
	GeomRect      Geometry = "rect"
	GeomRoundRect Geometry = "roundRect"
	GeomEllipse   Geometry = "ellipse"
	GeomTriangle  Geometry = "triangle"
)

var geometryNames = map[Geometry]string{
	GeomRect:      "Rectangle",
	GeomRoundRect: "Rounded Rectangle",
	GeomEllipse:   "Oval",
	GeomTriangle:  "Isosceles Triangle",
}

package models

// Shape represents slide shape metadata including position, size, text, and styling.
type Shape struct {
	// ID is the shape id within the slide (cNvPr id).
	ID *int `json:"id,omitempty" yaml:"id,omitempty"`
	// Name is the shape name (cNvPr name).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Text is the visible text content of the shape. Paragraphs are joined with "\n".
	Text string `json:"text" yaml:"text"`
	// L is the left offset in pixels.
	L int `json:"l" yaml:"l"`
	// T is the top offset in pixels.
	T int `json:"t" yaml:"t"`
	// W is the shape width in pixels (nil if unknown or not verbose mode).
	W *int `json:"w,omitempty" yaml:"w,omitempty"`
	// H is the shape height in pixels (nil if unknown or not verbose mode).
	H *int `json:"h,omitempty" yaml:"h,omitempty"`
	// Type is the shape type name (TextBox, Rectangle, Line, Table, ...).
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Fill is the solid fill colour as RRGGBB, if any.
	Fill string `json:"fill,omitempty" yaml:"fill,omitempty"`
	// Rotation is the rotation angle in degrees.
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	// BeginArrowStyle is the arrow style enum for the start of a connector.
	BeginArrowStyle *int `json:"begin_arrow_style,omitempty" yaml:"begin_arrow_style,omitempty"`
	// EndArrowStyle is the arrow style enum for the end of a connector.
	EndArrowStyle *int `json:"end_arrow_style,omitempty" yaml:"end_arrow_style,omitempty"`
	// Direction is the connector direction (compass heading: N, NE, E, SE, S, SW, W, NW).
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	// Cells holds table cell text row by row (tables only).
	Cells [][]string `json:"cells,omitempty" yaml:"cells,omitempty"`
}

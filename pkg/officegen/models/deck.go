package models

// DeckData represents a presentation with its slides.
type DeckData struct {
	// DeckName is the presentation file name (no path).
	DeckName string `json:"deck_name" yaml:"deck_name"`
	// SlideWidth is the slide width in pixels.
	SlideWidth int `json:"slide_width" yaml:"slide_width"`
	// SlideHeight is the slide height in pixels.
	SlideHeight int `json:"slide_height" yaml:"slide_height"`
	// Slides lists slides in presentation order.
	Slides []SlideData `json:"slides" yaml:"slides"`
}

// SlideData represents a single slide.
type SlideData struct {
	// Index is the 1-based slide position.
	Index int `json:"index" yaml:"index"`
	// Background is the solid background colour as RRGGBB, if set.
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	// Shapes contains the shapes on the slide in z-order.
	Shapes []Shape `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// Texts returns the non-empty text of every shape on the slide.
func (s SlideData) Texts() []string {
	var out []string
	for _, sh := range s.Shapes {
		if sh.Text != "" {
			out = append(out, sh.Text)
		}
		for _, row := range sh.Cells {
			for _, c := range row {
				if c != "" {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

package models

// Block kinds.
const (
	BlockParagraph = "paragraph"
	BlockTable     = "table"
)

// DocumentData represents a word-processing document body.
type DocumentData struct {
	// DocName is the document file name (no path).
	DocName string `json:"doc_name" yaml:"doc_name"`
	// Blocks lists body paragraphs and tables in order.
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Block is a paragraph or a table.
type Block struct {
	// Kind is "paragraph" or "table".
	Kind string `json:"kind" yaml:"kind"`
	// Style is the paragraph or table style id.
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	// Runs holds paragraph runs.
	Runs []Run `json:"runs,omitempty" yaml:"runs,omitempty"`
	// Rows holds table cell text.
	Rows [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// Text returns the concatenated run text of a paragraph block.
func (b Block) Text() string {
	var s string
	for _, r := range b.Runs {
		s += r.Text
	}
	return s
}

// Run is a span of uniformly formatted text.
type Run struct {
	Text        string `json:"text" yaml:"text"`
	Bold        bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic      bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline   bool   `json:"underline,omitempty" yaml:"underline,omitempty"`
	Font        string `json:"font,omitempty" yaml:"font,omitempty"`
	SizeHalfPts int    `json:"size_half_pts,omitempty" yaml:"size_half_pts,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

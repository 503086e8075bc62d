// Package models defines the read-back structures for generated documents.
package models

// CellRow represents a single row of cells with their formulas.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// C maps column letter to cell value.
	C map[string]interface{} `json:"c" yaml:"c"`
	// F maps column letter to formula text, including the leading "=".
	F map[string]string `json:"f,omitempty" yaml:"f,omitempty"`
}

// Value returns the value stored in column col, or nil.
func (r CellRow) Value(col string) interface{} {
	if r.C == nil {
		return nil
	}
	return r.C[col]
}

package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Rows contains rows with cell values and formulas.
	Rows []CellRow `json:"rows,omitempty" yaml:"rows,omitempty"`
	// MergedCells contains merged ranges such as "A1:N1".
	MergedCells []string `json:"merged_cells,omitempty" yaml:"merged_cells,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty" yaml:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty" yaml:"print_areas,omitempty"`
}

// Row returns the row with index r, if present.
func (s SheetData) Row(r int) (CellRow, bool) {
	for _, row := range s.Rows {
		if row.R == r {
			return row, true
		}
	}
	return CellRow{}, false
}

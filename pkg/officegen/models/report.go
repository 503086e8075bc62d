package models

// Report is the result of inspecting one file. Exactly one field is set.
type Report struct {
	Workbook *WorkbookData `json:"workbook,omitempty" yaml:"workbook,omitempty"`
	Deck     *DeckData     `json:"deck,omitempty" yaml:"deck,omitempty"`
	Document *DocumentData `json:"document,omitempty" yaml:"document,omitempty"`
}

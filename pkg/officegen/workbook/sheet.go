// Package workbook builds the linear-programming homework workbooks.
package workbook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/ooxml"
	"github.com/xuri/excelize/v2"
)

// Common fill colours.
const (
	FillHeaderBlue = "366092"
	FillAlertRed   = "C00000"
	FillCheckGreen = "70AD47"
	FillColumnHead = "D9E1F2"
	FillVariable   = "FFF2CC"
	FillBinary     = "FCE4D6"
	FillTotal      = "E2EFDA"
	FillObjective  = "FFD966"
	FillExpensive  = "FFC7CE"
	FillCheap      = "C6EFCE"
)

// Style is a cell style key. Zero fields mean "unset".
type Style struct {
	Bold     bool
	Size     float64
	Color    string
	Fill     string
	Align    string
	Rotation int
}

// merge overlays the set fields of o onto s.
func (s Style) merge(o Style) Style {
	if o.Bold {
		s.Bold = true
	}
	if o.Size > 0 {
		s.Size = o.Size
	}
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.Fill != "" {
		s.Fill = o.Fill
	}
	if o.Align != "" {
		s.Align = o.Align
	}
	if o.Rotation != 0 {
		s.Rotation = o.Rotation
	}
	return s
}

func (s Style) excelize() *excelize.Style {
	es := &excelize.Style{}
	if s.Bold || s.Size > 0 || s.Color != "" {
		es.Font = &excelize.Font{Bold: s.Bold, Size: s.Size, Color: s.Color}
	}
	if s.Fill != "" {
		es.Fill = excelize.Fill{Type: "pattern", Color: []string{s.Fill}, Pattern: 1}
	}
	if s.Align != "" || s.Rotation != 0 {
		es.Alignment = &excelize.Alignment{Horizontal: s.Align, TextRotation: s.Rotation}
	}
	return es
}

// Book wraps an excelize file with a shared style cache.
type Book struct {
	f      *excelize.File
	styles map[Style]int
	sheets []*Sheet
}

// NewBook returns an empty workbook.
func NewBook() *Book {
	return &Book{
		f:      excelize.NewFile(),
		styles: make(map[Style]int),
	}
}

// File returns the underlying excelize file.
func (b *Book) File() *excelize.File {
	return b.f
}

// Sheets returns the sheets created through b in order.
func (b *Book) Sheets() []*Sheet {
	return b.sheets
}

// Sheet creates a worksheet named name.
func (b *Book) Sheet(name string) *Sheet {
	s := &Sheet{book: b, name: name, cells: make(map[string]Style)}
	if _, err := b.f.NewSheet(name); err != nil {
		s.err = fmt.Errorf("create sheet %q: %w", name, err)
	}
	b.sheets = append(b.sheets, s)
	return s
}

// Err returns the first error recorded by any sheet.
func (b *Book) Err() error {
	for _, s := range b.sheets {
		if s.err != nil {
			return s.err
		}
	}
	return nil
}

// Finish drops the default sheet, sets print areas and activates the first sheet.
func (b *Book) Finish() error {
	if err := b.Err(); err != nil {
		return err
	}
	if len(b.sheets) == 0 {
		return nil
	}
	if idx, err := b.f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 && !b.hasSheet("Sheet1") {
		if err := b.f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}
	for _, s := range b.sheets {
		s.PrintArea()
	}
	if idx, err := b.f.GetSheetIndex(b.sheets[0].name); err == nil && idx >= 0 {
		b.f.SetActiveSheet(idx)
	}
	return b.Err()
}

func (b *Book) hasSheet(name string) bool {
	for _, s := range b.sheets {
		if s.name == name {
			return true
		}
	}
	return false
}

// Bytes serialises the workbook.
func (b *Book) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the workbook to path atomically.
func (b *Book) Save(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	return ooxml.SaveFile(path, data)
}

// Close releases the underlying file.
func (b *Book) Close() error {
	return b.f.Close()
}

func (b *Book) styleID(st Style) (int, error) {
	if id, ok := b.styles[st]; ok {
		return id, nil
	}
	id, err := b.f.NewStyle(st.excelize())
	if err != nil {
		return 0, err
	}
	b.styles[st] = id
	return id, nil
}

// Sheet writes cells to one worksheet. The first error stops further writes
// and is reported by Err.
type Sheet struct {
	book   *Book
	name   string
	cells  map[string]Style
	maxRow int
	maxCol int
	err    error
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Err returns the first error encountered.
func (s *Sheet) Err() error {
	return s.err
}

// StyleOf returns the style applied to cell.
func (s *Sheet) StyleOf(cell string) Style {
	return s.cells[cell]
}

func (s *Sheet) track(cell string) bool {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		s.err = fmt.Errorf("%s: %w", s.name, err)
		return false
	}
	s.maxRow = max(s.maxRow, row)
	s.maxCol = max(s.maxCol, col)
	return true
}

// Set writes v to cell. Strings starting with "=" are written as formulas.
func (s *Sheet) Set(cell string, v interface{}) {
	if str, ok := v.(string); ok && strings.HasPrefix(str, "=") {
		s.Formula(cell, str)
		return
	}
	if s.err != nil || !s.track(cell) {
		return
	}
	if err := s.book.f.SetCellValue(s.name, cell, v); err != nil {
		s.err = fmt.Errorf("set %s!%s: %w", s.name, cell, err)
	}
}

// Formula writes a formula. The leading "=" is optional.
func (s *Sheet) Formula(cell, formula string) {
	if s.err != nil || !s.track(cell) {
		return
	}
	if err := s.book.f.SetCellFormula(s.name, cell, strings.TrimPrefix(formula, "=")); err != nil {
		s.err = fmt.Errorf("formula %s!%s: %w", s.name, cell, err)
	}
}

// Style merges st into the style of each cell.
func (s *Sheet) Style(st Style, cells ...string) {
	for _, cell := range cells {
		if s.err != nil {
			return
		}
		merged := s.cells[cell].merge(st)
		id, err := s.book.styleID(merged)
		if err != nil {
			s.err = fmt.Errorf("style %s!%s: %w", s.name, cell, err)
			return
		}
		if err := s.book.f.SetCellStyle(s.name, cell, cell, id); err != nil {
			s.err = fmt.Errorf("style %s!%s: %w", s.name, cell, err)
			return
		}
		s.cells[cell] = merged
	}
}

// Bold makes each cell bold.
func (s *Sheet) Bold(cells ...string) {
	s.Style(Style{Bold: true}, cells...)
}

// Fill gives each cell a solid fill.
func (s *Sheet) Fill(color string, cells ...string) {
	s.Style(Style{Fill: color}, cells...)
}

// Header makes each cell bold, with a fill when color is set.
func (s *Sheet) Header(color string, cells ...string) {
	s.Style(Style{Bold: true, Fill: color}, cells...)
}

// Merge merges the range from:to.
func (s *Sheet) Merge(from, to string) {
	if s.err != nil {
		return
	}
	if err := s.book.f.MergeCell(s.name, from, to); err != nil {
		s.err = fmt.Errorf("merge %s!%s:%s: %w", s.name, from, to, err)
	}
}

// Title writes a 14pt bold title into cell and merges it to mergeTo.
func (s *Sheet) Title(cell, text, mergeTo string) {
	s.Set(cell, text)
	s.Style(Style{Bold: true, Size: 14}, cell)
	s.Merge(cell, mergeTo)
}

// Section writes a banner: white bold text of the given size on a solid fill,
// merged to mergeTo.
func (s *Sheet) Section(cell, text, fill string, size float64, mergeTo string) {
	s.Set(cell, text)
	s.Style(Style{Bold: true, Size: size, Color: "FFFFFF", Fill: fill}, cell)
	if mergeTo != "" {
		s.Merge(cell, mergeTo)
	}
}

// ColWidth sets the width of the columns from first to last.
func (s *Sheet) ColWidth(first, last string, width float64) {
	if s.err != nil {
		return
	}
	if err := s.book.f.SetColWidth(s.name, first, last, width); err != nil {
		s.err = fmt.Errorf("column width %s!%s: %w", s.name, first, err)
	}
}

// UsedRange returns the range covering every written cell, e.g. "A1:O60".
func (s *Sheet) UsedRange() string {
	if s.maxRow == 0 {
		return ""
	}
	end, _ := excelize.CoordinatesToCellName(s.maxCol, s.maxRow)
	return "A1:" + end
}

// PrintArea defines the print area as the used range.
func (s *Sheet) PrintArea() {
	if s.err != nil || s.maxRow == 0 {
		return
	}
	end, _ := excelize.CoordinatesToCellName(s.maxCol, s.maxRow, true)
	ref := fmt.Sprintf("'%s'!$A$1:%s", s.name, end)
	err := s.book.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: ref,
		Scope:    s.name,
	})
	if err != nil {
		s.err = fmt.Errorf("print area %s: %w", s.name, err)
	}
}

// Col returns the column letter for a 1-based index.
func Col(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return ""
	}
	return name
}

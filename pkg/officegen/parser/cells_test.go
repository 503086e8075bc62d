package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	formulas := map[string]string{"C2": "=A2+B2", "B5": "=SUM(A2:B2)"}

	rows, err := ExtractCells(f, sheetName, formulas)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["A"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["A"])
	}

	if rows[1].C["A"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["A"], rows[1].C["A"])
	}
	if rows[1].C["B"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["B"])
	}
	if rows[1].F["C"] != "=A2+B2" {
		t.Errorf("Expected formula on C2, got %v", rows[1].F)
	}

	// formula-only rows are kept
	if rows[3].R != 5 || rows[3].F["B"] != "=SUM(A2:B2)" {
		t.Errorf("Expected formula row 5, got %+v", rows[3])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestParseSheetFormulas(t *testing.T) {
	data := []byte(`<worksheet><sheetData>` +
		`<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1"><f>SUM(B2:B3)</f><v>3</v></c></row>` +
		`<row r="2"><c r="C2"><f>A1&amp;"x"</f></c></row>` +
		`</sheetData></worksheet>`)

	got := parseSheetFormulas(data)
	if len(got) != 2 {
		t.Fatalf("Expected 2 formulas, got %v", got)
	}
	if got["B1"] != "=SUM(B2:B3)" {
		t.Errorf("B1 = %q", got["B1"])
	}
	if got["C2"] != `=A1&"x"` {
		t.Errorf("C2 = %q", got["C2"])
	}
}

func TestExtractFormulasAndMerges(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Model"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Model", "A1", 2)
	f.SetCellValue("Model", "A2", 3)
	if err := f.SetCellFormula("Model", "A3", "A1*A2"); err != nil {
		t.Fatalf("SetCellFormula failed: %v", err)
	}
	if err := f.MergeCell("Model", "C1", "E1"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "formulas.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	formulas, err := ExtractFormulas(tmpFile)
	if err != nil {
		t.Fatalf("ExtractFormulas failed: %v", err)
	}
	if formulas["Model"]["A3"] != "=A1*A2" {
		t.Errorf("Expected =A1*A2, got %v", formulas["Model"])
	}
	if len(formulas["Sheet1"]) != 0 {
		t.Errorf("Expected no formulas on Sheet1, got %v", formulas["Sheet1"])
	}

	merges, err := ExtractMergedCells(f, "Model")
	if err != nil {
		t.Fatalf("ExtractMergedCells failed: %v", err)
	}
	if len(merges) != 1 || merges[0] != "C1:E1" {
		t.Errorf("Expected [C1:E1], got %v", merges)
	}
}

package parser

import (
	"testing"

	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/xuri/excelize/v2"
)

func TestParseAreaRef(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		area  models.PrintArea
		ok    bool
	}{
		{"'Part B - Basic Model'!$A$1:$H$30", "Part B - Basic Model", models.PrintArea{R1: 1, C1: 1, R2: 30, C2: 8}, true},
		{"Sheet1!B2:D4", "Sheet1", models.PrintArea{R1: 2, C1: 2, R2: 4, C2: 4}, true},
		{"'It''s'!$A$1:$A$2", "It's", models.PrintArea{R1: 1, C1: 1, R2: 2, C2: 1}, true},
		{"$A$1:$B$2", "", models.PrintArea{R1: 1, C1: 1, R2: 2, C2: 2}, true},
		{"Sheet1!A1", "", models.PrintArea{}, false},
		{"Sheet1!ZZZZZ1:A1", "", models.PrintArea{}, false},
	}

	for _, tt := range tests {
		sheet, area, ok := parseAreaRef(tt.ref)
		if ok != tt.ok {
			t.Errorf("parseAreaRef(%q) ok = %v, expected %v", tt.ref, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if sheet != tt.sheet || area != tt.area {
			t.Errorf("parseAreaRef(%q) = %q %+v, expected %q %+v", tt.ref, sheet, area, tt.sheet, tt.area)
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$5",
		Scope:    "Sheet1",
	})
	if err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	areas := ExtractPrintAreas(f)
	got := areas["Sheet1"]
	if len(got) != 1 {
		t.Fatalf("Expected 1 print area, got %v", areas)
	}
	want := models.PrintArea{R1: 1, C1: 1, R2: 5, C2: 3}
	if got[0] != want {
		t.Errorf("Expected %+v, got %+v", want, got[0])
	}
}

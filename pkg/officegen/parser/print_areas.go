package parser

import (
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of every sheet, keyed by sheet
// name. Both sheet-scoped and workbook-scoped definitions are read.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, ref := range strings.Split(dn.RefersTo, ",") {
			sheet, area, ok := parseAreaRef(ref)
			if !ok {
				continue
			}
			if sheet == "" {
				sheet = dn.Scope
			}
			result[sheet] = append(result[sheet], area)
		}
	}

	return result
}

// parseAreaRef parses 'Sheet Name'!$A$1:$D$10 or Sheet!A1:D10.
func parseAreaRef(ref string) (sheet string, area models.PrintArea, ok bool) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		sheet = strings.ReplaceAll(sheet, "''", "'")
		ref = ref[idx+1:]
	}

	from, to, found := strings.Cut(strings.ReplaceAll(ref, "$", ""), ":")
	if !found {
		return "", area, false
	}

	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return "", area, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return "", area, false
	}

	return sheet, models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}

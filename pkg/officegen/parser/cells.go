package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell values from a sheet and merges in the given
// formulas (cell reference -> "=formula"). Rows holding only formulas are
// included. Rows are returned in ascending order.
func ExtractCells(f *excelize.File, sheetName string, formulas map[string]string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	byRow := make(map[int]*models.CellRow)
	get := func(r int) *models.CellRow {
		row, ok := byRow[r]
		if !ok {
			row = &models.CellRow{R: r, C: make(map[string]interface{})}
			byRow[r] = row
		}
		return row
	}

	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			col, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			get(rowIdx + 1).C[col] = parseValue(cellValue)
		}
	}

	for ref, formula := range formulas {
		col, rowNum, err := excelize.SplitCellName(ref)
		if err != nil {
			continue
		}
		row := get(rowNum)
		if row.F == nil {
			row.F = make(map[string]string)
		}
		row.F[col] = formula
	}

	keys := make([]int, 0, len(byRow))
	for r := range byRow {
		keys = append(keys, r)
	}
	sort.Ints(keys)

	result := make([]models.CellRow, 0, len(keys))
	for _, r := range keys {
		result = append(result, *byRow[r])
	}
	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// ExtractFormulas reads every worksheet of an xlsx file and returns, per
// sheet, the formulas keyed by cell reference. Formulas carry a leading "=".
func ExtractFormulas(xlsxPath string) (map[string]map[string]string, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	paths, err := worksheetPaths(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]string)
	for sheetName, sheetPath := range paths {
		data, err := readZipFile(&r.Reader, sheetPath)
		if err != nil {
			return nil, err
		}
		result[sheetName] = parseSheetFormulas(data)
	}
	return result, nil
}

// parseSheetFormulas streams worksheet XML and collects <f> contents.
func parseSheetFormulas(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var current string
	for {
		token, err := decoder.Token()
		if err == io.EOF || err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "c":
				current = attr(t, "r")
			case "f":
				text, err := readElementText(decoder)
				if err == nil && current != "" && text != "" {
					result[current] = "=" + text
				}
			}
		case xml.EndElement:
			if t.Name.Local == "c" {
				current = ""
			}
		}
	}

	return result
}

// ExtractMergedCells returns merged ranges of a sheet as "A1:N1" strings.
func ExtractMergedCells(f *excelize.File, sheetName string) ([]string, error) {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(merges))
	for _, m := range merges {
		result = append(result, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	sort.Strings(result)
	return result, nil
}

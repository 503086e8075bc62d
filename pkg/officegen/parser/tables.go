package parser

import (
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams tunes table candidate detection.
type TableDetectionParams struct {
	// MinCols is the minimum number of filled cells a row needs to be part
	// of a table block.
	MinCols int
	// MinRows is the minimum height of a block.
	MinRows int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		MinCols: 2,
		MinRows: 3,
	}
}

// DetectTables returns ranges (e.g. "A4:N12") of row blocks that look like
// tables: runs of consecutive rows each holding at least MinCols values.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return detectBlocks(rows, params), nil
}

func detectBlocks(rows [][]string, params TableDetectionParams) []string {
	var result []string

	start := -1
	minCol, maxCol := 0, 0
	flush := func(end int) {
		if start >= 0 && end-start+1 >= params.MinRows {
			from, _ := excelize.CoordinatesToCellName(minCol+1, start+1)
			to, _ := excelize.CoordinatesToCellName(maxCol+1, end+1)
			result = append(result, from+":"+to)
		}
		start = -1
	}

	for rowIdx, row := range rows {
		first, last, filled := rowBounds(row)
		if filled < params.MinCols {
			flush(rowIdx - 1)
			continue
		}
		if start < 0 {
			start, minCol, maxCol = rowIdx, first, last
			continue
		}
		minCol = min(minCol, first)
		maxCol = max(maxCol, last)
	}
	flush(len(rows) - 1)

	return result
}

func rowBounds(row []string) (first, last, filled int) {
	first = -1
	for colIdx, cell := range row {
		if cell == "" {
			continue
		}
		if first < 0 {
			first = colIdx
		}
		last = colIdx
		filled++
	}
	return first, last, filled
}

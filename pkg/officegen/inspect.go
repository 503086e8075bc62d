package officegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/ukaji3/officegen-go/pkg/officegen/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a generated .xlsx, .pptx or .docx file back into models.
func Inspect(path string, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		wb, err := InspectWorkbook(path, opts)
		if err != nil {
			return nil, NewGenerationError(name, "cells", err)
		}
		return &models.Report{Workbook: wb}, nil
	case ".pptx":
		mode := string(opts.Mode)
		if !opts.ShouldIncludeShapes() {
			mode = string(ModeLight)
		}
		deck, err := parser.ExtractSlides(path, mode)
		if err != nil {
			return nil, NewGenerationError(name, "slides", err)
		}
		return &models.Report{Deck: deck}, nil
	case ".docx":
		doc, err := parser.ExtractDocument(path)
		if err != nil {
			return nil, NewGenerationError(name, "document", err)
		}
		return &models.Report{Document: doc}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// InspectWorkbook extracts cells, formulas, merges, table candidates and
// print areas from an xlsx file.
func InspectWorkbook(path string, opts Options) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Formula-only cells are dropped by excelize's row reader, so formulas
	// come from the worksheet parts directly.
	formulas, err := parser.ExtractFormulas(path)
	if err != nil {
		return nil, err
	}

	sheetList := f.GetSheetList()
	sheets := make(map[string]models.SheetData, len(sheetList))

	for _, sheetName := range sheetList {
		rows, err := parser.ExtractCells(f, sheetName, formulas[sheetName])
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
		}
		sheet := models.SheetData{Rows: rows}

		if opts.Mode != ModeLight {
			sheet.TableCandidates, err = parser.DetectTables(f, sheetName, parser.DefaultTableParams())
			if err != nil {
				return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
			}
		}

		if opts.ShouldIncludeMerges() {
			sheet.MergedCells, err = parser.ExtractMergedCells(f, sheetName)
			if err != nil {
				return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
			}
		}

		sheets[sheetName] = sheet
	}

	if opts.ShouldIncludePrintAreas() {
		for sheetName, areas := range parser.ExtractPrintAreas(f) {
			if sheet, ok := sheets[sheetName]; ok {
				sheet.PrintAreas = areas
				sheets[sheetName] = sheet
			}
		}
	}

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetOrder: sheetList,
		Sheets:     sheets,
	}, nil
}

// PrintAreaViews slices every sheet of wb by its print areas, in sheet order.
func PrintAreaViews(wb *models.WorkbookData) []models.PrintAreaView {
	var views []models.PrintAreaView
	for _, sheetName := range wb.SheetOrder {
		sheet := wb.Sheets[sheetName]
		for _, area := range sheet.PrintAreas {
			views = append(views, printAreaView(wb.BookName, sheetName, sheet, area))
		}
	}
	return views
}

func printAreaView(bookName, sheetName string, sheet models.SheetData, area models.PrintArea) models.PrintAreaView {
	view := models.PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}

	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		clipped := models.CellRow{R: row.R, C: make(map[string]interface{})}
		for col, v := range row.C {
			if inColumns(col, area) {
				clipped.C[col] = v
			}
		}
		for col, formula := range row.F {
			if inColumns(col, area) {
				if clipped.F == nil {
					clipped.F = make(map[string]string)
				}
				clipped.F[col] = formula
			}
		}
		if len(clipped.C) > 0 || len(clipped.F) > 0 {
			view.Rows = append(view.Rows, clipped)
		}
	}

	for _, ref := range sheet.TableCandidates {
		if rangeIntersects(ref, area) {
			view.TableCandidates = append(view.TableCandidates, ref)
		}
	}

	return view
}

func inColumns(col string, area models.PrintArea) bool {
	n, err := excelize.ColumnNameToNumber(col)
	return err == nil && n >= area.C1 && n <= area.C2
}

func rangeIntersects(ref string, area models.PrintArea) bool {
	from, to, ok := strings.Cut(ref, ":")
	if !ok {
		return false
	}
	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return false
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return false
	}
	return r1 <= area.R2 && r2 >= area.R1 && c1 <= area.C2 && c2 >= area.C1
}

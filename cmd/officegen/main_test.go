package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/officegen-go/pkg/officegen"
	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/ukaji3/officegen-go/pkg/officegen/workbook"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestWorkbookCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "p4.xlsx")
	require.NoError(t, execute(t, "workbook", "problem4", "-o", out))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestDeckCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "deck", "device-frames", "--out-dir", dir, "-o", ""))

	_, err := os.Stat(filepath.Join(dir, "slide-options-v3-device-frames.pptx"))
	assert.NoError(t, err)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown problem", []string{"workbook", "problem7"}},
		{"empty problem", []string{"workbook", "", "-o", ""}},
		{"unknown deck", []string{"deck", "keynote"}},
		{"missing markdown", []string{"md2docx", filepath.Join(t.TempDir(), "none.md")}},
		{"bad chunk size", []string{"split-pdf", "book.pdf", "ten"}},
		{"bad inspect mode", []string{"inspect", "book.xlsx", "--mode", "deep"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, execute(t, tt.args...))
		})
	}
}

func TestWorkbookUnknownProblemWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	err := execute(t, "workbook", "problem7", "-o", "", "--out-dir", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, officegen.ErrUnknownProblem))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#ffffff"/></svg>`

func TestIconsSizesFromEnv(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.svg")
	require.NoError(t, os.WriteFile(src, []byte(squareSVG), 0o644))
	out := filepath.Join(dir, "out")

	t.Setenv("OFFICEGEN_ICONS_SIZES", "24,32")
	require.NoError(t, execute(t, "icons", "--source", src, "--out-dir", out))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"icon-24.png", "icon-32.png"}, names)
}

func TestIconsEmptySizes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.svg")
	require.NoError(t, os.WriteFile(src, []byte(squareSVG), 0o644))
	out := filepath.Join(dir, "out")

	t.Setenv("OFFICEGEN_ICONS_SIZES", " ")
	assert.Error(t, execute(t, "icons", "--source", src, "--out-dir", out))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestInspectPrintAreasDir(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "p4.xlsx")
	require.NoError(t, workbook.Generate("problem4", book))
	areas := filepath.Join(dir, "areas")

	require.NoError(t, execute(t, "inspect", book, "--mode", "standard", "--format", "json", "-o", "", "--print-areas-dir", areas))

	tests := []struct {
		file  string
		sheet string
		r2    int
	}{
		{workbook.Problem4BasicSheet + "_area1.json", workbook.Problem4BasicSheet, 30},
		{workbook.Problem4ExtendedSheet + "_area1.json", workbook.Problem4ExtendedSheet, 37},
	}
	for _, tt := range tests {
		data, err := os.ReadFile(filepath.Join(areas, tt.file))
		require.NoError(t, err, tt.file)

		var view models.PrintAreaView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, "p4.xlsx", view.BookName)
		assert.Equal(t, tt.sheet, view.SheetName)
		assert.Equal(t, tt.r2, view.Area.R2)
		assert.NotEmpty(t, view.Rows)
	}
}

func TestInspectPrintAreasDirNeedsWorkbook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "deck", "device-frames", "--out-dir", dir, "-o", ""))
	deckPath := filepath.Join(dir, "slide-options-v3-device-frames.pptx")

	err := execute(t, "inspect", deckPath, "-o", "", "--print-areas-dir", filepath.Join(dir, "areas"))
	assert.Error(t, err)
}

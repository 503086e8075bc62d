package pdfsplit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/officegen-go/pkg/officegen"
)

// writePDF assembles a minimal PDF with n empty letter-size pages.
func writePDF(t *testing.T, path string, n int) {
	t.Helper()

	objs := []string{"<< /Type /Catalog /Pages 2 0 R >>"}
	var kids bytes.Buffer
	for i := 0; i < n; i++ {
		fmt.Fprintf(&kids, "%d 0 R ", i+3)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), n))
	for i := 0; i < n; i++ {
		objs = append(objs, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, obj := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func pageCount(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	n, err := api.PageCount(f, newConfig())
	require.NoError(t, err)
	return n
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		chunk    int
		expected []Chunk
	}{
		{"exact", 40, 20, []Chunk{{1, 1, 20}, {2, 21, 40}}},
		{"remainder", 45, 20, []Chunk{{1, 1, 20}, {2, 21, 40}, {3, 41, 45}}},
		{"single short", 3, 20, []Chunk{{1, 1, 3}}},
		{"one per page", 3, 1, []Chunk{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}},
		{"empty", 0, 20, nil},
		{"bad chunk", 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.total, tt.chunk)
			assert.Equal(t, tt.expected, got)

			sum := 0
			for _, c := range got {
				sum += c.Pages()
			}
			if tt.chunk > 0 {
				assert.Equal(t, tt.total, sum)
			}
		})
	}
}

func TestChunkFileName(t *testing.T) {
	c := Chunk{Index: 2, First: 21, Last: 40}
	assert.Equal(t, "report_part2_pages21-40.pdf", c.FileName("report"))
	assert.Equal(t, "21-40", c.Selection())
}

func TestOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("docs", "book_split"), OutputDir(filepath.Join("docs", "book.pdf")))
}

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writePDF(t, input, 5)

	res, err := Split(input, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalPages)
	assert.Equal(t, filepath.Join(dir, "book_split"), res.Dir)

	expected := []struct {
		file  string
		pages int
	}{
		{"book_part1_pages1-2.pdf", 2},
		{"book_part2_pages3-4.pdf", 2},
		{"book_part3_pages5-5.pdf", 1},
	}
	require.Len(t, res.Files, len(expected))
	for i, e := range expected {
		assert.Equal(t, filepath.Join(res.Dir, e.file), res.Files[i])
		assert.Equal(t, e.pages, pageCount(t, res.Files[i]), e.file)
	}
}

func TestSplitErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writePDF(t, input, 1)

	tests := []struct {
		name   string
		input  string
		chunk  int
		target error
	}{
		{"zero chunk", input, 0, officegen.ErrInvalidChunkSize},
		{"negative chunk", input, -5, officegen.ErrInvalidChunkSize},
		{"missing file", filepath.Join(dir, "none.pdf"), 20, officegen.ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input, tt.chunk, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
		})
	}

	_, err := os.Stat(OutputDir(input))
	assert.True(t, os.IsNotExist(err))
}

func TestSplitNotPDF(t *testing.T) {
	input := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(input, []byte("plain text"), 0o644))

	_, err := Split(input, 20, nil)
	require.Error(t, err)
	var genErr *officegen.GenerationError
	assert.True(t, errors.As(err, &genErr))
}

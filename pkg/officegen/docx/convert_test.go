package docx_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/officegen-go/pkg/officegen"
	"github.com/ukaji3/officegen-go/pkg/officegen/docx"
	"github.com/ukaji3/officegen-go/pkg/officegen/markdown"
	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/ukaji3/officegen-go/pkg/officegen/parser"
)

func convert(t *testing.T, md string, d markdown.Dialect) *models.DocumentData {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "in.md")
	dst := filepath.Join(dir, "out.docx")
	require.NoError(t, os.WriteFile(src, []byte(md), 0o644))
	require.NoError(t, docx.Convert(src, dst, d))

	data, err := parser.ExtractDocument(dst)
	require.NoError(t, err)
	return data
}

func TestConvertSimple(t *testing.T) {
	md := strings.Join([]string{
		"# Title One",
		"Intro with **bold** and `code`.",
		"",
		"- item",
		"1. first",
		"```",
		"x := 1",
		"```",
	}, "\n")

	data := convert(t, md, markdown.Simple)
	require.Len(t, data.Blocks, 5)

	assert.Equal(t, "Heading1", data.Blocks[0].Style)
	assert.Equal(t, "Title One", data.Blocks[0].Text())

	intro := data.Blocks[1]
	assert.Equal(t, "Intro with bold and code.", intro.Text())
	require.Len(t, intro.Runs, 5)
	assert.True(t, intro.Runs[1].Bold)
	assert.Equal(t, docx.CodeFont, intro.Runs[3].Font)
	assert.Equal(t, 20, intro.Runs[3].SizeHalfPts)

	assert.Equal(t, docx.StyleListBullet, data.Blocks[2].Style)
	assert.Equal(t, "item", data.Blocks[2].Text())
	assert.Equal(t, docx.StyleListNumber, data.Blocks[3].Style)
	assert.Equal(t, "first", data.Blocks[3].Text())

	code := data.Blocks[4]
	assert.Equal(t, "x := 1", code.Text())
	assert.Equal(t, docx.CodeFont, code.Runs[0].Font)
}

func TestConvertFull(t *testing.T) {
	md := strings.Join([]string{
		"# Head [link](http://x)",
		"Text with [site](https://example.com) and __strong__.",
		"",
		"| A | B |",
		"|---|---|",
		"| ✅ | 2 | 9 |",
		"---",
		"> quoted",
		"```",
		"a",
		"b",
		"```",
	}, "\n")

	data := convert(t, md, markdown.Full)
	require.Len(t, data.Blocks, 8)

	head := data.Blocks[0]
	assert.Equal(t, "Head link", head.Text())
	assert.Equal(t, 40, head.Runs[0].SizeHalfPts)
	assert.Equal(t, "000000", head.Runs[0].Color)

	para := data.Blocks[1]
	assert.Equal(t, "Text with site and strong.", para.Text())
	require.Len(t, para.Runs, 5)
	assert.Equal(t, "https://example.com", para.Runs[1].Link)
	assert.True(t, para.Runs[3].Bold)

	assert.Empty(t, data.Blocks[2].Runs)

	table := data.Blocks[3]
	assert.Equal(t, models.BlockTable, table.Kind)
	assert.Equal(t, [][]string{{"A", "B"}, {"✓", "2"}}, table.Rows)

	assert.Empty(t, data.Blocks[4].Runs)
	assert.Equal(t, strings.Repeat("_", 50), data.Blocks[5].Text())
	assert.Equal(t, docx.StyleIntenseQuote, data.Blocks[6].Style)
	assert.Equal(t, "quoted", data.Blocks[6].Text())

	code := data.Blocks[7]
	assert.Equal(t, "a\nb\n", code.Text())
	assert.Equal(t, 18, code.Runs[0].SizeHalfPts)
}

func TestConvertMissingFile(t *testing.T) {
	err := docx.Convert(filepath.Join(t.TempDir(), "nope.md"), filepath.Join(t.TempDir(), "out.docx"), markdown.Full)
	require.Error(t, err)
	assert.ErrorIs(t, err, officegen.ErrFileNotFound)
}

func TestConvertReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, docx.ConvertReader(strings.NewReader("# Hi\n\ntext"), &buf, markdown.Full))
	assert.Equal(t, "PK", buf.String()[:2])
}

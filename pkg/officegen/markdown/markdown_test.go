package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(blocks []Block) []Kind {
	var out []Kind
	for _, b := range blocks {
		out = append(out, b.Kind)
	}
	return out
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input    string
		expected Dialect
		wantErr  bool
	}{
		{"simple", Simple, false},
		{"FULL", Full, false},
		{"", Full, false},
		{"gfm", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "heading", Heading.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("# Title  \r\nbody\t\n\nlast"))
	require.NoError(t, err)
	assert.Equal(t, []string{"# Title", "body", "", "last"}, lines)
}

func TestClassifySimpleHeadings(t *testing.T) {
	tests := []struct {
		line  string
		level int
		text  string
	}{
		{"# One", 1, "One"},
		{"## Two ", 2, "Two"},
		{"### Three", 3, "Three"},
		{"#### Four", 4, "Four"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			blocks := Classify([]string{tt.line}, Simple)
			require.Len(t, blocks, 1)
			assert.Equal(t, Heading, blocks[0].Kind)
			assert.Equal(t, tt.level, blocks[0].Level)
			assert.Equal(t, tt.text, blocks[0].Text)
		})
	}
}

func TestClassifySimple(t *testing.T) {
	lines := []string{
		"# Solution",
		"",
		"Intro with **bold** text.",
		"- first",
		"  * second",
		"1. step one",
		"12. step twelve",
		"---",
		"```",
		"x = 1",
		"# not a heading",
		"```",
		"##### too deep",
		"#nospace",
	}

	blocks := Classify(lines, Simple)
	assert.Equal(t, []Kind{Heading, Paragraph, Bullet, Bullet, Numbered, Numbered, Empty, Code, Code}, kinds(blocks))
	assert.Equal(t, "first", blocks[2].Text)
	assert.Equal(t, "second", blocks[3].Text)
	assert.Equal(t, "step one", blocks[4].Text)
	assert.Equal(t, "step twelve", blocks[5].Text)
	assert.Equal(t, []string{"x = 1"}, blocks[7].Lines)
	assert.Equal(t, []string{"# not a heading"}, blocks[8].Lines)
}

func TestClassifyFull(t *testing.T) {
	lines := []string{
		"# Report [link](http://example.com)",
		"",
		"###### Six",
		"#nospace",
		"Plain paragraph.",
		"* star bullet",
		"+ plus bullet",
		"3.  third",
		"> quoted *text*",
		"***",
		"```go",
		"fmt.Println(1)",
		"",
		"```",
		"",
	}

	blocks := Classify(lines, Full)
	assert.Equal(t, []Kind{Heading, Empty, Heading, Paragraph, Bullet, Bullet, Numbered, Quote, Rule, Code, Empty}, kinds(blocks))
	assert.Equal(t, "Report link", blocks[0].Text)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, 6, blocks[2].Level)
	assert.Equal(t, "star bullet", blocks[4].Text)
	assert.Equal(t, "plus bullet", blocks[5].Text)
	assert.Equal(t, "third", blocks[6].Text)
	assert.Equal(t, "quoted *text*", blocks[7].Text)
	assert.Equal(t, []string{"fmt.Println(1)", ""}, blocks[9].Lines)
}

func TestClassifyFullLeadingBlankSkipped(t *testing.T) {
	blocks := Classify([]string{"", "text"}, Full)
	assert.Equal(t, []Kind{Paragraph}, kinds(blocks))
}

func TestClassifyFullUnterminatedFence(t *testing.T) {
	blocks := Classify([]string{"```", "a", "b"}, Full)
	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"a", "b"}, blocks[0].Lines)
}

func TestClassifyFullEmptyFence(t *testing.T) {
	blocks := Classify([]string{"```", "```", "after"}, Full)
	assert.Equal(t, []Kind{Paragraph}, kinds(blocks))
}

func TestClassifyFullTable(t *testing.T) {
	lines := []string{
		"| Feature | Status |",
		"|---------|--------|",
		"| Sync | ✅ done | extra |",
		"| Export | ❌ |",
		"| Share |",
		"after",
	}

	blocks := Classify(lines, Full)
	require.Equal(t, []Kind{Table, Empty, Paragraph}, kinds(blocks))

	tbl := blocks[0]
	assert.Equal(t, []string{"Feature", "Status"}, tbl.Header)
	assert.Equal(t, [][]string{
		{"Sync", "✓ done"},
		{"Export", "✗"},
		{"Share"},
	}, tbl.Rows)
}

func TestClassifyFullTableEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []Kind
	}{
		{"single pipe line consumed", []string{"a | b"}, nil},
		{"header and separator only", []string{"| a |", "|---|"}, []Kind{Empty}},
		{"warning symbol", []string{"| a |", "|---|", "| ⚠️ |"}, []Kind{Table, Empty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(Classify(tt.lines, Full)))
		})
	}

	blocks := Classify([]string{"| a |", "|---|", "| ⚠️ |"}, Full)
	assert.Equal(t, "⚠", blocks[0].Rows[0][0])
}

func TestSplitRow(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitRow("| a | b |"))
	assert.Equal(t, []string{"b"}, splitRow("a | b | c"))
	assert.Nil(t, splitRow("a | b"))
}

// Package markdown classifies Markdown lines into document blocks.
//
// It is a single-pass line classifier, not a Markdown parser: each line is
// matched against a fixed set of patterns in order and the first match wins.
// Two dialects are supported. Simple handles headings 1-4, flat lists, code
// fences and inline emphasis. Full adds tables, block quotes, rules, deeper
// headings and links.
package markdown

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Dialect selects the classification rules.
type Dialect string

const (
	Simple Dialect = "simple"
	Full   Dialect = "full"
)

// ParseDialect validates a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(s)) {
	case Simple:
		return Simple, nil
	case Full, "":
		return Full, nil
	}
	return "", fmt.Errorf("unknown markdown dialect %q (want simple or full)", s)
}

// Kind is the type of a block.
type Kind int

const (
	Paragraph Kind = iota
	Heading
	Bullet
	Numbered
	Quote
	Code
	Rule
	Table
	Empty
)

var kindNames = [...]string{"paragraph", "heading", "bullet", "numbered", "quote", "code", "rule", "table", "empty"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Block is one classified unit of output.
type Block struct {
	Kind Kind
	// Level is the heading level (1-6).
	Level int
	// Text is the line content with block markers removed.
	Text string
	// Lines holds code block lines.
	Lines []string
	// Header and Rows hold table cells.
	Header []string
	Rows   [][]string
}

var (
	numberedSimple = regexp.MustCompile(`^\d+\.\s`)
	numberedFull   = regexp.MustCompile(`^\d+\.\s+`)
	bulletFull     = regexp.MustCompile(`^[\*\-\+]\s+`)
	headingFull    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	quoteMarker    = regexp.MustCompile(`^>\s*`)
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
)

var cellSymbols = strings.NewReplacer("✅", "✓", "❌", "✗", "⚠️", "⚠")

// ReadLines reads r and returns its lines with trailing whitespace removed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r\n"))
	}
	return lines, sc.Err()
}

// Classify turns lines into blocks according to the dialect.
func Classify(lines []string, d Dialect) []Block {
	if d == Simple {
		return classifySimple(lines)
	}
	return classifyFull(lines)
}

func classifySimple(lines []string) []Block {
	var blocks []Block
	inCode := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "---" || trimmed == "***" || trimmed == "___":
			blocks = append(blocks, Block{Kind: Empty})
		case strings.HasPrefix(trimmed, "```"):
			inCode = !inCode
		case inCode:
			blocks = append(blocks, Block{Kind: Code, Lines: []string{line}})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: Heading, Level: 1, Text: strings.TrimSpace(line[2:])})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: Heading, Level: 2, Text: strings.TrimSpace(line[3:])})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: Heading, Level: 3, Text: strings.TrimSpace(line[4:])})
		case strings.HasPrefix(line, "#### "):
			blocks = append(blocks, Block{Kind: Heading, Level: 4, Text: strings.TrimSpace(line[5:])})
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Kind: Bullet, Text: trimmed[2:]})
		case numberedSimple.MatchString(trimmed):
			blocks = append(blocks, Block{Kind: Numbered, Text: numberedSimple.ReplaceAllString(trimmed, "")})
		case trimmed == "":
		case !strings.HasPrefix(line, "#"):
			blocks = append(blocks, Block{Kind: Paragraph, Text: line})
		}
	}

	return blocks
}

func classifyFull(lines []string) []Block {
	var blocks []Block
	inCode := false
	var code []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.HasPrefix(line, "```") {
			if inCode && len(code) > 0 {
				blocks = append(blocks, Block{Kind: Code, Lines: code})
				code = nil
			}
			inCode = !inCode
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			if m := headingFull.FindStringSubmatch(line); m != nil {
				text := linkPattern.ReplaceAllString(m[2], "$1")
				blocks = append(blocks, Block{Kind: Heading, Level: len(m[1]), Text: text})
			}
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "***"):
			blocks = append(blocks, Block{Kind: Rule})
		case strings.Contains(line, "|"):
			rows := []string{line}
			for i+1 < len(lines) && strings.Contains(lines[i+1], "|") {
				i++
				rows = append(rows, lines[i])
			}
			if len(rows) >= 2 {
				if tbl, ok := parseTable(rows); ok {
					blocks = append(blocks, tbl)
				}
				blocks = append(blocks, Block{Kind: Empty})
			}
		case bulletFull.MatchString(line):
			blocks = append(blocks, Block{Kind: Bullet, Text: bulletFull.ReplaceAllString(line, "")})
		case numberedFull.MatchString(line):
			blocks = append(blocks, Block{Kind: Numbered, Text: numberedFull.ReplaceAllString(line, "")})
		case strings.HasPrefix(line, ">"):
			blocks = append(blocks, Block{Kind: Quote, Text: quoteMarker.ReplaceAllString(line, "")})
		case strings.TrimSpace(line) == "":
			if i > 0 {
				blocks = append(blocks, Block{Kind: Empty})
			}
		default:
			blocks = append(blocks, Block{Kind: Paragraph, Text: line})
		}
	}

	// An unterminated fence still yields its lines.
	if inCode && len(code) > 0 {
		blocks = append(blocks, Block{Kind: Code, Lines: code})
	}

	return blocks
}

// parseTable reads a header row, skips the separator row and keeps every
// following row with at least one cell. Rows are cut to the header width.
func parseTable(rows []string) (Block, bool) {
	header := splitRow(rows[0])
	if len(header) == 0 {
		return Block{}, false
	}

	var data [][]string
	for _, row := range rows[2:] {
		cells := splitRow(row)
		if len(cells) == 0 {
			continue
		}
		if len(cells) > len(header) {
			cells = cells[:len(header)]
		}
		for j := range cells {
			cells[j] = cellSymbols.Replace(cells[j])
		}
		data = append(data, cells)
	}
	if len(data) == 0 {
		return Block{}, false
	}

	return Block{Kind: Table, Header: header, Rows: data}, true
}

// splitRow splits "| a | b |" into ["a", "b"]. The text before the first
// pipe and after the last pipe is discarded.
func splitRow(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) < 3 {
		return nil
	}
	cells := make([]string, 0, len(parts)-2)
	for _, p := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

package docx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen"
	"github.com/ukaji3/officegen-go/pkg/officegen/markdown"
)

// Formatting applied by the converters.
const (
	CodeFont         = "Courier New"
	codeSizeInline   = 10
	codeSizeBlock    = 9
	ruleText         = "__________________________________________________"
	headingColorFull = "000000"
)

// fullHeadingSizes are the explicit run sizes of full-dialect headings 1-3.
var fullHeadingSizes = map[int]float64{1: 20, 2: 16, 3: 14}

// Convert reads the Markdown file src and writes a .docx to dst.
func Convert(src, dst string, d markdown.Dialect) error {
	f, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", officegen.ErrFileNotFound, src)
		}
		return err
	}
	defer f.Close()

	doc, err := FromMarkdown(f, d)
	if err != nil {
		return officegen.NewGenerationError(filepath.Base(src), "document", err)
	}
	doc.Title = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	if err := doc.Save(dst); err != nil {
		return officegen.NewGenerationError(filepath.Base(dst), "save", err)
	}
	return nil
}

// ConvertReader converts Markdown read from r and writes the .docx to w.
func ConvertReader(r io.Reader, w io.Writer, d markdown.Dialect) error {
	doc, err := FromMarkdown(r, d)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// FromMarkdown classifies the Markdown read from r and builds a document.
func FromMarkdown(r io.Reader, d markdown.Dialect) (*Document, error) {
	lines, err := markdown.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return FromBlocks(markdown.Classify(lines, d), d), nil
}

// FromBlocks renders classified blocks in the given dialect.
func FromBlocks(blocks []markdown.Block, d markdown.Dialect) *Document {
	doc := New()
	for _, b := range blocks {
		if d == markdown.Simple {
			addSimple(doc, b)
		} else {
			addFull(doc, b)
		}
	}
	return doc
}

func addSimple(doc *Document, b markdown.Block) {
	switch b.Kind {
	case markdown.Empty:
		doc.AddParagraph("")
	case markdown.Code:
		p := doc.AddParagraph(StyleNormal)
		for _, line := range b.Lines {
			if line != "" {
				p.AddRun(Run{Text: line, Font: CodeFont, SizePt: codeSizeInline})
			}
		}
	case markdown.Heading:
		doc.AddHeading(b.Text, b.Level)
	case markdown.Bullet:
		doc.AddParagraph(StyleListBullet, plain(b.Text)...)
	case markdown.Numbered:
		doc.AddParagraph(StyleListNumber, plain(b.Text)...)
	case markdown.Paragraph:
		doc.AddParagraph("", runs(b.Text, markdown.Simple)...)
	}
}

func addFull(doc *Document, b markdown.Block) {
	switch b.Kind {
	case markdown.Code:
		p := doc.AddParagraph("")
		for _, line := range b.Lines {
			p.AddRun(Run{Text: line + "\n", Font: CodeFont, SizePt: codeSizeBlock})
		}
	case markdown.Heading:
		h := doc.AddHeading(b.Text, b.Level)
		if size, ok := fullHeadingSizes[b.Level]; ok {
			h.Runs[0].SizePt = size
			h.Runs[0].Color = headingColorFull
		}
	case markdown.Rule:
		doc.AddParagraph("", Run{Text: ruleText})
	case markdown.Table:
		doc.AddTable(StyleLightGrid, b.Header, b.Rows)
	case markdown.Bullet:
		doc.AddParagraph(StyleListBullet, runs(b.Text, markdown.Full)...)
	case markdown.Numbered:
		doc.AddParagraph(StyleListNumber, runs(b.Text, markdown.Full)...)
	case markdown.Quote:
		doc.AddParagraph(StyleIntenseQuote, runs(b.Text, markdown.Full)...)
	case markdown.Empty:
		doc.AddParagraph("")
	case markdown.Paragraph:
		doc.AddParagraph("", runs(b.Text, markdown.Full)...)
	}
}

func plain(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text}}
}

func runs(text string, d markdown.Dialect) []Run {
	spans := markdown.SplitInline(text, d)
	out := make([]Run, 0, len(spans))
	for _, s := range spans {
		r := Run{Text: s.Text, Bold: s.Bold, Italic: s.Italic, Link: s.Link}
		if s.Code {
			r.Font = CodeFont
			r.SizePt = codeSizeInline
		}
		out = append(out, r)
	}
	return out
}

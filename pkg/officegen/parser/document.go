package parser

import (
	"archive/zip"
	"encoding/xml"
	"path"
	"strconv"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/models"
)

// ExtractDocument reads the body of a docx file into paragraph and table
// blocks. Hyperlink targets are resolved through the document relationships.
func ExtractDocument(docxPath string) (*models.DocumentData, error) {
	r, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	body, err := readZipFile(&r.Reader, "word/document.xml")
	if err != nil {
		return nil, err
	}

	links := make(map[string]string)
	if relsXML, err := readZipFile(&r.Reader, "word/_rels/document.xml.rels"); err == nil {
		for id, rel := range parseRelationships(relsXML) {
			if strings.HasSuffix(rel.Type, "/hyperlink") {
				links[id] = rel.Target
			}
		}
	}

	return &models.DocumentData{
		DocName: strings.TrimSuffix(path.Base(docxPath), path.Ext(docxPath)),
		Blocks:  parseDocumentXML(body, links),
	}, nil
}

func parseDocumentXML(data []byte, links map[string]string) []models.Block {
	var blocks []models.Block

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "p":
			blocks = append(blocks, parseParagraph(decoder, links))
		case "tbl":
			blocks = append(blocks, models.Block{Kind: models.BlockTable, Rows: parseWordTable(decoder)})
		}
	}

	return blocks
}

// parseParagraph consumes a w:p element.
func parseParagraph(decoder *xml.Decoder, links map[string]string) models.Block {
	block := models.Block{Kind: models.BlockParagraph}
	var link string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "pStyle":
				block.Style = attr(t, "val")
			case "hyperlink":
				link = links[attr(t, "id")]
			case "r":
				block.Runs = append(block.Runs, parseRun(decoder, link))
				depth--
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "hyperlink" {
				link = ""
			}
		}
	}

	return block
}

// parseRun consumes a w:r element.
func parseRun(decoder *xml.Decoder, link string) models.Run {
	run := models.Run{Link: link}
	var text strings.Builder
	depth := 1

	on := func(se xml.StartElement) bool {
		v := attr(se, "val")
		return v != "0" && v != "false"
	}

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "rFonts":
				run.Font = attr(t, "ascii")
			case "b":
				run.Bold = on(t)
			case "i":
				run.Italic = on(t)
			case "u":
				run.Underline = attr(t, "val") != "none"
			case "sz":
				run.SizeHalfPts, _ = strconv.Atoi(attr(t, "val"))
			case "color":
				run.Color = attr(t, "val")
			case "t":
				if txt, err := readElementText(decoder); err == nil {
					text.WriteString(txt)
				}
				depth--
			case "br":
				text.WriteString("\n")
			case "tab":
				text.WriteString("\t")
			}
		case xml.EndElement:
			depth--
		}
	}

	run.Text = text.String()
	return run
}

// parseWordTable consumes a w:tbl element and returns cell texts.
func parseWordTable(decoder *xml.Decoder) [][]string {
	var rows [][]string
	var cell []string
	var para strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tr":
				rows = append(rows, nil)
			case "tc":
				cell = cell[:0]
			case "p":
				para.Reset()
			case "t":
				if txt, err := readElementText(decoder); err == nil {
					para.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "p":
				cell = append(cell, para.String())
			case "tc":
				if len(rows) > 0 {
					last := len(rows) - 1
					rows[last] = append(rows[last], strings.Join(cell, "\n"))
				}
			}
		}
	}

	return rows
}

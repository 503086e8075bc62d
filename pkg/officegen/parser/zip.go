package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// relationship is one entry of a .rels part.
type relationship struct {
	Type   string
	Target string
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("part %s not found", name)
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// resolveRelativePath resolves a relationship target against the directory
// of the part that owns the relationship.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// parseRelationships maps relationship id to type and target.
func parseRelationships(data []byte) map[string]relationship {
	result := make(map[string]relationship)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			id := attr(se, "Id")
			if id != "" {
				result[id] = relationship{Type: attr(se, "Type"), Target: attr(se, "Target")}
			}
		}
	}

	return result
}

// parseWorkbookSheets returns sheet names and their relationship ids in
// workbook order.
func parseWorkbookSheets(data []byte) (names []string, rIDs map[string]string) {
	rIDs = make(map[string]string) // sheet name -> rId
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				names = append(names, name)
				rIDs[name] = rID
			}
		}
	}

	return names, rIDs
}

// worksheetPaths maps sheet name to its worksheet part.
func worksheetPaths(r *zip.Reader) (map[string]string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}

	names, rIDs := parseWorkbookSheets(workbookXML)
	rels := parseRelationships(relsXML)

	result := make(map[string]string)
	for _, name := range names {
		rel, ok := rels[rIDs[name]]
		if !ok || !strings.Contains(strings.ToLower(rel.Type), "worksheet") {
			continue
		}
		result[name] = resolveRelativePath(rel.Target, "xl")
	}
	return result, nil
}

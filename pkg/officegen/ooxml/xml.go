package ooxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Escape returns s with XML special characters escaped. Newlines are kept
// literal; callers split text that needs explicit breaks.
func Escape(s string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		text := strings.TrimSuffix(line, "\n")
		_ = xml.EscapeText(&b, []byte(text))
		if len(text) != len(line) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Relationships builds a .rels part. IDs are assigned as rId1, rId2, ...
type Relationships struct {
	items []Relationship
}

// Add appends an internal relationship and returns its ID.
func (r *Relationships) Add(relType, target string) string {
	return r.add(relType, target, false)
}

// AddExternal appends an external (TargetMode="External") relationship.
func (r *Relationships) AddExternal(relType, target string) string {
	return r.add(relType, target, true)
}

func (r *Relationships) add(relType, target string, external bool) string {
	id := fmt.Sprintf("rId%d", len(r.items)+1)
	r.items = append(r.items, Relationship{ID: id, Type: relType, Target: target, External: external})
	return id
}

// Len returns the number of relationships.
func (r *Relationships) Len() int {
	return len(r.items)
}

// Bytes renders the relationships part.
func (r *Relationships) Bytes() []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, rel := range r.items {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"`, rel.ID, Escape(rel.Type), Escape(rel.Target))
		if rel.External {
			b.WriteString(` TargetMode="External"`)
		}
		b.WriteString(`/>`)
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// RelsPath returns the relationships part name for partName,
// e.g. "ppt/slides/slide1.xml" -> "ppt/slides/_rels/slide1.xml.rels".
func RelsPath(partName string) string {
	partName = strings.TrimPrefix(partName, "/")
	dir, file := "", partName
	if i := strings.LastIndex(partName, "/"); i >= 0 {
		dir, file = partName[:i+1], partName[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

// CoreProperties renders a docProps/core.xml part with the given title.
func CoreProperties(title, creator string) []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if title != "" {
		fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, Escape(title))
	}
	if creator != "" {
		fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, Escape(creator))
	}
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

// Package ooxml writes Open Packaging Conventions containers (the zip layout
// shared by .docx, .pptx and .xlsx files).
package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// Header is the XML declaration every part starts with.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Content types of the parts written by this module.
const (
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"
	ContentTypeCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"

	ContentTypeWordDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeWordStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ContentTypeWordNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"

	ContentTypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ContentTypeSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ContentTypeSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ContentTypeSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ContentTypePresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
)

// Relationship types.
const (
	RelOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RelHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
)

type part struct {
	name string
	data []byte
}

// Package is an in-memory OPC container. Parts are written in insertion
// order after [Content_Types].xml.
type Package struct {
	parts     []part
	defaults  map[string]string
	overrides map[string]string
}

// NewPackage returns an empty package with the rels and xml defaults registered.
func NewPackage() *Package {
	return &Package{
		defaults: map[string]string{
			"rels": ContentTypeRelationships,
			"xml":  ContentTypeXML,
		},
		overrides: make(map[string]string),
	}
}

// AddPart adds a part. An empty contentType relies on the extension default.
// Part names are given without the leading slash.
func (p *Package) AddPart(name, contentType string, data []byte) {
	name = strings.TrimPrefix(name, "/")
	p.parts = append(p.parts, part{name: name, data: data})
	if contentType != "" {
		p.overrides["/"+name] = contentType
	}
}

// PartNames returns the part names in insertion order.
func (p *Package) PartNames() []string {
	names := make([]string, len(p.parts))
	for i, pt := range p.parts {
		names[i] = pt.name
	}
	return names
}

// Write streams the package as a zip archive to w.
func (p *Package) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := writeZipEntry(zw, "[Content_Types].xml", p.contentTypes()); err != nil {
		return err
	}
	for _, pt := range p.parts {
		if err := writeZipEntry(zw, pt.name, pt.data); err != nil {
			return err
		}
	}

	return zw.Close()
}

// Bytes renders the package into memory.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the package to path atomically.
func (p *Package) Save(filename string) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	return SaveFile(filename, data)
}

// SaveFile writes data to filename atomically.
func SaveFile(filename string, data []byte) error {
	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path.Base(filename), err)
	}
	return nil
}

func (p *Package) contentTypes() []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)

	exts := make([]string, 0, len(p.defaults))
	for ext := range p.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, Escape(ext), Escape(p.defaults[ext]))
	}

	// Overrides follow part order so the output is deterministic.
	for _, pt := range p.parts {
		if ct, ok := p.overrides["/"+pt.name]; ok {
			fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="%s"/>`, Escape(pt.name), Escape(ct))
		}
	}

	b.WriteString(`</Types>`)
	return []byte(b.String())
}

func writeZipEntry(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = fw.Write(data)
	return err
}

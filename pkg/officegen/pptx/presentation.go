// Package pptx writes PresentationML (.pptx) files: slides on a blank layout
// holding text boxes, autoshapes, straight connectors and tables.
package pptx

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/ooxml"
)

const xmlHeader = ooxml.Header

const nsDecl = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

const groupProps = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

// Default slide size: 13.333in x 7.5in (16:9).
var (
	DefaultWidth  = Inches(13.333)
	DefaultHeight = Inches(7.5)
)

// Presentation is an ordered list of slides.
type Presentation struct {
	Width  EMU
	Height EMU
	Title  string
	slides []*Slide
}

// New returns an empty 16:9 presentation.
func New() *Presentation {
	return &Presentation{Width: DefaultWidth, Height: DefaultHeight}
}

// AddSlide appends a blank slide.
func (p *Presentation) AddSlide() *Slide {
	s := newSlide()
	p.slides = append(p.slides, s)
	return s
}

// Slides returns the slides in order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// Package assembles the OPC package.
func (p *Presentation) Package() *ooxml.Package {
	pkg := ooxml.NewPackage()

	var rootRels ooxml.Relationships
	rootRels.Add(ooxml.RelOfficeDocument, "ppt/presentation.xml")
	rootRels.Add(ooxml.RelCoreProps, "docProps/core.xml")
	pkg.AddPart("_rels/.rels", "", rootRels.Bytes())
	pkg.AddPart("docProps/core.xml", ooxml.ContentTypeCoreProps, ooxml.CoreProperties(p.Title, "officegen"))

	var presRels ooxml.Relationships
	masterRel := presRels.Add(ooxml.RelSlideMaster, "slideMasters/slideMaster1.xml")
	presRels.Add(ooxml.RelTheme, "theme/theme1.xml")
	presRels.Add(ooxml.RelPresProps, "presProps.xml")
	slideRels := make([]string, len(p.slides))
	for i := range p.slides {
		slideRels[i] = presRels.Add(ooxml.RelSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}

	pkg.AddPart("ppt/presentation.xml", ooxml.ContentTypePresentation, p.presentationXML(masterRel, slideRels))
	pkg.AddPart("ppt/_rels/presentation.xml.rels", "", presRels.Bytes())
	pkg.AddPart("ppt/presProps.xml", ooxml.ContentTypePresProps, []byte(presPropsXML))

	var masterRels ooxml.Relationships
	masterRels.Add(ooxml.RelSlideLayout, "../slideLayouts/slideLayout1.xml")
	masterRels.Add(ooxml.RelTheme, "../theme/theme1.xml")
	pkg.AddPart("ppt/slideMasters/slideMaster1.xml", ooxml.ContentTypeSlideMaster, []byte(slideMasterXML))
	pkg.AddPart("ppt/slideMasters/_rels/slideMaster1.xml.rels", "", masterRels.Bytes())

	var layoutRels ooxml.Relationships
	layoutRels.Add(ooxml.RelSlideMaster, "../slideMasters/slideMaster1.xml")
	pkg.AddPart("ppt/slideLayouts/slideLayout1.xml", ooxml.ContentTypeSlideLayout, []byte(slideLayoutXML))
	pkg.AddPart("ppt/slideLayouts/_rels/slideLayout1.xml.rels", "", layoutRels.Bytes())

	pkg.AddPart("ppt/theme/theme1.xml", ooxml.ContentTypeTheme, []byte(themeXML))

	for i, s := range p.slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		var rels ooxml.Relationships
		rels.Add(ooxml.RelSlideLayout, "../slideLayouts/slideLayout1.xml")
		pkg.AddPart(name, ooxml.ContentTypeSlide, s.xml())
		pkg.AddPart(ooxml.RelsPath(name), "", rels.Bytes())
	}

	return pkg
}

// WriteTo writes the .pptx archive to w.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	data, err := p.Package().Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Save writes the presentation to path atomically.
func (p *Presentation) Save(path string) error {
	return p.Package().Save(path)
}

func (p *Presentation) presentationXML(masterRel string, slideRels []string) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + nsDecl + ` saveSubsetFonts="1">`)
	fmt.Fprintf(&b, `<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="%s"/></p:sldMasterIdLst>`, masterRel)
	if len(slideRels) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i, rel := range slideRels {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="%s"/>`, 256+i, rel)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>`, p.Width, p.Height)
	b.WriteString(`</p:presentation>`)
	return []byte(b.String())
}

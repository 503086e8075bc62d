package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/models"
)

// PresetGeomMap maps DrawingML preset geometry names to type labels.
var PresetGeomMap = map[string]string{
	"rect":               "AutoShape-Rectangle",
	"roundRect":          "AutoShape-RoundedRectangle",
	"ellipse":            "AutoShape-Oval",
	"diamond":            "AutoShape-Diamond",
	"triangle":           "AutoShape-IsoscelesTriangle",
	"rightArrow":         "AutoShape-RightArrow",
	"leftArrow":          "AutoShape-LeftArrow",
	"chevron":            "AutoShape-Chevron",
	"straightConnector1": "Line",
	"bentConnector3":     "AutoShape-Connector",
	"curvedConnector3":   "AutoShape-Connector",
	"line":               "Line",
}

// ArrowHeadMap maps DrawingML line end types to arrow style numbers.
var ArrowHeadMap = map[string]int{
	"none":     1,
	"triangle": 2,
	"stealth":  3,
	"diamond":  4,
	"oval":     5,
	"arrow":    2,
}

// ExtractSlides reads every slide of a pptx file in presentation order.
// Slide size is reported in pixels. In light mode slides carry no shapes.
func ExtractSlides(pptxPath string, mode string) (*models.DeckData, error) {
	r, err := zip.OpenReader(pptxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	presXML, err := readZipFile(&r.Reader, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	relsXML, err := readZipFile(&r.Reader, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}

	slideIDs, cx, cy := parsePresentation(presXML)
	rels := parseRelationships(relsXML)

	deck := &models.DeckData{
		DeckName:    strings.TrimSuffix(path.Base(pptxPath), path.Ext(pptxPath)),
		SlideWidth:  EMUToPixels(cx),
		SlideHeight: EMUToPixels(cy),
	}

	for i, rID := range slideIDs {
		rel, ok := rels[rID]
		if !ok {
			return nil, fmt.Errorf("slide relationship %s not found", rID)
		}
		data, err := readZipFile(&r.Reader, resolveRelativePath(rel.Target, "ppt"))
		if err != nil {
			return nil, err
		}
		slide := parseSlideXML(data, mode)
		slide.Index = i + 1
		deck.Slides = append(deck.Slides, slide)
	}

	return deck, nil
}

// parsePresentation returns the slide relationship ids in order and the
// slide size in EMU.
func parsePresentation(data []byte) (rIDs []string, cx, cy int64) {
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
		case "sldId":
			// The numeric id and r:id share the local name; only r:id is namespaced.
			for _, a := range se.Attr {
				if a.Name.Local == "id" && a.Name.Space != "" {
					rIDs = append(rIDs, a.Value)
				}
			}
		case "sldSz":
			cx, _ = strconv.ParseInt(attr(se, "cx"), 10, 64)
			cy, _ = strconv.ParseInt(attr(se, "cy"), 10, 64)
		}
	}
	return rIDs, cx, cy
}

// parseSlideXML parses one slide part.
func parseSlideXML(data []byte, mode string) models.SlideData {
	var slide models.SlideData

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
		case "bg":
			slide.Background = parseFillColor(decoder)
		case "spTree":
			if mode != "light" {
				slide.Shapes = parseShapeTree(decoder, mode)
			}
		}
	}

	return slide
}

// parseShapeTree parses the children of spTree or grpSp.
func parseShapeTree(decoder *xml.Decoder, mode string) []models.Shape {
	var shapes []models.Shape
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
			case "sp", "cxnSp", "graphicFrame":
				if shape := parseShapeElement(decoder, t, mode); shape != nil {
					shapes = append(shapes, *shape)
				}
				depth--
			case "grpSp":
				shapes = append(shapes, parseShapeTree(decoder, mode)...)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return shapes
}

// spProps holds what is read from a shape's spPr element.
type spProps struct {
	left, top, width, height int
	flipH, flipV             bool
	rotation                 *float64
	prst                     string
	fill                     string
	beginArrow, endArrow     *int
}

// parseShapeElement parses an sp, cxnSp or graphicFrame element.
func parseShapeElement(decoder *xml.Decoder, start xml.StartElement, mode string) *models.Shape {
	var (
		props     spProps
		text      string
		cells     [][]string
		shapeID   string
		shapeName string
		isTextBox bool
	)
	isConnector := start.Name.Local == "cxnSp"
	isTable := start.Name.Local == "graphicFrame"

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
			case "cNvPr":
				shapeID, shapeName = attr(t, "id"), attr(t, "name")
			case "cNvSpPr":
				isTextBox = attr(t, "txBox") == "1"
			case "spPr":
				props = parseSpPr(decoder)
				depth--
			case "xfrm":
				// graphicFrame carries its transform outside spPr.
				props.left, props.top, props.width, props.height, props.rotation, props.flipH, props.flipV = parseXfrm(decoder, t)
				depth--
			case "txBody":
				text = parseTextBody(decoder)
				depth--
			case "tbl":
				cells = parseTableGrid(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	typeLabel := "Unknown"
	switch {
	case isTable:
		typeLabel = "Table"
	case isTextBox:
		typeLabel = "TextBox"
	case props.prst != "":
		if label, ok := PresetGeomMap[props.prst]; ok {
			typeLabel = label
		} else {
			typeLabel = "AutoShape-" + props.prst
		}
	case shapeName != "":
		typeLabel = shapeName
	}

	isConnector = isConnector || isConnectorShape(props.prst, typeLabel)

	if !shouldIncludeShape(text, typeLabel, isConnector, len(cells) > 0, mode) {
		return nil
	}

	shape := &models.Shape{
		Name:     shapeName,
		Text:     text,
		L:        props.left,
		T:        props.top,
		Type:     typeLabel,
		Fill:     props.fill,
		Rotation: props.rotation,
		Cells:    cells,
	}
	if id, err := strconv.Atoi(shapeID); err == nil {
		shape.ID = &id
	}

	if mode == "verbose" {
		w, h := props.width, props.height
		shape.W = &w
		shape.H = &h
	}

	if isConnector {
		dx, dy := props.width, props.height
		if props.flipH {
			dx = -dx
		}
		if props.flipV {
			dy = -dy
		}
		shape.Direction = computeDirection(dx, dy)
		shape.BeginArrowStyle = props.beginArrow
		shape.EndArrowStyle = props.endArrow
	}

	return shape
}

// parseSpPr parses shape properties. Only a solidFill that is a direct
// child of spPr is reported as the shape fill.
func parseSpPr(decoder *xml.Decoder) spProps {
	var props spProps
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
			case "xfrm":
				props.left, props.top, props.width, props.height, props.rotation, props.flipH, props.flipV = parseXfrm(decoder, t)
				depth--
			case "prstGeom":
				props.prst = attr(t, "prst")
			case "solidFill":
				if depth == 2 {
					props.fill = parseFillColor(decoder)
					depth--
				}
			case "ln":
				props.beginArrow, props.endArrow = parseLineArrows(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return props
}

// parseFillColor returns the first srgbClr value inside the current element
// and consumes the element.
func parseFillColor(decoder *xml.Decoder) string {
	var color string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "srgbClr" && color == "" {
				color = attr(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return color
}

// parseXfrm parses xfrm element for position, size and flips.
func parseXfrm(decoder *xml.Decoder, start xml.StartElement) (left, top, width, height int, rotation *float64, flipH, flipV bool) {
	if rotEmu, err := strconv.ParseInt(attr(start, "rot"), 10, 64); err == nil {
		rotDeg := float64(rotEmu) / 60000.0
		if math.Abs(rotDeg) >= 1e-6 {
			rotation = &rotDeg
		}
	}
	flipH = attr(start, "flipH") == "1"
	flipV = attr(start, "flipV") == "1"

	pixels := func(se xml.StartElement, name string) int {
		v, _ := strconv.ParseInt(attr(se, name), 10, 64)
		return EMUToPixels(v)
	}

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
			case "off":
				left, top = pixels(t, "x"), pixels(t, "y")
			case "ext":
				width, height = pixels(t, "cx"), pixels(t, "cy")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseLineArrows parses line element for arrow styles.
func parseLineArrows(decoder *xml.Decoder) (beginStyle, endStyle *int) {
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
			case "headEnd":
				if style, ok := ArrowHeadMap[attr(t, "type")]; ok {
					beginStyle = &style
				}
			case "tailEnd":
				if style, ok := ArrowHeadMap[attr(t, "type")]; ok {
					endStyle = &style
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseTextBody returns the text of a txBody, paragraphs joined by "\n".
func parseTextBody(decoder *xml.Decoder) string {
	var paragraphs []string
	var current strings.Builder
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
			case "p":
				current.Reset()
			case "t":
				if txt, err := readElementText(decoder); err == nil {
					current.WriteString(txt)
				}
				depth--
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "p" {
				paragraphs = append(paragraphs, current.String())
			}
		}
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n"))
}

// parseTableGrid returns cell texts of an a:tbl element row by row.
func parseTableGrid(decoder *xml.Decoder) [][]string {
	var rows [][]string
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
			case "txBody":
				if len(rows) > 0 {
					last := len(rows) - 1
					rows[last] = append(rows[last], parseTextBody(decoder))
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return rows
}

// computeDirection computes compass direction from connector dimensions.
// Positive dy points down the slide.
func computeDirection(dx, dy int) string {
	if dx == 0 && dy == 0 {
		return ""
	}

	angle := math.Atan2(float64(-dy), float64(dx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	switch {
	case angle >= 337.5 || angle < 22.5:
		return "E"
	case angle < 67.5:
		return "NE"
	case angle < 112.5:
		return "N"
	case angle < 157.5:
		return "NW"
	case angle < 202.5:
		return "W"
	case angle < 247.5:
		return "SW"
	case angle < 292.5:
		return "S"
	default:
		return "SE"
	}
}

// isConnectorShape checks if a shape is a connector or line.
func isConnectorShape(prst, typeLabel string) bool {
	lower := strings.ToLower(prst)
	if strings.Contains(lower, "connector") || lower == "line" {
		return true
	}
	return strings.Contains(typeLabel, "Line") || strings.Contains(typeLabel, "Connector")
}

// shouldIncludeShape determines if a shape should be included based on mode.
func shouldIncludeShape(text, typeLabel string, isConnector, hasCells bool, mode string) bool {
	switch mode {
	case "light":
		return false
	case "verbose":
		return true
	}
	// standard: shapes that carry content or express flow
	return text != "" || hasCells || isConnector || strings.Contains(typeLabel, "Arrow")
}

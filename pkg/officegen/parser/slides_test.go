package parser

import (
	"testing"
)

func TestComputeDirection(t *testing.T) {
	tests := []struct {
		dx       int
		dy       int
		expected string
	}{
		{100, 0, "E"},
		{0, -100, "N"},
		{0, 100, "S"},
		{-100, 0, "W"},
		{100, -100, "NE"},
		{100, 100, "SE"},
		{-100, 100, "SW"},
		{-100, -100, "NW"},
		{0, 0, ""},
	}

	for _, tt := range tests {
		result := computeDirection(tt.dx, tt.dy)
		if result != tt.expected {
			t.Errorf("computeDirection(%d, %d) = %q, expected %q",
				tt.dx, tt.dy, result, tt.expected)
		}
	}
}

func TestIsConnectorShape(t *testing.T) {
	tests := []struct {
		prst      string
		typeLabel string
		expected  bool
	}{
		{"straightConnector1", "Line", true},
		{"bentConnector3", "AutoShape-Connector", true},
		{"line", "Line", true},
		{"rect", "AutoShape-Rectangle", false},
		{"roundRect", "AutoShape-RoundedRectangle", false},
		{"", "Line", true},
		{"", "TextBox", false},
	}

	for _, tt := range tests {
		result := isConnectorShape(tt.prst, tt.typeLabel)
		if result != tt.expected {
			t.Errorf("isConnectorShape(%q, %q) = %v, expected %v",
				tt.prst, tt.typeLabel, result, tt.expected)
		}
	}
}

func TestShouldIncludeShape(t *testing.T) {
	tests := []struct {
		text        string
		typeLabel   string
		isConnector bool
		hasCells    bool
		mode        string
		expected    bool
	}{
		{"text", "AutoShape", false, false, "light", false},
		{"", "Line", true, false, "light", false},
		{"", "AutoShape", false, false, "verbose", true},
		{"text", "AutoShape", false, false, "verbose", true},
		{"text", "AutoShape", false, false, "standard", true},
		{"", "Line", true, false, "standard", true},
		{"", "AutoShape", false, false, "standard", false},
		{"", "AutoShape-RightArrow", false, false, "standard", true},
		{"", "Table", false, true, "standard", true},
	}

	for _, tt := range tests {
		result := shouldIncludeShape(tt.text, tt.typeLabel, tt.isConnector, tt.hasCells, tt.mode)
		if result != tt.expected {
			t.Errorf("shouldIncludeShape(%q, %q, %v, %v, %q) = %v, expected %v",
				tt.text, tt.typeLabel, tt.isConnector, tt.hasCells, tt.mode, result, tt.expected)
		}
	}
}

func TestParseSlideXML(t *testing.T) {
	data := []byte(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld>` +
		`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="000000"/></a:solidFill></p:bgPr></p:bg>` +
		`<p:spTree>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Rounded Rectangle 1"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr><a:xfrm rot="5400000"><a:off x="9525" y="19050"/><a:ext cx="95250" cy="47625"/></a:xfrm>` +
		`<a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom>` +
		`<a:solidFill><a:srgbClr val="A78BFA"/></a:solidFill>` +
		`<a:ln><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill></a:ln></p:spPr>` +
		`<p:txBody><a:bodyPr/><a:p><a:r><a:rPr><a:solidFill><a:srgbClr val="111111"/></a:solidFill></a:rPr>` +
		`<a:t>Hello</a:t></a:r></a:p><a:p><a:r><a:t>World</a:t></a:r></a:p></p:txBody></p:sp>` +
		`<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="3" name="Straight Connector 2"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr>` +
		`<p:spPr><a:xfrm flipV="1"><a:off x="0" y="0"/><a:ext cx="95250" cy="95250"/></a:xfrm>` +
		`<a:prstGeom prst="line"><a:avLst/></a:prstGeom><a:ln><a:tailEnd type="triangle"/></a:ln></p:spPr></p:cxnSp>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="4" name="Rectangle 3"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:sp>` +
		`</p:spTree></p:cSld></p:sld>`)

	slide := parseSlideXML(data, "standard")
	if slide.Background != "000000" {
		t.Errorf("Background = %q", slide.Background)
	}
	if len(slide.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d: %+v", len(slide.Shapes), slide.Shapes)
	}

	box := slide.Shapes[0]
	if box.Text != "Hello\nWorld" {
		t.Errorf("Text = %q", box.Text)
	}
	if box.Fill != "A78BFA" {
		t.Errorf("Fill = %q", box.Fill)
	}
	if box.Type != "AutoShape-RoundedRectangle" {
		t.Errorf("Type = %q", box.Type)
	}
	if box.L != 1 || box.T != 2 {
		t.Errorf("Position = (%d, %d)", box.L, box.T)
	}
	if box.Rotation == nil || *box.Rotation != 90 {
		t.Errorf("Rotation = %v", box.Rotation)
	}
	if box.ID == nil || *box.ID != 2 {
		t.Errorf("ID = %v", box.ID)
	}
	if box.W != nil {
		t.Errorf("Expected no width in standard mode")
	}

	line := slide.Shapes[1]
	if line.Type != "Line" || line.Direction != "NE" {
		t.Errorf("Connector = %+v", line)
	}
	if line.EndArrowStyle == nil || *line.EndArrowStyle != 2 {
		t.Errorf("EndArrowStyle = %v", line.EndArrowStyle)
	}

	verbose := parseSlideXML(data, "verbose")
	if len(verbose.Shapes) != 3 {
		t.Fatalf("Expected 3 shapes in verbose mode, got %d", len(verbose.Shapes))
	}
	if w := verbose.Shapes[0].W; w == nil || *w != 10 {
		t.Errorf("W = %v", w)
	}

	light := parseSlideXML(data, "light")
	if light.Background != "000000" || len(light.Shapes) != 0 {
		t.Errorf("Light slide = %+v", light)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"slides/slide1.xml", "ppt", "ppt/slides/slide1.xml"},
		{"../slideLayouts/slideLayout1.xml", "ppt/slides", "ppt/slideLayouts/slideLayout1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"worksheets/sheet2.xml", "xl", "xl/worksheets/sheet2.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

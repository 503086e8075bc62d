package deck

import (
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

// Layout constants shared by the decks.
var (
	MarginX   = pptx.Inches(0.6)
	MarginTop = pptx.Inches(0.55)
	GapCol    = pptx.Inches(0.6)
)

// frac returns f times e.
func frac(e pptx.EMU, f float64) pptx.EMU {
	return pptx.EMU(float64(e) * f)
}

// Line is one paragraph of a multi-paragraph text frame.
type Line struct {
	Text string
	Font pptx.Font
}

// Canvas binds one slide to a theme and the deck layout grid.
type Canvas struct {
	Slide *pptx.Slide
	Theme Theme
	P     Palette

	W, H     pptx.EMU
	ContentW pptx.EMU
	ColW     pptx.EMU

	// Mono is the face used by section labels and buttons.
	Mono string
	// Wrap turns on word wrap for TextBox. Unwrapped boxes grow to fit.
	Wrap bool
}

// NewCanvas appends a slide with the theme background to p.
func NewCanvas(p *pptx.Presentation, t Theme) *Canvas {
	s := p.AddSlide()
	s.Background(t.Palette.BG)
	contentW := p.Width - 2*MarginX
	return &Canvas{
		Slide:    s,
		Theme:    t,
		P:        t.Palette,
		W:        p.Width,
		H:        p.Height,
		ContentW: contentW,
		ColW:     (contentW - GapCol) / 2,
		Mono:     t.Fonts.Mono,
	}
}

// RightColumn returns the x offset of the second column.
func (c *Canvas) RightColumn() pptx.EMU {
	return MarginX + c.ColW + GapCol
}

// TextBox adds a text box, word-wrapped when c.Wrap is set. Each line of
// text becomes a paragraph in font f.
func (c *Canvas) TextBox(x, y, w, h pptx.EMU, text string, f pptx.Font, align pptx.Alignment) *pptx.Shape {
	sh := c.Slide.AddTextBox(x, y, w, h)
	tf := sh.Text()
	tf.WordWrap = c.Wrap
	tf.SetText(text, f, align)
	return sh
}

// Paragraphs replaces the text of sh with one paragraph per line.
func (c *Canvas) Paragraphs(sh *pptx.Shape, align pptx.Alignment, lines ...Line) *pptx.Shape {
	tf := sh.Text()
	tf.SetText("", pptx.Font{}, align)
	for i, l := range lines {
		var p *pptx.Paragraph
		if i == 0 {
			p = tf.Paragraph(0)
		} else {
			p = tf.AddParagraph()
		}
		p.Align = align
		p.Font = l.Font
		p.SetText(l.Text)
	}
	return sh
}

// Box adds a rectangle. An empty border removes the outline and an empty
// fill leaves the shape transparent.
func (c *Canvas) Box(x, y, w, h pptx.EMU, border, fill pptx.Color, lineWidth float64) *pptx.Shape {
	return c.styled(c.Slide.AddShape(pptx.GeomRect, x, y, w, h), border, fill, lineWidth)
}

// RoundedBox is Box with rounded corners.
func (c *Canvas) RoundedBox(x, y, w, h pptx.EMU, border, fill pptx.Color, lineWidth float64) *pptx.Shape {
	return c.styled(c.Slide.AddShape(pptx.GeomRoundRect, x, y, w, h), border, fill, lineWidth)
}

// Bar adds a solid rectangle with no outline.
func (c *Canvas) Bar(x, y, w, h pptx.EMU, fill pptx.Color) *pptx.Shape {
	return c.Box(x, y, w, h, "", fill, 0)
}

func (c *Canvas) styled(sh *pptx.Shape, border, fill pptx.Color, lineWidth float64) *pptx.Shape {
	if border != "" {
		sh.Line(border, lineWidth)
	} else {
		sh.NoLine()
	}
	if fill != "" {
		sh.Fill(fill)
	} else {
		sh.NoFill()
	}
	return sh
}

// Logo draws the stacked-bars mark in a size x size square.
func (c *Canvas) Logo(x, y, size pptx.EMU) {
	c.RoundedBox(x, y, size, size, c.P.TextPrimary, c.P.TextPrimary, 1)
	barH := frac(size, 0.16)
	c.Bar(x+frac(size, 0.15), y+frac(size, 0.62), frac(size, 0.7), barH, c.P.BG)
	c.Bar(x+frac(size, 0.28), y+frac(size, 0.42), frac(size, 0.45), barH, c.P.BG)
	c.Bar(x+frac(size, 0.41), y+frac(size, 0.22), frac(size, 0.18), barH, c.P.BG)
}

// CornerLogo draws the small logo in the top-right corner.
func (c *Canvas) CornerLogo() {
	c.Logo(c.W-pptx.Inches(1.2), pptx.Inches(0.35), pptx.Inches(0.7))
}

// SectionLabel writes "// text" in the purple mono label style.
func (c *Canvas) SectionLabel(text string, x, y pptx.EMU) *pptx.Shape {
	return c.TextBox(x, y, pptx.Inches(4), pptx.Inches(0.3), "// "+text,
		c.Theme.Font(c.Mono, 14, true, c.P.AccentPurple), pptx.AlignLeft)
}

// H1 writes a slide headline.
func (c *Canvas) H1(text string, x, y, w pptx.EMU) *pptx.Shape {
	return c.TextBox(x, y, w, pptx.Inches(0.9), text, c.Theme.Sans(42, c.P.TextPrimary), pptx.AlignLeft)
}

// H3 writes a sub-heading.
func (c *Canvas) H3(text string, x, y, w pptx.EMU, color pptx.Color) *pptx.Shape {
	return c.TextBox(x, y, w, pptx.Inches(0.4), text, c.Theme.Sans(20, color), pptx.AlignLeft)
}

// Body writes body copy.
func (c *Canvas) Body(text string, x, y, w, h pptx.EMU, size float64, color pptx.Color) *pptx.Shape {
	return c.TextBox(x, y, w, h, text, c.Theme.Body(size, false, color), pptx.AlignLeft)
}

// Bullets writes one "- item" paragraph per item with 6pt spacing.
func (c *Canvas) Bullets(x, y, w, h pptx.EMU, items []string, size float64, color pptx.Color) *pptx.Shape {
	sh := c.Slide.AddTextBox(x, y, w, h)
	tf := sh.Text()
	tf.WordWrap = true
	for i, item := range items {
		var p *pptx.Paragraph
		if i == 0 {
			p = tf.Paragraph(0)
		} else {
			p = tf.AddParagraph()
		}
		p.Align = pptx.AlignLeft
		p.SpaceBefore, p.SpaceAfter = 6, 6
		p.Font = c.Theme.Body(size, false, color)
		p.SetText("- " + item)
	}
	return sh
}

// StatBlock draws a bordered box with a large value over a caption.
func (c *Canvas) StatBlock(x, y, w, h pptx.EMU, value, label string, color pptx.Color) *pptx.Shape {
	box := c.Box(x, y, w, h, color, c.P.BGSecondary, 2.5)
	return c.Paragraphs(box, pptx.AlignCenter,
		Line{value, c.Theme.Sans(40, color)},
		Line{label, c.Theme.Body(14, false, c.P.TextSecondary)},
	)
}

// CTAButton draws a 3in x 0.8in button. Primary buttons are filled white.
func (c *Canvas) CTAButton(x, y pptx.EMU, text string, primary bool) *pptx.Shape {
	w, h := pptx.Inches(3.0), pptx.Inches(0.8)
	var btn *pptx.Shape
	textColor := c.P.TextPrimary
	if primary {
		btn = c.Box(x, y, w, h, c.P.TextPrimary, c.P.TextPrimary, 2)
		textColor = c.P.BG
	} else {
		btn = c.Box(x, y, w, h, c.P.TextPrimary, "", 2)
	}
	btn.Text().SetText(strings.ToUpper(text), c.Theme.Font(c.Mono, 16, true, textColor), pptx.AlignCenter)
	return btn
}

// Cell draws one bordered grid cell with 6pt side margins.
func (c *Canvas) Cell(x, y, w, h pptx.EMU, text string, fill, textColor pptx.Color, bold bool, align pptx.Alignment, size float64) *pptx.Shape {
	cell := c.Box(x, y, w, h, c.P.TextPrimary, fill, 1)
	tf := cell.Text()
	tf.SetInsets(pptx.Pt(6), pptx.Inches(0.05), pptx.Pt(6), pptx.Inches(0.05))
	tf.SetText(text, c.Theme.Body(size, bold, textColor), align)
	return cell
}

// OptionLabel draws the purple banner that names a slide variant.
func (c *Canvas) OptionLabel(text string, x, y pptx.EMU) *pptx.Shape {
	label := c.Box(x, y, pptx.Inches(7.2), pptx.Inches(0.3), c.P.AccentPurple, c.P.AccentPurple, 1)
	label.Text().SetText(strings.ToUpper(text), c.Theme.Body(11, true, c.P.BG), pptx.AlignLeft)
	return label
}

// playButton draws a circle of the given size with a triangle pointing right.
func (c *Canvas) playButton(x, y, size pptx.EMU, fill, color pptx.Color) {
	c.Slide.AddShape(pptx.GeomEllipse, x, y, size, size).Fill(fill).Line(color, 2)
	c.Slide.AddShape(pptx.GeomTriangle, x+frac(size, 0.38), y+frac(size, 0.28), frac(size, 0.28), frac(size, 0.32)).
		Rotation(90).Fill(color).NoLine()
}

// PhoneMockup draws a flat phone with a centred play button and returns
// the screen shape.
func (c *Canvas) PhoneMockup(x, y, w, h pptx.EMU, border, play pptx.Color) *pptx.Shape {
	fw := func(v float64) pptx.EMU { return frac(w, v) }
	fh := func(v float64) pptx.EMU { return frac(h, v) }

	c.Slide.AddShape(pptx.GeomRoundRect, x, y, w, h).Fill(c.P.BG).Line(border, 2)
	screen := c.Bar(x+fw(0.08), y+fh(0.08), fw(0.84), fh(0.84), c.P.BGSecondary)
	c.Bar(x+fw(0.35), y+fh(0.1), fw(0.3), fh(0.05), c.P.BG)

	size := fw(0.28)
	c.playButton(x+(w-size)/2, y+(h-size)/2, size, c.P.BG, play)
	return screen
}

// DevicePhone draws a phone inside a dark device frame with a drop shadow
// and a caption along the bottom of the screen.
func (c *Canvas) DevicePhone(x, y, frameW, frameH pptx.EMU, border, play pptx.Color, label string) {
	c.RoundedBox(x+pptx.Inches(0.08), y+pptx.Inches(0.1), frameW, frameH, "", c.P.BG, 0).Transparency(0.35)
	c.RoundedBox(x, y, frameW, frameH, "", pptx.RGB(26, 26, 26), 0)

	pad := pptx.Inches(0.12)
	px, py := x+pad, y+pad
	pw, ph := frameW-2*pad, frameH-2*pad
	c.RoundedBox(px, py, pw, ph, border, c.P.BGSecondary, 2.5)

	fw := func(v float64) pptx.EMU { return frac(pw, v) }
	fh := func(v float64) pptx.EMU { return frac(ph, v) }
	c.RoundedBox(px+fw(0.32), py+fh(0.03), fw(0.36), fh(0.06), "", c.P.BG, 0)

	size := fw(0.36)
	c.playButton(px+(pw-size)/2, py+(ph-size)/2, size, c.P.BGSecondary, play)

	c.TextBox(px, py+ph-pptx.Inches(0.45), pw, pptx.Inches(0.3), label,
		c.Theme.Body(11, false, c.P.TextSecondary), pptx.AlignCenter)
}

// Quotes used by the mindset card and the closing slides.
const (
	rohnQuote     = "Here's the big challenge of life. You can have more than you've got because you can become more than you are."
	rohnCounter   = "And of course the other side of the coin reads, unless you change how you are, you'll always have what you got."
	rohnShort     = "You can have more than you've got because you can become more than you are."
	rohnPrinciple = "Unless you change how you are, you'll always have what you got."
)

// MindsetCard draws the daily mindset pill card with quote and author strip.
func (c *Canvas) MindsetCard(x, y, w, h pptx.EMU) {
	mono := c.Theme.Fonts.Terminal

	c.Box(x, y, w, h, c.P.TextPrimary, c.P.BGSecondary, 4)
	headerY := y + in(0.8)
	c.Bar(x, headerY, w, pptx.Pt(2), pptx.RGB(50, 50, 50))
	c.TextBox(x+in(0.3), y+in(0.25), w-in(0.6), in(0.3), "DAILY MENTALITY PILL", c.Theme.Sans(10, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(x+w-in(0.6), y+in(0.2), in(0.4), in(0.4), "💊", c.Theme.Body(20, false, c.P.TextPrimary), pptx.AlignLeft)

	contentY := headerY + in(0.4)
	c.TextBox(x+in(0.3), contentY, in(0.5), in(0.5), `"`, c.Theme.Sans(60, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(x+in(0.3), contentY+in(0.6), w-in(0.6), in(1.5), strings.ToUpper(rohnQuote),
		c.Theme.Font(mono, 16, true, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(x+in(0.3), contentY+in(2.0), w-in(0.6), in(1.0), strings.ToUpper(rohnCounter),
		c.Theme.Font(mono, 12, false, c.P.TextSecondary), pptx.AlignLeft)

	authY := y + h - in(1.2)
	c.Bar(x+in(0.3), authY, w-in(0.6), in(0.9), pptx.RGB(21, 21, 21))
	c.Bar(x+in(0.3), authY, in(0.05), in(0.9), c.P.AccentGreen)
	av := in(0.5)
	c.Box(x+in(0.5), authY+in(0.2), av, av, c.P.TextPrimary, c.P.AccentGreen, 1)
	c.TextBox(x+in(0.5), authY+in(0.2), av, av, "JR", c.Theme.Sans(12, c.P.BG), pptx.AlignCenter)
	c.TextBox(x+in(1.2), authY+in(0.15), in(2), in(0.3), "JIM ROHN", c.Theme.Sans(12, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(x+in(1.2), authY+in(0.45), in(2), in(0.3), "ENTREPRENEUR & SPEAKER", c.Theme.Body(9, false, c.P.TextSecondary), pptx.AlignLeft)
}

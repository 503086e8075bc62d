package deck

import (
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

var (
	grey50 = pptx.RGB(50, 50, 50)
	grey20 = pptx.RGB(20, 20, 20)
)

// terminalLines are printed in the init terminal; an empty line is a gap.
var terminalLines = []string{
	"➜ loading routines... [OK]",
	"➜ connecting behavioral_insights... [OK]",
	"➜ generating mindset_pill_001... [DONE]",
	"",
	"OUTPUT RECEIVED:",
}

func buildClosing(p *pptx.Presentation, t Theme) {
	for _, slide := range []func(*Canvas){
		closingSplitScreen,
		closingProductContext,
		closingPhilosophy,
		closingTerminal,
		closingCardReveal,
	} {
		c := NewCanvas(p, t)
		c.Mono = t.Fonts.Terminal
		c.Wrap = true
		slide(c)
	}
}

// optionCaption writes the small muted variant name in the top-left corner.
func (c *Canvas) optionCaption(text string) {
	c.TextBox(in(0.5), in(0.3), in(3), in(0.3), text, c.Theme.Body(10, false, c.P.TextMuted), pptx.AlignLeft)
}

func (c *Canvas) closingLogo() {
	c.Logo(c.W-in(1.0), in(0.5), in(0.8))
}

func closingSplitScreen(c *Canvas) {
	c.closingLogo()
	c.optionCaption("OPTION 1: SPLIT SCREEN")

	c.TextBox(MarginX, in(2.0), in(5), in(0.3), "// END OF PRESENTATION", c.Theme.Font(c.Mono, 12, true, c.P.AccentPurple), pptx.AlignLeft)
	c.TextBox(MarginX, in(2.5), in(6), in(2), "THANK YOU FOR ARRIVING THIS FAR.", c.Theme.Sans(44, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(MarginX, in(4.5), in(5.5), in(1), "Axiom Forge is ready to use. Experience the system that turns intent into identity.",
		c.Theme.Body(16, false, c.P.TextSecondary), pptx.AlignLeft)
	c.CTAButton(MarginX, in(6.0), "TRY THE PROTOTYPE", true)

	center := frac(c.W, 0.75)
	c.TextBox(center-in(3), in(1.5), in(6), in(0.5), "// SPOILER ALERT: YOUR FIRST MINDSET PILL",
		c.Theme.Font(c.Mono, 10, true, c.P.AccentGreen), pptx.AlignCenter)
	c.MindsetCard(center-in(2.5), in(2.2), in(5), in(4.5))
}

func closingProductContext(c *Canvas) {
	c.closingLogo()
	c.optionCaption("OPTION 2: PRODUCT CONTEXT")

	phoneX, phoneY := in(2.0), in(0.8)
	phoneW, phoneH := in(3.5), in(6.5)
	c.RoundedBox(phoneX, phoneY, phoneW, phoneH, grey50, c.P.BG, 4)

	margin := in(0.15)
	sx, sy := phoneX+margin, phoneY+margin
	sw, sh := phoneW-2*margin, phoneH-2*margin
	c.Bar(sx, sy, sw, sh, c.P.BG)
	notchW := in(1.2)
	c.Bar(phoneX+(phoneW-notchW)/2, phoneY, notchW, in(0.3), grey50)

	headerY := sy + in(0.5)
	c.TextBox(sx, headerY, sw, in(0.3), "MINDSET", c.Theme.Sans(12, c.P.TextPrimary), pptx.AlignCenter)
	c.Bar(sx, headerY+in(0.4), sw, pptx.Pt(1), grey50)

	pillY := headerY + in(0.6)
	c.TextBox(sx+in(0.2), pillY, sw, in(0.2), "// DAILY PILL", c.Theme.Font(c.Mono, 8, true, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(sx+in(0.2), pillY+in(0.3), sw-in(0.4), in(1.5), `"`+rohnShort+`"`, c.Theme.Font(c.Mono, 12, true, c.P.TextPrimary), pptx.AlignLeft)

	authY := pillY + in(1.8)
	c.Bar(sx+in(0.2), authY, sw-in(0.4), in(0.5), grey20)
	c.Bar(sx+in(0.2), authY, in(0.05), in(0.5), c.P.AccentGreen)
	c.TextBox(sx+in(0.6), authY+in(0.1), in(2), in(0.3), "JIM ROHN", c.Theme.Sans(10, c.P.TextPrimary), pptx.AlignLeft)
	c.Bar(sx+in(0.35), authY+in(0.12), in(0.25), in(0.25), c.P.AccentGreen)

	refY := authY + in(0.8)
	c.TextBox(sx+in(0.2), refY, sw, in(0.2), "// REFLECTION", c.Theme.Font(c.Mono, 8, true, c.P.TextMuted), pptx.AlignLeft)
	c.Box(sx+in(0.2), refY+in(0.3), sw-in(0.4), in(0.6), grey50, c.P.BG, 1)
	c.TextBox(sx+in(0.3), refY+in(0.4), sw, in(0.2), "How does this apply to you?", c.Theme.Body(8, false, c.P.TextMuted), pptx.AlignLeft)
	c.TextBox(sx+in(0.2), refY+in(1.0), sw-in(0.4), in(0.3), "★ ★ ★ ★ ★", c.Theme.Body(12, false, grey50), pptx.AlignCenter)

	rx := c.W/2 + in(0.5)
	c.TextBox(rx, in(2.5), in(5), in(1.5), "Start building your\nAxiom today.", c.Theme.Sans(40, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(rx, in(4.2), in(5), in(1), "Join the closed beta to unlock the full system, including daily mindset pills and smart routine tracking.",
		c.Theme.Body(16, false, c.P.TextSecondary), pptx.AlignLeft)
	c.CTAButton(rx, in(5.5), "LAUNCH PROTOTYPE", true)
	c.Bar(rx, in(6.5), in(5), pptx.Pt(1), grey50)
	c.TextBox(rx, in(6.6), in(5), in(0.8), "Javier Serrano\nMIT Sandbox\njavier@axiomforge.app",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func closingPhilosophy(c *Canvas) {
	c.optionCaption("OPTION 3: PHILOSOPHY FIRST")
	center := c.W / 2

	c.TextBox(MarginX, in(1.5), c.ContentW, in(0.5), "// YOUR FIRST PRINCIPLE", c.Theme.Font(c.Mono, 14, true, c.P.AccentPurple), pptx.AlignCenter)

	corner, thick := in(0.8), pptx.Pt(4)
	c.Bar(center-in(4), in(2.2), thick, corner, c.P.AccentGreen)
	c.Bar(center-in(4), in(2.2), corner, thick, c.P.AccentGreen)
	c.Bar(center+in(4), in(4.5)-corner, thick, corner, c.P.AccentGreen)
	c.Bar(center+in(4)-corner, in(4.5), corner, thick, c.P.AccentGreen)

	c.TextBox(center-in(4), in(2.5), in(8), in(2), `"`+strings.ToUpper(rohnPrinciple)+`"`, c.Theme.Sans(32, c.P.TextPrimary), pptx.AlignCenter)
	c.TextBox(center-in(4), in(5.0), in(8), in(0.5), "—JIM ROHN", c.Theme.Body(14, true, c.P.AccentGreen), pptx.AlignCenter)
	c.TextBox(center-in(4), in(6.0), in(8), in(0.5), "Thank you for your time.", c.Theme.Body(18, false, c.P.TextSecondary), pptx.AlignCenter)

	c.CTAButton(center-in(3.2), in(6.5), "TRY AXIOM FORGE", true)
	c.CTAButton(center+in(0.2), in(6.5), "CONTACT FOUNDER", false)
}

func closingTerminal(c *Canvas) {
	c.closingLogo()
	c.optionCaption("OPTION 4: SYSTEM TERMINAL")
	c.TextBox(MarginX, in(1.0), c.ContentW, in(0.8), "SYSTEM INITIALIZATION COMPLETE", c.Theme.Sans(36, c.P.TextPrimary), pptx.AlignCenter)

	w, h := in(9), in(4.5)
	x, y := (c.W-w)/2, in(2.0)
	c.Box(x, y, w, h, grey50, c.P.BGSecondary, 2)
	headerH := in(0.4)
	c.Bar(x, y, w, headerH, grey50)
	for i, dot := range []pptx.Color{pptx.RGB(255, 95, 86), pptx.RGB(255, 189, 46), pptx.RGB(39, 201, 63)} {
		c.Slide.AddShape(pptx.GeomEllipse, x+in(0.2)+in(0.25)*pptx.EMU(i), y+in(0.12), in(0.15), in(0.15)).Fill(dot).NoLine()
	}
	c.TextBox(x+in(1.0), y+in(0.05), in(3), in(0.3), "axiom-forge -- init", c.Theme.Font(c.Mono, 10, false, c.P.TextSecondary), pptx.AlignLeft)

	cur := y + headerH + in(0.2)
	for _, line := range terminalLines {
		if line != "" {
			color := c.P.TextSecondary
			if !strings.HasPrefix(line, "➜") {
				color = c.P.AccentGreen
			}
			c.TextBox(x+in(0.3), cur, w, in(0.3), line, c.Theme.Font(c.Mono, 12, false, color), pptx.AlignLeft)
		}
		cur += in(0.25)
	}

	outX, outW := x+in(0.3), w-in(0.6)
	c.Bar(outX, cur, in(0.05), in(1.2), c.P.TextPrimary)
	c.TextBox(outX+in(0.2), cur, outW, in(0.8), `"`+rohnQuote+`"`, c.Theme.Font(c.Mono, 12, false, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(outX+in(0.2), cur+in(0.8), outW, in(0.3), ">> Jim Rohn, Entrepreneur", c.Theme.Font(c.Mono, 10, false, c.P.AccentPurple), pptx.AlignLeft)

	cur += in(1.5)
	c.TextBox(x+in(0.3), cur, in(2), in(0.3), "➜ ready for user input_", c.Theme.Font(c.Mono, 12, false, c.P.TextSecondary), pptx.AlignLeft)
	c.Bar(x+in(2.6), cur, in(0.12), in(0.25), c.P.AccentGreen)

	c.CTAButton((c.W-in(3))/2, y+h+in(0.3), "LAUNCH APPLICATION", true)
}

func closingCardReveal(c *Canvas) {
	c.closingLogo()
	c.optionCaption("OPTION 5: CARD REVEAL")

	c.TextBox(MarginX, in(2.0), in(5), in(0.3), "// PROTOTYPE READY", c.Theme.Font(c.Mono, 12, true, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(MarginX, in(2.5), in(6), in(1.5), "FROM THEORY TO PRACTICE.", c.Theme.Sans(44, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(MarginX, in(4.2), in(5.5), in(1), "We've built the engine. Now we need the fuel.\nThank you for reviewing Axiom Forge.",
		c.Theme.Body(16, false, c.P.TextSecondary), pptx.AlignLeft)
	c.Bar(MarginX, in(5.5), pptx.Pt(2), in(0.8), grey50)
	c.TextBox(MarginX+in(0.2), in(5.5), in(4), in(0.8), "Javier Serrano\nMIT Sandbox | Winter 2026",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
	c.CTAButton(MarginX, in(6.5), "OPEN PROTOTYPE", true)

	cw, ch := in(4.5), in(2.8)
	cx, cy := frac(c.W, 0.75)-cw/2, in(3.75)-ch/2
	c.Box(cx+in(0.4), cy+in(0.2), cw, ch, grey50, grey20, 2).Rotation(-6)
	c.Box(cx+in(0.2), cy+in(0.1), cw, ch, pptx.RGB(80, 80, 80), pptx.RGB(30, 30, 30), 2).Rotation(-3)
	c.Box(cx, cy, cw, ch, c.P.TextPrimary, c.P.BG, 4)

	c.Bar(cx+in(0.2), cy+in(0.15), in(1.2), in(0.25), c.P.AccentGreen)
	c.TextBox(cx+in(0.25), cy+in(0.15), in(1.2), in(0.25), "MINDSET #001", c.Theme.Sans(9, c.P.BG), pptx.AlignLeft)
	c.TextBox(cx+in(3.8), cy+in(0.15), in(0.5), in(0.3), "•••", c.Theme.Body(18, false, c.P.TextSecondary), pptx.AlignLeft)
	c.TextBox(cx+in(0.3), cy+in(0.6), cw-in(0.6), in(1.5), `"`+strings.ToUpper(rohnShort)+`"`,
		c.Theme.Font(c.Mono, 14, true, c.P.TextPrimary), pptx.AlignLeft)

	footY := cy + ch - in(0.6)
	c.Box(cx+in(0.3), footY, in(0.3), in(0.3), c.P.TextPrimary, "", 1)
	c.TextBox(cx+in(0.3), footY, in(0.3), in(0.3), "JR", c.Theme.Body(8, true, c.P.TextPrimary), pptx.AlignCenter)
	c.TextBox(cx+in(0.7), footY, in(2), in(0.3), "JIM ROHN", c.Theme.Body(10, false, c.P.TextSecondary), pptx.AlignLeft)
}

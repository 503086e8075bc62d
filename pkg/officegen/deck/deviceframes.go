package deck

import "github.com/ukaji3/officegen-go/pkg/officegen/pptx"

func buildDeviceFrames(p *pptx.Presentation, t Theme) {
	c := NewCanvas(p, t)
	c.optionHeader("Demo Slide - Option B: Device Frames", "Product Demo", "Experience Axiom Forge in Action")

	cardY := in(2.35)
	frameW, frameH := in(3.0), in(5.0)
	for i, clip := range demoClips {
		x := MarginX + (c.ColW+GapCol)*pptx.EMU(i)
		accent := c.P.AccentGreen
		if clip.Purple {
			accent = c.P.AccentPurple
		}
		c.TextBox(x, cardY, c.ColW, in(0.4), clip.Title, c.Theme.Sans(18, accent), pptx.AlignCenter)
		c.DevicePhone(x+(c.ColW-frameW)/2, cardY+in(0.45), frameW, frameH, accent, accent, clip.Caption)
	}

	w, h := in(6.4), in(0.95)
	x, y := (c.W-w)/2, in(6.2)
	c.Box(x, y, w, h, c.P.AccentGreen, pptx.RGB(20, 26, 0), 2)
	c.TextBox(x, y+in(0.1), w, in(0.3), "Try It Yourself", c.Theme.Sans(16, c.P.AccentGreen), pptx.AlignCenter)
	c.TextBox(x, y+in(0.45), w, in(0.25), "No download required - works in your browser",
		c.Theme.Body(11, false, c.P.TextSecondary), pptx.AlignCenter)
	btn := c.Box(x+in(2.2), y+in(0.62), in(2.0), in(0.3), c.P.AccentGreen, c.P.AccentGreen, 1)
	btn.Text().SetText("LAUNCH APP", c.Theme.Sans(12, c.P.BG), pptx.AlignCenter)
}

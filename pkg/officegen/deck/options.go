package deck

import (
	"fmt"

	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

const checkMark = "✓"

var (
	pricingHeader   = []string{"Features", "Freemium", "Coach Layer", "Content Packs", "Teams"}
	pricingFeatures = []struct {
		Feature string
		Values  []string
	}{
		{"Habit Tracking & Streaks", []string{checkMark, checkMark, checkMark, checkMark}},
		{"Morning & Evening Routines", []string{checkMark, checkMark, checkMark, checkMark}},
		{"Correlations & Trends", []string{checkMark, checkMark, checkMark, checkMark}},
		{"Advanced Dashboards", []string{checkMark, checkMark, checkMark, checkMark}},
		{"AI Habit Recommendations", []string{"-", checkMark, "-", "-"}},
		{"Premium Routine Templates", []string{"-", "-", checkMark, "-"}},
		{"Influencer Expert Programs", []string{"-", "-", checkMark, "-"}},
		{"Group Dashboards", []string{"-", "-", "-", checkMark}},
	}

	budgetWithTravel = []budgetItem{
		{"User Research", 1100, true, "Run 40-60 customer discovery interviews with beta testers, including focus group sessions and small participation incentives."},
		{"Contractors", 1000, false, "Hire UI/UX designer to polish onboarding flow and create professional marketing assets for App Store launch."},
		{"Software & Tools", 800, false, "Subscribe to analytics tools (Mixpanel/Amplitude), design software (Figma), and cover Firebase scaling costs during beta."},
		{"Marketing & Launch", 600, false, "Launch targeted social media campaigns on Instagram/TikTok and create promotional video content for App Store listing."},
		{"Legal & Compliance", 500, false, "File for company incorporation, register as a legal entity, and secure registered agent services."},
		{"Travel & Conferences", 500, true, "Attend wellness/productivity conferences to conduct customer research and connect with potential partners and influencers."},
	}
)

// demoClips are the two videos shown on the demo slides.
var demoClips = []struct {
	Title   string
	Caption string
	Purple  bool
}{
	{"Onboarding Flow", "Watch: 45 sec", false},
	{"App Features", "Watch: 2 min", true},
}

func buildOptions(p *pptx.Presentation, t Theme) {
	optionTiered(NewCanvas(p, t))
	optionPricingGrid(NewCanvas(p, t))
	optionSixBuckets(NewCanvas(p, t))
	optionDemo(NewCanvas(p, t))
}

// optionHeader is header for slide variants: the option banner sits above
// the section label and the headline moves down.
func (c *Canvas) optionHeader(option, section, headline string) {
	c.CornerLogo()
	c.OptionLabel(option, MarginX, in(0.35))
	c.SectionLabel(section, MarginX, in(0.8))
	c.H1(headline, MarginX, in(1.3), c.ContentW)
}

func optionTiered(c *Canvas) {
	c.optionHeader("Slide 8 - Option B: Tiered Layout", "Business Model", "Multiple Revenue Streams from Freemium to Enterprise")

	baseY, baseH := in(2.2), in(1.35)
	c.Box(MarginX, baseY, c.ContentW, baseH, c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(MarginX+in(0.2), baseY+in(0.1), c.ContentW-in(0.4), in(0.3), "Freemium Core", c.Theme.Sans(18, c.P.AccentGreen), pptx.AlignLeft)
	c.Body("Everything you need to build habits: Tracking, streaks, morning & evening routines, basic analytics, correlations, trends, sequences, and advanced dashboards.",
		MarginX+in(0.2), baseY+in(0.45), c.ContentW-in(0.4), in(0.5), 12, c.P.TextSecondary)
	c.TextBox(MarginX+in(0.2), baseY+in(0.95), c.ContentW-in(0.4), in(0.3), "FREE FOREVER", c.Theme.Body(14, true, c.P.AccentGreen), pptx.AlignLeft)

	tiers := []struct {
		Title, Desc, Price string
	}{
		{"Coach Layer", "AI-powered summaries and personalized habit recommendations", "$4.99/mo"},
		{"Content Packs", "Premium templates from top routine influencers", "$2.99/pack"},
		{"Teams / Campus", "Group dashboards for cohorts and clubs", "$9.99/mo"},
		{"Lifetime License", "Permanent access to all pro features", "$49.99"},
	}
	y := baseY + baseH + in(0.35)
	gap := in(0.25)
	w, h := (c.ContentW-3*gap)/4, in(2.2)
	for i, tier := range tiers {
		x := MarginX + (w+gap)*pptx.EMU(i)
		border, fill, titleColor := c.P.TextPrimary, c.P.BG, c.P.TextPrimary
		if i == 0 {
			border, fill, titleColor = c.P.AccentPurple, c.P.BGSecondary, c.P.AccentPurple
		}
		c.Box(x, y, w, h, border, fill, 2)
		c.TextBox(x+in(0.15), y+in(0.12), w-in(0.3), in(0.3), tier.Title, c.Theme.Body(13, true, titleColor), pptx.AlignLeft)
		c.Body(tier.Desc, x+in(0.15), y+in(0.45), w-in(0.3), in(1.0), 10, c.P.TextSecondary)
		c.TextBox(x+in(0.15), y+in(1.65), w-in(0.3), in(0.3), tier.Price, c.Theme.Body(14, true, c.P.TextPrimary), pptx.AlignLeft)
	}
}

func optionPricingGrid(c *Canvas) {
	c.optionHeader("Slide 8 - Option C: Pricing Grid", "Business Model", "Multiple Revenue Streams from Freemium to Enterprise")

	tableY, rowH := in(2.1), in(0.35)
	featureW := in(3.6)
	colW := (c.ContentW - featureW) / 4
	colX := func(i int) pptx.EMU { return MarginX + featureW + colW*pptx.EMU(i) }

	c.Cell(MarginX, tableY, featureW, rowH, pricingHeader[0], c.P.BG, c.P.TextPrimary, true, pptx.AlignCenter, 12)
	for i, h := range pricingHeader[1:] {
		fill, color := c.P.BG, c.P.TextPrimary
		switch i {
		case 0:
			fill, color = c.P.AccentGreen, c.P.BG
		case 1:
			fill = c.P.AccentPurple
		}
		c.Cell(colX(i), tableY, colW, rowH, h, fill, color, true, pptx.AlignCenter, 12)
	}

	for r, row := range pricingFeatures {
		y := tableY + rowH*pptx.EMU(r+1)
		c.Cell(MarginX, y, featureW, rowH, row.Feature, c.P.BG, c.P.TextPrimary, false, pptx.AlignLeft, 11)
		for i, v := range row.Values {
			color := c.P.TextMuted
			if v == checkMark {
				color = c.P.AccentGreen
			}
			c.Cell(colX(i), y, colW, rowH, v, c.P.BG, color, true, pptx.AlignCenter, 14)
		}
	}

	priceY := tableY + rowH*pptx.EMU(len(pricingFeatures)+1)
	c.Cell(MarginX, priceY, featureW, rowH, "PRICE", c.P.BG, c.P.TextPrimary, true, pptx.AlignLeft, 11)
	prices := []string{"FREE", "$4.99/mo", "$2.99/pack", "$9.99/mo"}
	priceColors := []pptx.Color{c.P.AccentGreen, c.P.AccentPurple, c.P.TextPrimary, c.P.TextPrimary}
	for i, price := range prices {
		c.Cell(colX(i), priceY, colW, rowH, price, c.P.BG, priceColors[i], true, pptx.AlignCenter, 12)
	}

	cardY := priceY + in(0.45)
	c.Box(MarginX, cardY, c.ContentW, in(0.5), c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(MarginX+in(0.2), cardY+in(0.1), c.ContentW-in(0.4), in(0.3),
		"Lifetime License: $49.99 one-time for permanent access to all premium features",
		c.Theme.Body(12, true, c.P.TextPrimary), pptx.AlignCenter)
}

func optionSixBuckets(c *Canvas) {
	c.optionHeader("Slide 9 - Option B: 6 Buckets (with Travel)", "Funding Request", "$4,500 to Validate, Polish, and Launch to Market")

	c.Box(MarginX, in(2.0), c.ContentW, in(4.1), c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(MarginX+in(0.2), in(2.1), in(2.0), in(0.6), "$4,500", c.Theme.Sans(38, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(MarginX+in(2.4), in(2.25), in(7.5), in(0.3), "Aligned with MIT Sandbox reimbursable categories",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)

	track := in(6.4)
	for i, item := range budgetWithTravel {
		y := in(2.9) + in(0.55)*pptx.EMU(i)
		c.TextBox(MarginX+in(0.2), y, in(1.8), in(0.3), item.Label, c.Theme.Body(10, true, c.P.TextPrimary), pptx.AlignLeft)
		c.Box(MarginX+in(2.1), y+in(0.05), track, in(0.2), c.P.TextPrimary, c.P.BGSecondary, 1)
		c.Bar(MarginX+in(2.1), y+in(0.05), frac(track, float64(item.Amount)/BudgetTotal), in(0.2), c.budgetColor(item))
		c.TextBox(MarginX+in(8.7), y, in(1.0), in(0.3), fmt.Sprintf("$%d", item.Amount), c.Theme.Body(10, true, c.P.TextPrimary), pptx.AlignRight)
		c.TextBox(MarginX+in(0.2), y+in(0.23), c.ContentW-in(0.4), in(0.25), item.Desc, c.Theme.Body(9, false, c.P.TextSecondary), pptx.AlignLeft)
	}

	c.Box(MarginX, in(6.25), c.ContentW, in(0.6), c.P.TextPrimary, c.P.BG, 1)
	c.TextBox(MarginX+in(0.2), in(6.35), c.ContentW-in(0.4), in(0.3),
		"Contractor spend within 25% cap. Legal within $1,000 cap. Conference fees within $500 cap. Travel requires pre-approved cost proposal per Sandbox guidelines.",
		c.Theme.Body(10, false, c.P.TextSecondary), pptx.AlignLeft)
}

func optionDemo(c *Canvas) {
	c.optionHeader("Demo Slide - Option B: Device Frames", "Product Demo", "Experience Axiom Forge in Action")

	cardY := in(2.3)
	frameW, frameH := in(3.4), in(3.0)
	for i, clip := range demoClips {
		x := MarginX + (c.ColW+GapCol)*pptx.EMU(i)
		accent := c.P.AccentGreen
		if clip.Purple {
			accent = c.P.AccentPurple
		}
		c.H3(clip.Title, x, cardY, c.ColW, c.P.TextPrimary)
		fx, fy := x+(c.ColW-frameW)/2, cardY+in(0.4)
		c.Box(fx, fy, frameW, frameH, c.P.TextPrimary, c.P.BG, 2)
		c.PhoneMockup(fx+in(0.4), fy+in(0.2), in(2.6), in(2.6), accent, accent)
		c.TextBox(fx+in(0.4), fy+in(2.3), in(2.6), in(0.3), clip.Caption, c.Theme.Body(10, false, c.P.TextSecondary), pptx.AlignCenter)
	}

	ctaY := in(6.1)
	c.Box(MarginX, ctaY, c.ContentW, in(0.9), c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(MarginX+in(0.3), ctaY+in(0.1), in(3.0), in(0.3), "Try It Yourself", c.Theme.Sans(16, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(MarginX+in(0.3), ctaY+in(0.45), in(6.0), in(0.3), "No download required - works in your browser",
		c.Theme.Body(11, false, c.P.TextSecondary), pptx.AlignLeft)
	link := c.Theme.Body(14, true, c.P.AccentGreen)
	link.Underline = true
	c.TextBox(MarginX+in(8.8), ctaY+in(0.25), in(2.0), in(0.3), "Launch App", link, pptx.AlignRight)
}

package deck

import (
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

// Dark accent tints behind highlighted cards.
var (
	tintGreen  = pptx.RGB(20, 25, 0)
	tintPurple = pptx.RGB(16, 14, 25)
)

type accent int

const (
	accentNone accent = iota
	accentGreen
	accentPurple
)

type channel struct {
	Num, Title, Target string
	Accent             accent
	Items              []string
}

var (
	gtmChannels = []channel{
		{"01", "MIT Campus", "Target: 15-20 users", accentGreen, []string{"Dorm workshops", "Student group demos", "Campus email blast", "Friend referrals"}},
		{"02", "Online Communities", "Target: 15-20 users", accentPurple, []string{"r/productivity", "r/getdisciplined", "Indie Hackers", "Discord servers"}},
		{"03", "Content Marketing", "Target: 10-15 users", accentPurple, []string{"2-3 TikToks/week", "Problem-solution posts", "Beta access CTA", "Behind-the-scenes"}},
		{"04", "Micro-Influencers", "Target: 5-10 users", accentNone, []string{"Reach out to 20", "Early access offer", "Feedback partnership", "Organic mentions"}},
	}

	gtmPhases = []channel{
		{"W1-2", "Warm Network", "", accentGreen, []string{"MIT friends & classmates", "Personal social media", "Direct outreach", "Target: 15 users"}},
		{"W3-4", "Community Seeding", "", accentNone, []string{"Reddit posts (5-8 subs)", "ProductHunt 'coming soon'", "Discord communities", "Target: 20-25 users"}},
		{"W5-6", "Content Amplification", "", accentNone, []string{"12-15 content pieces", "Micro-influencer outreach", "User testimonials", "Target: 15-20 users"}},
	}

	gtmPipeline = []channel{
		{"Weeks 1-3", "Phase 1: MIT Launch", "Target: 25-30 users", accentGreen, []string{"Campus email blast", "Dorm presentations", "Student group demos", "Referral incentive"}},
		{"Weeks 4-5", "Phase 2: Campus Expansion", "Target: 15-20 users", accentPurple, []string{"Harvard, BU, Northeastern", "Student ambassador program", "College subreddits", "Uni Discord servers"}},
		{"Weeks 6+", "Phase 3: Online Communities", "Target: 10-15 users", accentNone, []string{"Reddit productivity subs", "ProductHunt launch", "Indie Hackers", "Content marketing"}},
	}

	gtmSummaryColumns = []struct {
		Name  string
		Width float64
	}{{"Option", 2.5}, {"Best For", 3.5}, {"Time", 1.5}, {"Budget", 2.0}, {"Risk", 1.5}}

	gtmSummaryRows = [][]string{
		{"4-Channel Funnel", "Maximum reach & speed", "High", "$400-600", "Low"},
		{"3-Phase Launch", "Controlled growth & learning", "Medium", "$200-400", "Low"},
		{"Problem-First", "Organic engagement", "Medium", "$0-200", "Medium"},
		{"Micro-Influencers", "Fast user acquisition via trust", "Low-Medium", "$0 (equity)", "Med-High"},
		{"MIT-to-Market", "Credibility + Access (Recommended)", "Medium", "$300-500", "Low"},
	}
)

func (c *Canvas) accentColors(a accent) (border, fill pptx.Color) {
	switch a {
	case accentGreen:
		return c.P.AccentGreen, tintGreen
	case accentPurple:
		return c.P.AccentPurple, tintPurple
	}
	return c.P.TextPrimary, ""
}

func buildGTM(p *pptx.Presentation, t Theme) {
	for _, slide := range []func(*Canvas){
		gtmCover,
		gtmFourChannels,
		gtmThreePhases,
		gtmProblemFirst,
		gtmInfluencers,
		gtmPipelineSlide,
		gtmSummary,
	} {
		c := NewCanvas(p, t)
		c.Mono = t.Fonts.Terminal
		c.Wrap = true
		slide(c)
	}
}

// gtmHeader draws the small logo, upper-case section label and a 36pt title.
func (c *Canvas) gtmHeader(section, title string) {
	size := in(0.5)
	c.Logo(c.W-MarginX-size, in(0.4), size)
	c.TextBox(MarginX, in(0.4), in(6), in(0.3), "// "+strings.ToUpper(section), c.Theme.Font(c.Mono, 14, true, c.P.AccentPurple), pptx.AlignLeft)
	c.TextBox(MarginX, in(0.8), c.ContentW, in(0.8), title, c.Theme.Sans(36, c.P.TextPrimary), pptx.AlignLeft)
}

func (c *Canvas) subtitle(text string) {
	c.TextBox(MarginX, in(1.4), c.ContentW, in(0.5), text, c.Theme.Body(16, false, c.P.TextSecondary), pptx.AlignLeft)
}

// note draws a full-width bordered strip with a bold heading over one line.
func (c *Canvas) note(y pptx.EMU, a accent, heading, text string) {
	border, fill := c.accentColors(a)
	width := 1.0
	if a != accentNone {
		width = 2
	}
	c.Box(MarginX, y, c.ContentW, in(0.8), border, fill, width)
	c.TextBox(MarginX+in(0.2), y+in(0.1), c.ContentW, in(0.3), heading, c.Theme.Body(12, true, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(MarginX+in(0.2), y+in(0.35), c.ContentW-in(0.4), in(0.4), text, c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func gtmCover(c *Canvas) {
	c.TextBox(MarginX, in(2.5), c.ContentW, in(1.5), "Go-to-Market Slide Options", c.Theme.Sans(54, c.P.TextPrimary), pptx.AlignCenter)
	c.TextBox(MarginX, in(4.2), c.ContentW, in(0.5), "5 different approaches for reaching your first 40-60 beta users",
		c.Theme.Body(20, false, c.P.TextSecondary), pptx.AlignCenter)
	c.TextBox(MarginX, in(5.5), c.ContentW, in(0.5), "Navigate through the options", c.Theme.Body(14, true, c.P.AccentGreen), pptx.AlignCenter)
}

func gtmFourChannels(c *Canvas) {
	c.gtmHeader("Go-to-Market / Option 1", "4-Channel Beta Recruitment Strategy")

	y, gap := in(2.2), in(0.3)
	w, h := (c.ContentW-3*gap)/4, in(3.5)
	for i, ch := range gtmChannels {
		x := MarginX + (w+gap)*pptx.EMU(i)
		border, fill := c.accentColors(ch.Accent)
		c.Box(x, y, w, h, border, fill, 2)
		c.TextBox(x+in(0.2), y+in(0.2), w, in(0.5), ch.Num, c.Theme.Sans(32, c.P.AccentGreen), pptx.AlignLeft)
		c.TextBox(x+in(0.2), y+in(0.8), w-in(0.4), in(0.3), strings.ToUpper(ch.Title), c.Theme.Sans(14, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(x+in(0.2), y+in(1.2), w-in(0.4), in(0.3), ch.Target, c.Theme.Body(11, true, c.P.AccentGreen), pptx.AlignLeft)
		c.Bullets(x+in(0.1), y+in(1.5), w-in(0.2), in(1.5), ch.Items, 11, c.P.TextSecondary)
	}

	cardY := y + h + in(0.4)
	c.Box(MarginX, cardY, c.ContentW, in(0.8), c.P.AccentGreen, tintGreen, 2)
	c.TextBox(MarginX, cardY+in(0.2), c.ContentW, in(0.4), "Parallel execution across 4 channels to reach 50+ beta users in 4-6 weeks",
		c.Theme.Body(14, true, c.P.TextPrimary), pptx.AlignCenter)
}

func gtmThreePhases(c *Canvas) {
	c.gtmHeader("Go-to-Market / Option 2", "3-Phase Beta Launch Strategy")

	y := in(2.2)
	w, h := c.ContentW/3, in(2.8)
	for i, ph := range gtmPhases {
		x := MarginX + w*pptx.EMU(i)
		border, fill := c.accentColors(ph.Accent)
		numColor := c.P.TextMuted
		if ph.Accent == accentGreen {
			numColor = c.P.AccentGreen
		}
		c.Box(x, y, w, h, border, fill, 2)
		c.TextBox(x+in(0.2), y+in(0.2), w, in(0.6), ph.Num, c.Theme.Sans(32, numColor), pptx.AlignLeft)
		c.TextBox(x+in(0.2), y+in(0.8), w, in(0.3), strings.ToUpper(ph.Title), c.Theme.Sans(14, c.P.TextPrimary), pptx.AlignLeft)
		c.Bullets(x+in(0.1), y+in(1.1), w-in(0.2), in(1.5), ph.Items, 12, c.P.TextSecondary)
	}

	statY := y + h + in(0.4)
	statW, statH := (c.ContentW-in(0.4))/2, in(1.5)
	c.gtmStat(MarginX, statY, statW, statH, accentGreen, "50-60", c.P.AccentGreen, "BETA USERS IN 6 WEEKS")
	c.gtmStat(MarginX+statW+in(0.4), statY, statW, statH, accentNone, "$200-400", c.P.AccentPurple, "ESTIMATED COST")

	noteY := statY + statH + in(0.2)
	c.Box(MarginX, noteY, c.ContentW, in(0.6), c.P.TextPrimary, "", 1)
	c.TextBox(MarginX+in(0.2), noteY+in(0.15), c.ContentW-in(0.4), in(0.3),
		"Sequential approach builds momentum and lets you refine messaging between phases.",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func (c *Canvas) gtmStat(x, y, w, h pptx.EMU, a accent, value string, valueColor pptx.Color, label string) {
	border, fill := c.accentColors(a)
	c.Box(x, y, w, h, border, fill, 2)
	c.TextBox(x, y+in(0.2), w, in(0.6), value, c.Theme.Sans(36, valueColor), pptx.AlignCenter)
	c.TextBox(x, y+in(0.8), w, in(0.3), label, c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignCenter)
}

func gtmProblemFirst(c *Canvas) {
	c.gtmHeader("Go-to-Market / Option 3", "Problem-First Community Approach")
	c.subtitle("Lead with pain points, then offer solution access")

	rx, y := c.RightColumn(), in(2.2)
	c.TextBox(MarginX, y, c.ColW, in(0.4), "Where Your Users Are Struggling", c.Theme.Sans(16, c.P.AccentGreen), pptx.AlignLeft)
	problems := []titled{
		{"r/productivity (3.5M members)", `"Can't stick to my routine"`},
		{"r/getdisciplined (1.5M)", `"Apps don't help me understand why"`},
		{"r/selfimprovement (1.2M)", `"Need science-backed approach"`},
		{"TikTok comments", `"How do I actually DO this?"`},
	}
	py := y + in(0.6)
	for _, pr := range problems {
		c.TextBox(MarginX, py, c.ColW, in(0.3), "• "+pr.Title, c.Theme.Body(14, true, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(MarginX+in(0.3), py+in(0.3), c.ColW, in(0.3), pr.Desc, c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
		py += in(0.8)
	}

	c.TextBox(rx, y, c.ColW, in(0.4), "Engagement Strategy", c.Theme.Sans(16, c.P.AccentGreen), pptx.AlignLeft)
	cards := []struct {
		titled
		Accent accent
	}{
		{titled{"Week 1-2: Listen & Engage", "Comment on frustration posts, offer insights, build credibility"}, accentPurple},
		{titled{"Week 3-4: Share Solution", "Value-first posts about behavioral science + beta access offer"}, accentPurple},
		{titled{"Week 5-6: Amplify", "User testimonials, insights from beta cohort"}, accentGreen},
	}
	cy := y + in(0.6)
	for _, card := range cards {
		border, fill := c.accentColors(card.Accent)
		if card.Accent == accentPurple {
			fill = ""
		}
		c.Box(rx, cy, c.ColW, in(1.2), border, fill, 2)
		c.TextBox(rx+in(0.2), cy+in(0.15), c.ColW-in(0.4), in(0.3), card.Title, c.Theme.Body(13, true, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(rx+in(0.2), cy+in(0.45), c.ColW-in(0.4), in(0.6), card.Desc, c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
		cy += in(1.4)
	}

	c.note(in(6.5), accentNone, "Why This Works",
		"You're not selling an app - you're offering a solution to a problem they're already posting about daily.")
}

func gtmInfluencers(c *Canvas) {
	c.gtmHeader("Go-to-Market / Option 4", "Influencer Micro-Partnership Model")

	rx, y := c.RightColumn(), in(2.0)
	c.gtmStat(MarginX, y, c.ColW, in(1.2), accentGreen, "20", c.P.AccentGreen, "MICRO-INFLUENCERS TO REACH")
	c.TextBox(MarginX, y+in(1.5), c.ColW, in(0.3), "Target Profile", c.Theme.Sans(14, c.P.TextPrimary), pptx.AlignLeft)
	c.Bullets(MarginX, y+in(1.8), c.ColW, in(1.5), []string{
		"5K-50K followers", "Productivity/wellness niche", "High engagement rate (>3%)", "Creates routine content",
	}, 14, c.P.TextSecondary)

	platY := y + in(3.5)
	c.Box(MarginX, platY, c.ColW, in(0.8), c.P.TextPrimary, "", 1)
	c.TextBox(MarginX+in(0.2), platY+in(0.1), c.ColW, in(0.2), "Platforms to Target", c.Theme.Body(11, true, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(MarginX+in(0.2), platY+in(0.35), c.ColW, in(0.3), "TikTok, Instagram, YouTube", c.Theme.Body(11, false, c.P.TextSecondary), pptx.AlignLeft)

	c.TextBox(rx, y, c.ColW, in(0.4), "Partnership Offer", c.Theme.Sans(16, c.P.AccentGreen), pptx.AlignLeft)
	offers := []titled{
		{"Early Access + Co-Creation", "Exclusive beta access + input on routine templates"},
		{"Custom Routine Template", "Feature their routine as a template in the app"},
		{"Lifetime Pro Access", "Free premium when you launch monetization"},
		{"Expected Conversion", "20 outreach -> 5-7 partnerships -> 30-40 beta users"},
	}
	cy := y + in(0.5)
	for i, o := range offers {
		border, fill := c.P.AccentPurple, pptx.Color("")
		if i == len(offers)-1 {
			border, fill = c.P.AccentGreen, tintGreen
		}
		c.Box(rx, cy, c.ColW, in(0.9), border, fill, 2)
		c.TextBox(rx+in(0.15), cy+in(0.1), c.ColW-in(0.3), in(0.3), o.Title, c.Theme.Body(12, true, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(rx+in(0.15), cy+in(0.4), c.ColW-in(0.3), in(0.4), o.Desc, c.Theme.Body(10, false, c.P.TextSecondary), pptx.AlignLeft)
		cy += in(1.05)
	}

	stages := []titled{{"Reach Out", "20"}, {"Respond", "10-12"}, {"Partner", "5-7"}, {"Beta Users", "30-40"}}
	fy, fh := in(6.5), in(0.8)
	sw := c.ContentW / 4
	for i, st := range stages {
		sx := MarginX + sw*pptx.EMU(i)
		a := accentNone
		if i == len(stages)-1 {
			a = accentGreen
		}
		border, fill := c.accentColors(a)
		c.Box(sx, fy, sw, fh, border, fill, 2)
		c.TextBox(sx+in(0.1), fy+in(0.25), sw/2, in(0.3), strings.ToUpper(st.Title), c.Theme.Body(10, true, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(sx+sw/2, fy+in(0.15), sw/2-in(0.1), in(0.5), st.Desc, c.Theme.Sans(20, c.P.AccentGreen), pptx.AlignRight)
	}
}

func gtmPipelineSlide(c *Canvas) {
	c.gtmHeader("Go-to-Market / Option 5", "MIT-to-Market Pipeline")
	c.subtitle("Validate on campus, then expand with proven model")

	gap := in(0.4)
	w := (c.ContentW - 2*gap) / 3
	y, h := in(2.2), in(3.2)
	for i, col := range gtmPipeline {
		x := MarginX + (w+gap)*pptx.EMU(i)
		border, fill := c.accentColors(col.Accent)
		c.Box(x, y, w, h, border, fill, 2)
		c.TextBox(x+in(0.15), y+in(0.2), w-in(0.3), in(0.3), col.Title, c.Theme.Body(13, true, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(x+in(0.15), y+in(0.45), w-in(0.3), in(0.2), col.Num, c.Theme.Body(11, false, c.P.TextSecondary), pptx.AlignLeft)
		c.Bullets(x+in(0.1), y+in(0.8), w-in(0.2), in(1.5), col.Items, 11, c.P.TextSecondary)
		lineY := y + h - in(0.6)
		c.Bar(x+in(0.15), lineY, w-in(0.3), pptx.Pt(1), grey50)
		c.TextBox(x+in(0.15), lineY+in(0.1), w-in(0.3), in(0.3), col.Target, c.Theme.Body(12, true, border), pptx.AlignLeft)
	}

	c.note(y+h+in(0.4), accentGreen, "Why Start with MIT",
		"Credibility boost, easy access for interviews, homogeneous cohort for better insights.")
}

func gtmSummary(c *Canvas) {
	c.gtmHeader("Summary", "Which Strategy Fits Best?")

	y := in(2.0)
	x := MarginX
	for _, col := range gtmSummaryColumns {
		c.TextBox(x, y, in(col.Width), in(0.3), col.Name, c.Theme.Body(12, true, c.P.TextSecondary), pptx.AlignLeft)
		x += in(col.Width)
	}

	rowH := in(0.6)
	y += in(0.4)
	for i, row := range gtmSummaryRows {
		recommended := i == len(gtmSummaryRows)-1
		fill := pptx.Color("")
		if recommended {
			fill = tintGreen
		}
		c.Box(MarginX, y, c.ContentW, rowH, "", fill, 0)
		x := MarginX
		for j, cell := range row {
			color := c.P.TextPrimary
			if recommended && j == 0 {
				color = c.P.AccentGreen
			}
			w := in(gtmSummaryColumns[j].Width)
			c.TextBox(x, y+in(0.15), w, rowH, cell, c.Theme.Body(12, j == 0, color), pptx.AlignLeft)
			x += w
		}
		c.Bar(MarginX, y+rowH, c.ContentW, pptx.Pt(1), grey50)
		y += rowH
	}

	recY := y + in(0.4)
	c.Box(MarginX, recY, c.ContentW, in(1.2), c.P.AccentGreen, tintGreen, 2)
	c.TextBox(MarginX+in(0.2), recY+in(0.2), c.ContentW, in(0.3), "// RECOMMENDATION", c.Theme.Font(c.Mono, 12, true, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(MarginX+in(0.2), recY+in(0.5), c.ContentW-in(0.4), in(0.6),
		"Option 5 (MIT-to-Market) offers the best balance of credibility, access, and controlled expansion - while keeping costs within your budget.",
		c.Theme.Body(16, true, c.P.TextPrimary), pptx.AlignLeft)
}
